// Package template holds the statically registered widget template
// definitions. Each definition carries three skeleton fragments (markup,
// stylesheet, behavior) full of {{PLACEHOLDER}} tokens plus a small variant
// descriptor that parameterizes the shared content generators. Registration
// is static; lookup never touches I/O.
package template

// Variant describes how the shared content generators must behave for one
// template, so every visual skin stays configuration instead of a parallel
// generator copy.
type Variant struct {
	// ClassPrefix namespaces every CSS class, DOM id and data attribute the
	// template emits, so multiple widgets can coexist on one host page.
	ClassPrefix string
	// IconSet selects the channel icon style: "glyph" (emoji) or "svg"
	// (inline vector icons).
	IconSet string
	// ReverseOrder renders top-level channels in reverse stored order. Only
	// the elegant template keeps this legacy behavior.
	ReverseOrder bool
}

// EmptyStateMarker is the exact string the channel generator emits instead
// of channel items when a widget has no channels. It is an HTML comment, so
// it is harmless in the markup, and the renderer keys the empty-state block
// visibility off its presence.
func (v Variant) EmptyStateMarker() string {
	return "<!--" + v.ClassPrefix + ":no-channels-->"
}

// OpenerName is the document-global function name the emitted script
// registers for opening channel links.
func (v Variant) OpenerName() string {
	return "__" + v.ClassPrefix + "Open"
}

// Definition is one immutable registry entry.
type Definition struct {
	ID          string
	Name        string
	Description string
	HTML        string
	CSS         string
	JS          string
	Variant     Variant
}

// DefaultID is the template every unknown or missing id falls back to.
const DefaultID = "default"

var registry = map[string]Definition{
	DefaultID:         defaultTemplate,
	"dark":            darkTemplate,
	"modern":          modernTemplate,
	"minimal":         minimalTemplate,
	"elegant":         elegantTemplate,
	"modern-floating": modernFloatingTemplate,
}

// Listed in picker order.
var order = []string{DefaultID, "dark", "modern", "minimal", "elegant", "modern-floating"}

// Get returns the definition for the given id, falling back to the default
// template for unknown or empty ids. A partially broken widget beats no
// widget, so lookup never fails.
func Get(id string) Definition {
	if def, ok := registry[id]; ok {
		return def
	}
	return registry[DefaultID]
}

// Exists reports whether the id is actually registered, so callers can log
// fallbacks without changing Get's availability-over-strictness contract.
func Exists(id string) bool {
	_, ok := registry[id]
	return ok
}

// List returns all definitions in picker order.
func List() []Definition {
	out := make([]Definition, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}
