package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultID, Get("").ID)
	assert.Equal(t, DefaultID, Get("no-such-template").ID)
	assert.Equal(t, "dark", Get("dark").ID)
}

func TestExists(t *testing.T) {
	assert.True(t, Exists(DefaultID))
	assert.True(t, Exists("modern-floating"))
	assert.False(t, Exists(""))
	assert.False(t, Exists("Default"))
}

func TestListOrderAndCompleteness(t *testing.T) {
	defs := List()
	require.Len(t, defs, 6)

	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"default", "dark", "modern", "minimal", "elegant", "modern-floating"}, ids)
}

func TestDefinitionsAreComplete(t *testing.T) {
	// Every skeleton must carry the placeholders the renderer substitutes,
	// or a widget silently loses channels, positioning or behavior wiring.
	htmlRequired := []string{
		"{{CONTAINER_ID}}", "{{CHANNELS_MARKUP}}", "{{BUTTON_CONTENT}}",
		"{{GREETING_MESSAGE}}", "{{VIDEO_MARKUP}}", "{{TOOLTIP_TEXT}}",
		"{{EMPTY_STATE_DISPLAY}}",
	}
	cssRequired := []string{
		"{{POSITION_STYLE}}", "{{BUTTON_SIZE}}", "{{BUTTON_COLOR}}",
		"{{TOOLTIP_DEFAULT_VISIBILITY}}", "{{TOOLTIP_HOVER_VISIBILITY}}",
		"{{BUTTON_SIZE_MOBILE}}",
	}
	jsRequired := []string{"{{CONTAINER_ID}}", "{{OPENER_NAME}}"}

	for _, def := range List() {
		assert.NotEmpty(t, def.Name, def.ID)
		assert.NotEmpty(t, def.Description, def.ID)
		assert.NotEmpty(t, def.Variant.ClassPrefix, def.ID)
		assert.Contains(t, []string{"glyph", "svg"}, def.Variant.IconSet, def.ID)

		for _, ph := range htmlRequired {
			assert.Contains(t, def.HTML, ph, "%s html missing %s", def.ID, ph)
		}
		for _, ph := range cssRequired {
			assert.Contains(t, def.CSS, ph, "%s css missing %s", def.ID, ph)
		}
		for _, ph := range jsRequired {
			assert.Contains(t, def.JS, ph, "%s js missing %s", def.ID, ph)
		}

		// Skeletons reference only their own class namespace.
		prefix := def.Variant.ClassPrefix
		assert.True(t, strings.Contains(def.HTML, prefix+"-"), def.ID)
		assert.True(t, strings.Contains(def.JS, "data-"+prefix+"-url"), def.ID)
	}
}

func TestClassPrefixesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, def := range List() {
		prev, dup := seen[def.Variant.ClassPrefix]
		assert.False(t, dup, "%s and %s share prefix %s", prev, def.ID, def.Variant.ClassPrefix)
		seen[def.Variant.ClassPrefix] = def.ID
	}
}

func TestOnlyElegantReverses(t *testing.T) {
	for _, def := range List() {
		assert.Equal(t, def.ID == "elegant", def.Variant.ReverseOrder, def.ID)
	}
}

func TestEmptyStateMarkerShape(t *testing.T) {
	v := Variant{ClassPrefix: "fcw"}
	assert.Equal(t, "<!--fcw:no-channels-->", v.EmptyStateMarker())
	assert.Equal(t, "__fcwOpen", v.OpenerName())
}
