package widgetengine

import "strings"

// The render pipeline embeds user text at two nesting levels: first inside an
// HTML/CSS/JS fragment, then the whole substituted fragment inside the outer
// JS template literal of the delivered script. The inner context escaper runs
// at substitution time, EscapeTemplateLiteral runs once on each finished
// fragment. Reversing that order corrupts the emitted script.

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML makes a string safe for HTML text and attribute contexts.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeJSString makes a string safe inside a single- or double-quoted JS
// string literal.
func EscapeJSString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '`':
			b.WriteString("\\`")
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeTemplateLiteral makes a string safe inside a JS backtick template
// literal: backslashes, backticks and ${ interpolation starts are neutralized.
func EscapeTemplateLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '`':
			b.WriteString("\\`")
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString(`\${`)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SanitizeCSSValue strips characters that could break out of a CSS
// declaration. Color values, lengths and keyword values survive unchanged;
// anything structural ({ } ; < >) is removed rather than escaped, because
// CSS has no general escape that is safe across browsers inside a value.
func SanitizeCSSValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '#', r == '(', r == ')', r == ',', r == '.', r == '%',
			r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
