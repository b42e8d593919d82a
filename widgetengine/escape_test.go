package widgetengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"a & b", "a &amp; b"},
		{"it's", "it&#39;s"},
		{"&amp;", "&amp;amp;"}, // already-escaped input is escaped again, not detected
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EscapeHTML(c.in), "input %q", c.in)
	}
}

func TestEscapeJSString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{"it's", `it\'s`},
		{"back\\slash", `back\\slash`},
		{"line1\nline2", `line1\nline2`},
		{"tab\there", `tab\there`},
		{"tick`here", "tick\\`here"},
		{"\r\n", `\r\n`},
		{"\u2028\u2029", `\u2028\u2029`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EscapeJSString(c.in), "input %q", c.in)
	}
}

func TestEscapeTemplateLiteral(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"`", "\\`"},
		{"${code}", `\${code}`},
		{`\`, `\\`},
		{"$notinterp", "$notinterp"},
		{"{notinterp}", "{notinterp}"},
		{"a`b${c}\\d", "a\\`b\\${c}\\\\d"},
		// backslash escaped before anything else, so \$ { stays two tokens
		{`\${`, `\\\${`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EscapeTemplateLiteral(c.in), "input %q", c.in)
	}
}

// The escaping order contract: inner context escaping first, then the
// template-literal pass over the whole fragment. Applying them in that
// order must leave no active template-literal syntax behind.
func TestEscapeNestingLeavesNoActiveSyntax(t *testing.T) {
	hostile := []string{
		"`${alert(1)}`",
		"\\`\\${",
		"plain ${x} `y` \\z",
		strings.Repeat("`${", 500),
	}
	for _, s := range hostile {
		inner := EscapeHTML(s)
		outer := EscapeTemplateLiteral(inner)

		// Every backtick and interpolation start must be preceded by an
		// odd run of backslashes.
		for i := 0; i < len(outer); i++ {
			active := outer[i] == '`' || (outer[i] == '$' && i+1 < len(outer) && outer[i+1] == '{')
			if !active {
				continue
			}
			slashes := 0
			for j := i - 1; j >= 0 && outer[j] == '\\'; j-- {
				slashes++
			}
			assert.Equal(t, 1, slashes%2, "unescaped %q at %d in %q", string(outer[i]), i, outer)
		}
	}
}

func TestEscapeTemplateLiteralIdempotentShape(t *testing.T) {
	// Escaping twice must not corrupt: the double pass is parseable too,
	// it just displays escaped text. Verifies the worst deploy mistake
	// still emits syntactically valid output.
	s := "a`b${c}"
	once := EscapeTemplateLiteral(s)
	twice := EscapeTemplateLiteral(once)
	assert.NotContains(t, strings.ReplaceAll(twice, "\\`", ""), "`")
}

func TestSanitizeCSSValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#25D366", "#25D366"},
		{"rgb(10, 20, 30)", "rgb(10, 20, 30)"},
		{"red", "red"},
		{"red; } body { display: none", "red  body  display none"},
		{"</style><script>", "stylescript"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeCSSValue(c.in), "input %q", c.in)
	}
}

func TestEscapeVeryLongString(t *testing.T) {
	long := strings.Repeat("x\"y`z${", 100000)
	out := EscapeTemplateLiteral(EscapeJSString(long))
	assert.NotEmpty(t, out)
	assert.Greater(t, len(out), len(long))
}
