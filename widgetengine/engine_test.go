package widgetengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floatkit/floatkit/widgetengine/template"
)

func sampleConfig() WidgetConfig {
	return WidgetConfig{
		WidgetID: "w-123",
		Channels: []Channel{
			{ID: "wa", Type: "whatsapp", Value: "+994501234567", Label: "Sales"},
			{ID: "tg", Type: "telegram", Value: "@support"},
		},
		Tooltip: "Chat with us",
	}
}

func TestRenderDeterministic(t *testing.T) {
	def := template.Get(template.DefaultID)
	cfg := sampleConfig()

	first := Render(def, cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(def, cfg))
	}
}

func TestRenderDefaultingEquivalence(t *testing.T) {
	def := template.Get(template.DefaultID)

	implicit := WidgetConfig{WidgetID: "w-123"}
	explicit := WidgetConfig{
		WidgetID:           "w-123",
		Position:           DefaultPosition,
		TooltipDisplay:     DefaultTooltipDisplay,
		TooltipPosition:    DefaultTooltipPosition,
		ButtonSize:         DefaultButtonSize,
		ButtonColor:        DefaultButtonColor,
		GreetingMessage:    DefaultGreeting,
		VideoHeight:        DefaultVideoHeight,
		VideoAlignment:     DefaultVideoAlignment,
		VideoObjectFit:     DefaultVideoObjectFit,
		PreviewVideoHeight: DefaultPreviewHeight,
	}
	assert.Equal(t, Render(def, explicit), Render(def, implicit))
}

func TestRenderShell(t *testing.T) {
	out := Render(template.Get(template.DefaultID), sampleConfig())

	assert.True(t, strings.HasPrefix(out, "(function install() {"))
	assert.Contains(t, out, "'use strict';")
	assert.Contains(t, out, "var containerId = 'fcw-widget-w-123';")
	// Re-injection removes the previous instance and its stylesheet.
	assert.Contains(t, out, "var existing = document.getElementById(containerId);")
	assert.Contains(t, out, "document.getElementById(containerId + '-style')")
	assert.Contains(t, out, "window.__fcwOpen = window.__fcwOpen ||")
	assert.Contains(t, out, "new Function(behavior)();")
	assert.Contains(t, out, "https://wa.me/994501234567")
	assert.Contains(t, out, "https://t.me/support")
}

func TestRenderLeavesNoPlaceholders(t *testing.T) {
	for _, def := range template.List() {
		out := Render(def, sampleConfig())
		assert.NotContains(t, out, "{{", "template %s", def.ID)
	}
}

func TestRenderHostileGreeting(t *testing.T) {
	cfg := sampleConfig()
	cfg.GreetingMessage = "`;}()${alert(document.cookie)}`<script>bad()</script>"
	cfg.Tooltip = "it's `quoted` and ${weird}"

	out := Render(template.Get(template.DefaultID), cfg)

	assert.NotContains(t, out, "<script>bad()")
	// The interpolation trigger survives only in escaped form.
	assert.Contains(t, out, `\${weird}`)
	assert.Contains(t, out, `\${alert(`)

	backslashesBefore := func(i int) int {
		n := 0
		for j := i - 1; j >= 0 && out[j] == '\\'; j-- {
			n++
		}
		return n
	}

	// Inside the emitted script every ${ is escaped; the only unescaped
	// backticks are the six delimiters of the css/html/behavior literals.
	delimiters := 0
	for i := 0; i < len(out); i++ {
		switch {
		case out[i] == '$' && i+1 < len(out) && out[i+1] == '{':
			assert.Equal(t, 1, backslashesBefore(i)%2, "unescaped ${ at offset %d", i)
		case out[i] == '`':
			if backslashesBefore(i)%2 == 0 {
				delimiters++
			}
		}
	}
	assert.Equal(t, 6, delimiters)
}

func TestRenderEmptyChannels(t *testing.T) {
	cfg := WidgetConfig{WidgetID: "w-empty"}
	def := template.Get(template.DefaultID)

	out := Render(def, cfg)
	assert.Contains(t, out, def.Variant.EmptyStateMarker())
	assert.NotContains(t, out, "fcw-channel\"")
}

func TestRenderByIDFallsBack(t *testing.T) {
	cfg := sampleConfig()
	assert.Equal(t, RenderByID("", cfg), RenderByID("no-such-template", cfg))
	assert.NotEqual(t, RenderByID("dark", cfg), RenderByID(template.DefaultID, cfg))
}

func TestSubstitute(t *testing.T) {
	values := map[string]string{
		"NAME":  "world",
		"OTHER": "{{NAME}}",
	}
	out := Substitute("hello {{NAME}} / {{OTHER}} / {{MISSING}}", values)

	// Only the skeleton is scanned: a substituted value containing another
	// token stays literal, as do unknown tokens.
	assert.Equal(t, "hello world / {{NAME}} / {{MISSING}}", out)

	// An unterminated token is left as-is.
	assert.Equal(t, "open {{NAME", Substitute("open {{NAME", values))
}

func TestSubstituteValuesNeverRescanned(t *testing.T) {
	cfg := sampleConfig()
	cfg.WidgetID = "secret-id-999"
	cfg.Tooltip = "see {{WIDGET_ID}} here"

	out := Render(template.Get(template.DefaultID), cfg)

	// User text that spells a token renders as literal text.
	assert.Contains(t, out, "see {{WIDGET_ID}} here")
	assert.NotContains(t, out, "see secret-id-999 here")
}

func TestSubstituteDeterministic(t *testing.T) {
	values := map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"}
	first := Substitute("{{D}}{{C}}{{B}}{{A}}", values)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Substitute("{{D}}{{C}}{{B}}{{A}}", values))
	}
}

func TestContainerIDFor(t *testing.T) {
	assert.Equal(t, "fcw-widget-abc-123", containerIDFor("fcw", "abc-123"))
	assert.Equal(t, "fcw-widget-abc", containerIDFor("fcw", `ab"c<>`))
	assert.Equal(t, "fcw-widget", containerIDFor("fcw", ""))
	assert.Equal(t, "fcw-widget", containerIDFor("fcw", "<>!!"))
}

func TestTooltipVisibility(t *testing.T) {
	base, hover := tooltipVisibility("hover")
	assert.Equal(t, "opacity: 0; visibility: hidden;", base)
	assert.Equal(t, "opacity: 1; visibility: visible;", hover)

	base, hover = tooltipVisibility("always")
	assert.Equal(t, base, hover)
	assert.Contains(t, base, "visible")

	base, hover = tooltipVisibility("never")
	assert.Equal(t, "display: none;", base)
	assert.Equal(t, "display: none;", hover)

	base, _ = tooltipVisibility("sometimes")
	assert.Equal(t, "opacity: 0; visibility: hidden;", base)
}

func TestWithDefaults(t *testing.T) {
	cfg := WidgetConfig{}.WithDefaults()
	assert.Equal(t, "right", cfg.Position)
	assert.Equal(t, "hover", cfg.TooltipDisplay)
	assert.Equal(t, "top", cfg.TooltipPosition)
	assert.Equal(t, 60, cfg.ButtonSize)
	assert.Equal(t, DefaultGreeting, cfg.GreetingMessage)
	assert.Equal(t, 180, cfg.VideoHeight)
	assert.Equal(t, 80, cfg.PreviewVideoHeight)

	clampedLow := WidgetConfig{ButtonSize: 10}.WithDefaults()
	assert.Equal(t, 50, clampedLow.ButtonSize)
	clampedHigh := WidgetConfig{ButtonSize: 500}.WithDefaults()
	assert.Equal(t, 80, clampedHigh.ButtonSize)

	odd := WidgetConfig{Position: "diagonal", TooltipDisplay: "blink"}.WithDefaults()
	assert.Equal(t, "right", odd.Position)
	assert.Equal(t, "hover", odd.TooltipDisplay)
}

func TestNoopScript(t *testing.T) {
	out := NoopScript("widget not found")
	assert.Equal(t, "/* floatkit: widget not found */\n", out)

	// A hostile reason cannot break out of the comment.
	hostile := NoopScript("gone */ alert(1) /* \n nope")
	assert.NotContains(t, hostile, "*/ alert")
	assert.NotContains(t, hostile, "\n nope")
}
