// Package widgetengine turns a stored widget configuration into one
// self-contained script that renders the floating contact widget on an
// arbitrary host page. Rendering is a pure function of the template
// definition and the config: no I/O, no shared state, byte-identical output
// for identical input.
package widgetengine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/floatkit/floatkit/widgetengine/template"
	"github.com/sirupsen/logrus"
)

// Render binds a template definition and a widget configuration into the
// final render unit. The pipeline:
//
//  1. default the config, normalize channels, compute layout
//  2. generate channel / video / button-content fragments
//  3. substitute every placeholder into the html, css and js skeletons,
//     escaping user text for its immediate context
//  4. escape the three substituted fragments for embedding in the outer
//     template literal
//  5. emit the self-installing IIFE
//
// Unresolved placeholders are left as literal text: a partially broken
// widget on a customer site beats no widget at all.
func Render(def template.Definition, cfg WidgetConfig) string {
	cfg = cfg.WithDefaults()
	v := def.Variant

	resolved := Normalize(cfg.Channels)
	layout := ComputeLayout(cfg)

	channelsMarkup := GenerateChannelsMarkup(resolved, v)
	emptyDisplay := "none"
	if channelsMarkup == v.EmptyStateMarker() {
		emptyDisplay = "block"
	}

	containerID := containerIDFor(v.ClassPrefix, cfg.WidgetID)
	tooltipDefault, tooltipHover := tooltipVisibility(cfg.TooltipDisplay)

	values := map[string]string{
		"CONTAINER_ID":                 containerID,
		"WIDGET_ID":                    EscapeHTML(cfg.WidgetID),
		"OPENER_NAME":                  v.OpenerName(),
		"POSITION":                     cfg.Position,
		"POSITION_STYLE":               layout.PositionStyle,
		"TOOLTIP_TEXT":                 EscapeHTML(cfg.Tooltip),
		"TOOLTIP_TEXT_JS":              EscapeJSString(cfg.Tooltip),
		"TOOLTIP_POSITION":             cfg.TooltipPosition,
		"TOOLTIP_POSITION_STYLE":       layout.TooltipPositionStyle,
		"TOOLTIP_DEFAULT_VISIBILITY":   tooltipDefault,
		"TOOLTIP_HOVER_VISIBILITY":     tooltipHover,
		"MODAL_ALIGNMENT_STYLE":        layout.ModalAlignmentStyle,
		"MODAL_CONTENT_POSITION_STYLE": layout.ModalContentPositionStyle,
		"BUTTON_COLOR":                 SanitizeCSSValue(cfg.ButtonColor),
		"BUTTON_SIZE":                  strconv.Itoa(layout.ButtonSize),
		"BUTTON_SIZE_MOBILE":           strconv.Itoa(layout.ButtonSizeMobile),
		"ICON_SIZE":                    strconv.Itoa(layout.IconSize),
		"ICON_SIZE_MOBILE":             strconv.Itoa(layout.IconSizeMobile),
		"CHANNEL_GAP":                  strconv.Itoa(layout.ChannelGap),
		"CHANNEL_GAP_MOBILE":           strconv.Itoa(layout.ChannelGapMobile),
		"CHANNEL_BOTTOM_OFFSET":        strconv.Itoa(layout.ChannelBottomOffset),
		"GREETING_MESSAGE":             EscapeHTML(cfg.GreetingMessage),
		"BUTTON_CONTENT":               GenerateButtonContent(cfg, v),
		"CHANNELS_MARKUP":              channelsMarkup,
		"VIDEO_MARKUP":                 GenerateVideoMarkup(cfg, v),
		"CHANNEL_COUNT":                strconv.Itoa(len(resolved)),
		"EMPTY_STATE_DISPLAY":          emptyDisplay,
	}

	html := Substitute(def.HTML, values)
	css := Substitute(def.CSS, values)
	js := Substitute(def.JS, values)

	return wrap(containerID, v.OpenerName(),
		EscapeTemplateLiteral(css),
		EscapeTemplateLiteral(html),
		EscapeTemplateLiteral(js),
	)
}

// Substitute replaces every {{TOKEN}} the value map covers in a single
// left-to-right pass over the fragment. Substituted values are never
// rescanned, so user text that happens to contain a token stays literal.
// Tokens without a value are left literal.
func Substitute(fragment string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(fragment))

	for {
		start := strings.Index(fragment, "{{")
		if start < 0 {
			b.WriteString(fragment)
			return b.String()
		}
		end := strings.Index(fragment[start+2:], "}}")
		if end < 0 {
			b.WriteString(fragment)
			return b.String()
		}

		token := fragment[start+2 : start+2+end]
		value, ok := values[token]
		if !ok {
			b.WriteString(fragment[:start+2])
			fragment = fragment[start+2:]
			continue
		}

		b.WriteString(fragment[:start])
		b.WriteString(value)
		fragment = fragment[start+2+end+2:]
	}
}

func containerIDFor(classPrefix, widgetID string) string {
	id := sanitizeDOMID(widgetID)
	if id == "" {
		return classPrefix + "-widget"
	}
	return classPrefix + "-widget-" + id
}

// tooltipVisibility returns the CSS fragments controlling the tooltip at
// rest and on hover.
func tooltipVisibility(display string) (base, hover string) {
	switch display {
	case "always":
		return "opacity: 1; visibility: visible;", "opacity: 1; visibility: visible;"
	case "never":
		return "display: none;", "display: none;"
	default: // hover
		return "opacity: 0; visibility: hidden;", "opacity: 1; visibility: visible;"
	}
}

// wrap emits the delivery unit: a self-invoking function that removes any
// previous instance of this widget, injects the stylesheet and markup,
// registers the document-global opener and runs the behavior block. The
// three fragments arrive already template-literal escaped.
func wrap(containerID, openerName, css, html, js string) string {
	var b strings.Builder
	b.Grow(len(css) + len(html) + len(js) + 1024)

	b.WriteString("(function install() {\n  'use strict';\n")
	b.WriteString("  if (typeof document === 'undefined') { return; }\n")
	b.WriteString("  if (!document.body) {\n")
	b.WriteString("    document.addEventListener('DOMContentLoaded', install);\n    return;\n  }\n\n")

	fmt.Fprintf(&b, "  var containerId = '%s';\n", EscapeJSString(containerID))
	b.WriteString("  var existing = document.getElementById(containerId);\n")
	b.WriteString("  if (existing && existing.parentNode) { existing.parentNode.removeChild(existing); }\n")
	b.WriteString("  var existingStyle = document.getElementById(containerId + '-style');\n")
	b.WriteString("  if (existingStyle && existingStyle.parentNode) { existingStyle.parentNode.removeChild(existingStyle); }\n\n")

	fmt.Fprintf(&b, "  var css = `%s`;\n", css)
	fmt.Fprintf(&b, "  var html = `%s`;\n", html)
	fmt.Fprintf(&b, "  var behavior = `%s`;\n\n", js)

	b.WriteString("  var style = document.createElement('style');\n")
	b.WriteString("  style.id = containerId + '-style';\n")
	b.WriteString("  style.textContent = css;\n")
	b.WriteString("  document.head.appendChild(style);\n\n")

	b.WriteString("  var host = document.createElement('div');\n")
	b.WriteString("  host.innerHTML = html;\n")
	b.WriteString("  while (host.firstChild) { document.body.appendChild(host.firstChild); }\n\n")

	fmt.Fprintf(&b, "  window.%s = window.%s || function (url) {\n", openerName, openerName)
	b.WriteString("    if (!url || url === '#') { return; }\n")
	b.WriteString("    window.open(url, '_blank', 'noopener,noreferrer');\n")
	b.WriteString("  };\n\n")

	b.WriteString("  try {\n")
	b.WriteString("    new Function(behavior)();\n")
	b.WriteString("  } catch (err) {\n")
	b.WriteString("    if (window.console && window.console.warn) {\n")
	b.WriteString("      window.console.warn('floatkit widget behavior failed:', err);\n")
	b.WriteString("    }\n  }\n")
	b.WriteString("})();\n")

	return b.String()
}

// RenderByID looks up the template (falling back to the default for unknown
// ids, with a log line) and renders.
func RenderByID(templateID string, cfg WidgetConfig) string {
	if templateID != "" && !template.Exists(templateID) {
		logrus.Warnf("[ENGINE] Unknown template %q, falling back to %q", templateID, template.DefaultID)
	}
	return Render(template.Get(templateID), cfg)
}

// NoopScript returns a benign comment-only script for widgets that cannot
// be served (missing or inactive). Delivering this instead of an HTTP error
// keeps host pages free of console noise.
func NoopScript(reason string) string {
	reason = strings.ReplaceAll(reason, "\n", " ")
	reason = strings.ReplaceAll(reason, "*/", "")
	return fmt.Sprintf("/* floatkit: %s */\n", reason)
}
