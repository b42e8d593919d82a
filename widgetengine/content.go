package widgetengine

import (
	"fmt"
	"strings"

	"github.com/floatkit/floatkit/widgetengine/template"
	"github.com/sirupsen/logrus"
)

// Content generators: pure functions from resolved channels + layout to
// markup fragments. All template variants share these; the Variant
// descriptor carries the per-template differences.

const caretDown = "▾"

// GenerateChannelsMarkup renders the channel list for one template variant.
// Channels render in stored order unless the variant reverses it. An empty
// list yields the variant's empty-state marker, never an empty string, so
// the renderer can toggle the empty-state block. A failure while rendering
// one channel degrades that channel to a plain link and never aborts the
// rest of the list.
func GenerateChannelsMarkup(channels []ResolvedChannel, v template.Variant) string {
	if len(channels) == 0 {
		return v.EmptyStateMarker()
	}

	ordered := channels
	if v.ReverseOrder {
		ordered = make([]ResolvedChannel, len(channels))
		for i, ch := range channels {
			ordered[len(channels)-1-i] = ch
		}
	}

	var b strings.Builder
	for _, ch := range ordered {
		b.WriteString(renderChannelSafe(ch, v))
	}
	return b.String()
}

// renderChannelSafe isolates per-channel failures: one malformed channel
// must not take down the whole list.
func renderChannelSafe(ch ResolvedChannel, v template.Variant) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Warnf("[ENGINE] Channel %q render failed, degrading: %v", ch.ID, r)
			out = renderFallbackChannel(ch, v)
		}
	}()

	if len(ch.Children) > 0 {
		return renderGroup(ch, v)
	}
	return renderLeaf(ch, v)
}

func renderLeaf(ch ResolvedChannel, v template.Variant) string {
	p := v.ClassPrefix
	return fmt.Sprintf(
		`<a class="%s-channel" href="%s" data-%s-url="%s" style="background-color: %s;" rel="noopener noreferrer">`+
			`<span class="%s-channel-icon">%s</span>`+
			`<span class="%s-channel-label">%s</span>`+
			`</a>`,
		p, EscapeHTML(ch.URL), p, EscapeHTML(ch.URL), SanitizeCSSValue(ch.Color),
		p, resolveIconHTML(ch, v.IconSet, p),
		p, EscapeHTML(ch.Label),
	)
}

// renderGroup emits a trigger plus a collapsed dropdown listing the parent
// itself first, labeled "(Primary)", followed by each child in order.
func renderGroup(ch ResolvedChannel, v template.Variant) string {
	p := v.ClassPrefix
	dropdownID := fmt.Sprintf("%s-dd-%s", p, sanitizeDOMID(ch.ID))

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-group">`, p)
	fmt.Fprintf(&b,
		`<button class="%s-group-trigger" type="button" data-%s-dropdown="%s" style="background-color: %s;" aria-expanded="false">`+
			`<span class="%s-channel-icon">%s</span>`+
			`<span class="%s-channel-label">%s</span>`+
			`<span class="%s-caret">%s</span>`+
			`</button>`,
		p, p, dropdownID, SanitizeCSSValue(ch.Color),
		p, resolveIconHTML(ch, v.IconSet, p),
		p, EscapeHTML(ch.Label),
		p, caretDown,
	)

	fmt.Fprintf(&b, `<div class="%s-dropdown" id="%s">`, p, dropdownID)
	b.WriteString(renderDropdownItem(ch, v, ch.Label+" (Primary)"))
	for _, child := range ch.Children {
		b.WriteString(renderDropdownItem(child, v, child.Label))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func renderDropdownItem(ch ResolvedChannel, v template.Variant, label string) string {
	p := v.ClassPrefix
	return fmt.Sprintf(
		`<a class="%s-dropdown-item" href="%s" data-%s-url="%s" rel="noopener noreferrer">`+
			`<span class="%s-channel-icon">%s</span>`+
			`<span class="%s-channel-label">%s</span>`+
			`</a>`,
		p, EscapeHTML(ch.URL), p, EscapeHTML(ch.URL),
		p, resolveIconHTML(ch, v.IconSet, p),
		p, EscapeHTML(label),
	)
}

func renderFallbackChannel(ch ResolvedChannel, v template.Variant) string {
	p := v.ClassPrefix
	label := ch.Label
	if label == "" {
		label = "Contact"
	}
	return fmt.Sprintf(
		`<a class="%s-channel" href="%s" data-%s-url="%s" style="background-color: %s;" rel="noopener noreferrer">`+
			`<span class="%s-channel-label">%s</span></a>`,
		p, EscapeHTML(ch.URL), p, EscapeHTML(ch.URL), neutralColor,
		p, EscapeHTML(label),
	)
}

// GenerateVideoMarkup renders the promotional video block, or nothing when
// video is disabled or no URL is set.
func GenerateVideoMarkup(cfg WidgetConfig, v template.Variant) string {
	if !cfg.VideoEnabled || strings.TrimSpace(cfg.VideoURL) == "" {
		return ""
	}
	p := v.ClassPrefix
	return fmt.Sprintf(
		`<div class="%s-video %s-video-%s">`+
			`<video src="%s" controls playsinline preload="metadata" style="height: %dpx; object-fit: %s;"></video>`+
			`</div>`,
		p, p, cfg.VideoAlignment,
		EscapeHTML(cfg.VideoURL), cfg.VideoHeight, SanitizeCSSValue(cfg.VideoObjectFit),
	)
}

// GenerateButtonContent renders the launcher button's inner content:
// a muted looping video preview when configured, else a custom icon image,
// else the variant's default mark.
func GenerateButtonContent(cfg WidgetConfig, v template.Variant) string {
	p := v.ClassPrefix

	if cfg.UseVideoPreview && strings.TrimSpace(cfg.VideoURL) != "" {
		return fmt.Sprintf(
			`<video class="%s-button-video" src="%s" autoplay muted loop playsinline style="height: %dpx;"></video>`,
			p, EscapeHTML(cfg.VideoURL), cfg.PreviewVideoHeight,
		)
	}

	if strings.TrimSpace(cfg.CustomIconURL) != "" {
		return fmt.Sprintf(
			`<img class="%s-button-icon-img" src="%s" alt="">`,
			p, EscapeHTML(cfg.CustomIconURL),
		)
	}

	return buttonIconHTML(v.IconSet, p)
}
