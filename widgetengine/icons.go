package widgetengine

import (
	"fmt"
	"strings"
)

// Inline 24x24 vector icons for the "svg" icon set. Simplified marks, filled
// with currentColor so the channel background determines contrast.
var svgIcons = map[string]string{
	"whatsapp":  `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 2a10 10 0 0 0-8.6 15.1L2 22l5-1.3A10 10 0 1 0 12 2zm0 18a8 8 0 0 1-4.1-1.1l-.3-.2-3 .8.8-2.9-.2-.3A8 8 0 1 1 12 20zm4.4-5.9c-.2-.1-1.4-.7-1.6-.8s-.4-.1-.5.1-.6.8-.8.9-.3.2-.5.1a6.5 6.5 0 0 1-3.2-2.8c-.2-.4.2-.4.7-1.3 0-.2 0-.3-.1-.4l-.7-1.8c-.2-.4-.4-.4-.5-.4h-.5a1 1 0 0 0-.7.3 2.8 2.8 0 0 0-.9 2.1 4.9 4.9 0 0 0 1 2.6A11.2 11.2 0 0 0 12.4 17c1.7.7 2.3.7 3.1.6a2.6 2.6 0 0 0 1.7-1.2 2.1 2.1 0 0 0 .2-1.2z"/></svg>`,
	"telegram":  `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M21.9 4.4 19 19.2c-.2 1-.8 1.2-1.6.8l-4.5-3.3-2.2 2.1c-.2.2-.4.4-.9.4l.3-4.6L18.6 7c.4-.3-.1-.5-.6-.2L7.7 13.3l-4.5-1.4c-1-.3-1-1 .2-1.4l17.2-6.6c.8-.3 1.5.2 1.3 1.5z"/></svg>`,
	"instagram": `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 7.4A4.6 4.6 0 1 0 16.6 12 4.6 4.6 0 0 0 12 7.4zm0 7.6a3 3 0 1 1 3-3 3 3 0 0 1-3 3zM17 5.8a1.1 1.1 0 1 0 1.1 1.1A1.1 1.1 0 0 0 17 5.8zM21.9 12c0-1.4 0-2.7-.1-4.1a5.6 5.6 0 0 0-1.5-4.2A5.6 5.6 0 0 0 16.1 2.2C14.7 2.1 13.4 2.1 12 2.1s-2.7 0-4.1.1a5.6 5.6 0 0 0-4.2 1.5A5.6 5.6 0 0 0 2.2 7.9C2.1 9.3 2.1 10.6 2.1 12s0 2.7.1 4.1a5.6 5.6 0 0 0 1.5 4.2 5.6 5.6 0 0 0 4.2 1.5c1.4.1 2.7.1 4.1.1s2.7 0 4.1-.1a5.6 5.6 0 0 0 4.2-1.5 5.6 5.6 0 0 0 1.5-4.2c.1-1.4.1-2.7.1-4.1z"/></svg>`,
	"facebook":  `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M22 12a10 10 0 1 0-11.6 9.9v-7H7.9V12h2.5V9.8c0-2.5 1.5-3.9 3.8-3.9a15 15 0 0 1 2.2.2v2.5h-1.3A1.4 1.4 0 0 0 13.6 10v1.9h2.8l-.5 2.9h-2.3v7A10 10 0 0 0 22 12z"/></svg>`,
	"twitter":   `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M18.2 2.3h3.3l-7.2 8.3 8.5 11.2h-6.7L11 15l-6 6.8H1.7L9.4 13 1.2 2.3h6.9L12.8 8.6zm-1.2 17.5h1.9L6.9 4.1H4.9z"/></svg>`,
	"linkedin":  `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M20.4 20.4h-3.5v-5.6c0-1.3 0-3-1.9-3s-2.1 1.4-2.1 2.9v5.7H9.4V9h3.4v1.6a3.7 3.7 0 0 1 3.4-1.9c3.6 0 4.2 2.4 4.2 5.4zM5.3 7.4a2 2 0 1 1 2-2 2 2 0 0 1-2 2zM7.1 20.4H3.6V9h3.5z"/></svg>`,
	"youtube":   `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M23.5 6.2a3 3 0 0 0-2.1-2.1C19.5 3.5 12 3.5 12 3.5s-7.5 0-9.4.6A3 3 0 0 0 .5 6.2 31.4 31.4 0 0 0 0 12a31.4 31.4 0 0 0 .5 5.8 3 3 0 0 0 2.1 2.1c1.9.6 9.4.6 9.4.6s7.5 0 9.4-.6a3 3 0 0 0 2.1-2.1A31.4 31.4 0 0 0 24 12a31.4 31.4 0 0 0-.5-5.8zM9.5 15.6V8.4L15.8 12z"/></svg>`,
	"github":    `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 .5A11.5 11.5 0 0 0 8.4 22.9c.6.1.8-.3.8-.6v-2c-3.2.7-3.9-1.5-3.9-1.5a3.1 3.1 0 0 0-1.3-1.7c-1-.7.1-.7.1-.7a2.4 2.4 0 0 1 1.8 1.2 2.5 2.5 0 0 0 3.4 1 2.5 2.5 0 0 1 .7-1.6c-2.6-.3-5.3-1.3-5.3-5.7a4.5 4.5 0 0 1 1.2-3.1 4.1 4.1 0 0 1 .1-3.1s1-.3 3.2 1.2a11 11 0 0 1 5.8 0c2.2-1.5 3.2-1.2 3.2-1.2a4.1 4.1 0 0 1 .1 3.1 4.5 4.5 0 0 1 1.2 3.1c0 4.4-2.7 5.4-5.3 5.7a2.8 2.8 0 0 1 .8 2.2v3.2c0 .3.2.7.8.6A11.5 11.5 0 0 0 12 .5z"/></svg>`,
	"tiktok":    `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M19.6 6.7a4.8 4.8 0 0 1-3.8-4.3V2h-3.4v13.4a2.9 2.9 0 1 1-2-2.7V9.2a6.3 6.3 0 1 0 5.4 6.2V8.9a8.1 8.1 0 0 0 4.3 1.3V6.8z"/></svg>`,
	"messenger": `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 2C6.4 2 2 6.1 2 11.3a9 9 0 0 0 3.4 7v3.4l3.2-1.8a10.7 10.7 0 0 0 3.4.5c5.6 0 10-4.1 10-9.3S17.6 2 12 2zm1.1 12.5-2.6-2.7-5 2.7 5.5-5.8 2.6 2.7 4.9-2.7z"/></svg>`,
	"viber":     `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 1.5c-5.9 0-9.5 2.8-9.5 8.5 0 3.4 1.2 5.7 3.3 7v4.2a.5.5 0 0 0 .8.4l2.7-2.3a16.6 16.6 0 0 0 2.7.2c5.9 0 9.5-2.8 9.5-8.5S17.9 1.5 12 1.5zm4.4 12.1-.9.9c-.9.8-3.2-.2-5.2-2.1S7 8.1 7.8 7.2l.9-.9a.7.7 0 0 1 1 .1l1.2 1.5a.8.8 0 0 1-.1 1l-.4.4a7.9 7.9 0 0 0 2.6 2.6l.4-.4a.8.8 0 0 1 1-.1l1.5 1.2a.7.7 0 0 1 .1 1z"/></svg>`,
	"discord":   `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M20.3 4.6A19.8 19.8 0 0 0 15.4 3l-.6 1.2a18 18 0 0 0-5.6 0L8.6 3a19.8 19.8 0 0 0-4.9 1.6A20.3 20.3 0 0 0 .2 18.2a19.9 19.9 0 0 0 6 3l1.3-2a12.8 12.8 0 0 1-2-1l.5-.4a14.3 14.3 0 0 0 12 0l.5.4a12.8 12.8 0 0 1-2 1l1.3 2a19.9 19.9 0 0 0 6-3 20.3 20.3 0 0 0-3.5-13.6zM8.3 15.1a2.3 2.3 0 0 1 0-4.5 2.3 2.3 0 0 1 0 4.5zm7.4 0a2.3 2.3 0 0 1 0-4.5 2.3 2.3 0 0 1 0 4.5z"/></svg>`,
	"email":     `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M20 4H4a2 2 0 0 0-2 2v12a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V6a2 2 0 0 0-2-2zm0 4.2-8 5-8-5V6l8 5 8-5z"/></svg>`,
	"phone":     `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M6.6 10.8a15.5 15.5 0 0 0 6.6 6.6l2.2-2.2a1 1 0 0 1 1-.2 11.4 11.4 0 0 0 3.6.6 1 1 0 0 1 1 1V20a1 1 0 0 1-1 1A17 17 0 0 1 3 4a1 1 0 0 1 1-1h3.5a1 1 0 0 1 1 1 11.4 11.4 0 0 0 .6 3.6 1 1 0 0 1-.3 1z"/></svg>`,
	"website":   `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M12 2a10 10 0 1 0 10 10A10 10 0 0 0 12 2zm7 6h-3a15.7 15.7 0 0 0-1.4-3.6A8.1 8.1 0 0 1 19 8zM12 4a14 14 0 0 1 1.9 4h-3.8A14 14 0 0 1 12 4zM4.3 14a8.2 8.2 0 0 1 0-4h3.4a16.5 16.5 0 0 0 0 4zm.7 2h3a15.7 15.7 0 0 0 1.4 3.6A8.1 8.1 0 0 1 5 16zm3-8H5a8.1 8.1 0 0 1 4.4-3.6A15.7 15.7 0 0 0 8 8zm4 12a14 14 0 0 1-1.9-4h3.8A14 14 0 0 1 12 20zm2.3-6H9.7a14.6 14.6 0 0 1 0-4h4.6a14.6 14.6 0 0 1 0 4zm.3 5.6A15.7 15.7 0 0 0 16 16h3a8.1 8.1 0 0 1-4.4 3.6zM16.3 14a16.5 16.5 0 0 0 0-4h3.4a8.2 8.2 0 0 1 0 4z"/></svg>`,
	"custom":    `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M10.6 13.4a1 1 0 0 1 0-1.4l2.8-2.8a3 3 0 0 1 4.2 4.2l-1.4 1.4a1 1 0 0 1-1.4-1.4l1.4-1.4a1 1 0 0 0-1.4-1.4L12 13.4a1 1 0 0 1-1.4 0zm2.8-2.8a1 1 0 0 1 0 1.4l-2.8 2.8a3 3 0 0 1-4.2-4.2l1.4-1.4a1 1 0 0 1 1.4 1.4L7.8 12a1 1 0 0 0 1.4 1.4l2.8-2.8a1 1 0 0 1 1.4 0z"/></svg>`,
}

// Default launcher button marks, per icon set.
const (
	defaultButtonGlyph = "💬"
	defaultButtonSVG   = `<svg class="%[1]s-svg" viewBox="0 0 24 24" aria-hidden="true"><path d="M20 2H4a2 2 0 0 0-2 2v18l4-4h14a2 2 0 0 0 2-2V4a2 2 0 0 0-2-2z"/></svg>`
)

// resolveIconHTML returns the icon markup for one channel. A custom icon URL
// takes priority over the platform default for every channel type.
func resolveIconHTML(ch ResolvedChannel, iconSet, classPrefix string) string {
	if ch.CustomIconURL != "" {
		return fmt.Sprintf(`<img src="%s" alt="" loading="lazy">`, EscapeHTML(ch.CustomIconURL))
	}

	if iconSet == "svg" {
		if svg, ok := svgIcons[ch.Type]; ok {
			return fmt.Sprintf(svg, classPrefix)
		}
		return fmt.Sprintf(svgIcons["custom"], classPrefix)
	}

	if p, ok := platforms[ch.Type]; ok {
		return fmt.Sprintf(`<span class="%s-glyph-icon">%s</span>`, classPrefix, p.glyph)
	}
	return fmt.Sprintf(`<span class="%s-glyph-icon">%s</span>`, classPrefix, platforms["custom"].glyph)
}

// buttonIconHTML returns the launcher's default mark when neither a custom
// icon nor a video preview applies.
func buttonIconHTML(iconSet, classPrefix string) string {
	if iconSet == "svg" {
		return fmt.Sprintf(defaultButtonSVG, classPrefix)
	}
	return fmt.Sprintf(`<span class="%s-glyph">%s</span>`, classPrefix, defaultButtonGlyph)
}

// sanitizeDOMID keeps only characters that are safe in a DOM id.
func sanitizeDOMID(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
