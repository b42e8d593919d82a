package widgetengine

import "strings"

// Channel is the stored shape of one contact endpoint, exactly as the
// builder persists it. Two grouping representations coexist historically:
// ParentID/ChildChannels back-references and the explicit IsGroup/GroupItems
// wrapper. Normalize reconciles both into ResolvedChannel before any markup
// is generated.
type Channel struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Value         string    `json:"value"`
	Label         string    `json:"label,omitempty"`
	CustomIcon    string    `json:"customIcon,omitempty"`
	CustomIconURL string    `json:"customIconUrl,omitempty"`
	ParentID      string    `json:"parentId,omitempty"`
	ChildChannels []Channel `json:"childChannels,omitempty"`
	IsGroup       bool      `json:"isGroup,omitempty"`
	GroupItems    []Channel `json:"groupItems,omitempty"`
}

// ResolvedChannel is the single internal shape all generators consume.
// A channel with Children renders as a dropdown group, otherwise as a leaf.
type ResolvedChannel struct {
	ID            string
	Type          string
	Label         string
	URL           string
	Color         string
	CustomIconURL string
	Children      []ResolvedChannel
}

const neutralColor = "#6B7280"

type platformInfo struct {
	label string
	color string
	base  string // canonical profile base URL for handle-style platforms
	glyph string
}

var platforms = map[string]platformInfo{
	"whatsapp":  {label: "WhatsApp", color: "#25D366", glyph: "💬"},
	"telegram":  {label: "Telegram", color: "#0088CC", glyph: "✈️"},
	"instagram": {label: "Instagram", color: "#E4405F", base: "https://instagram.com/", glyph: "📷"},
	"facebook":  {label: "Facebook", color: "#1877F2", base: "https://facebook.com/", glyph: "👥"},
	"twitter":   {label: "Twitter", color: "#1DA1F2", base: "https://twitter.com/", glyph: "🐦"},
	"linkedin":  {label: "LinkedIn", color: "#0A66C2", base: "https://linkedin.com/in/", glyph: "💼"},
	"youtube":   {label: "YouTube", color: "#FF0000", base: "https://youtube.com/", glyph: "▶️"},
	"github":    {label: "GitHub", color: "#181717", base: "https://github.com/", glyph: "🐙"},
	"tiktok":    {label: "TikTok", color: "#010101", base: "https://tiktok.com/@", glyph: "🎵"},
	"messenger": {label: "Messenger", color: "#0084FF", base: "https://m.me/", glyph: "💬"},
	"viber":     {label: "Viber", color: "#7360F2", glyph: "📱"},
	"discord":   {label: "Discord", color: "#5865F2", glyph: "🎮"},
	"email":     {label: "Email", color: "#EA4335", glyph: "✉️"},
	"phone":     {label: "Phone", color: "#34A853", glyph: "📞"},
	"website":   {label: "Website", color: "#6366F1", glyph: "🌐"},
	"custom":    {label: "Contact", color: "#6B7280", glyph: "🔗"},
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveURL maps a platform type plus the raw user-entered value to a
// normalized deep link. It never fails; the worst case is a link nobody can
// follow. Same input always yields the same output.
func ResolveURL(channelType, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "#"
	}

	switch strings.ToLower(channelType) {
	case "whatsapp":
		return "https://wa.me/" + digitsOnly(value)
	case "telegram":
		if strings.HasPrefix(value, "http") {
			return value
		}
		return "https://t.me/" + strings.TrimPrefix(value, "@")
	case "email":
		return "mailto:" + strings.TrimPrefix(value, "mailto:")
	case "phone":
		return "tel:" + strings.ReplaceAll(strings.TrimPrefix(value, "tel:"), " ", "")
	case "viber":
		return "viber://chat?number=" + digitsOnly(value)
	case "discord":
		// Assumed to already be an invite URL.
		return value
	case "instagram", "facebook", "twitter", "linkedin", "youtube", "github", "tiktok", "messenger":
		if strings.HasPrefix(value, "http") {
			return value
		}
		return platforms[strings.ToLower(channelType)].base + strings.TrimPrefix(value, "@")
	default: // website, custom and unknown types
		if strings.HasPrefix(value, "http") {
			return value
		}
		return "https://" + value
	}
}

// ResolveColor returns the brand color for a platform type, or a neutral
// gray for unknown types.
func ResolveColor(channelType string) string {
	if p, ok := platforms[strings.ToLower(channelType)]; ok {
		return p.color
	}
	return neutralColor
}

// ResolveLabel returns the display label, falling back to the platform's
// canonical label when the user left it blank.
func ResolveLabel(channelType, label string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	if p, ok := platforms[strings.ToLower(channelType)]; ok {
		return p.label
	}
	return "Contact"
}

// resolveOne flattens one channel into the internal shape, without children.
func resolveOne(ch Channel) ResolvedChannel {
	iconURL := ch.CustomIconURL
	if iconURL == "" {
		iconURL = ch.CustomIcon
	}
	return ResolvedChannel{
		ID:            ch.ID,
		Type:          strings.ToLower(ch.Type),
		Label:         ResolveLabel(ch.Type, ch.Label),
		URL:           ResolveURL(ch.Type, ch.Value),
		Color:         ResolveColor(ch.Type),
		CustomIconURL: iconURL,
	}
}

// Normalize reconciles the two stored grouping representations into one
// list of top-level resolved channels, preserving stored order. Rules:
//   - an explicit IsGroup wrapper wins; ParentID back-references pointing at
//     it are ignored and those children render top-level
//   - ChildChannels on a non-group parent are used as-is
//   - otherwise children are collected from ParentID back-references in
//     stored order
//   - grouping depth is capped at two; grandchildren are dropped
func Normalize(channels []Channel) []ResolvedChannel {
	byID := make(map[string]Channel, len(channels))
	for _, ch := range channels {
		if ch.ID != "" {
			byID[ch.ID] = ch
		}
	}

	childrenOf := make(map[string][]Channel)
	claimed := make(map[string]bool)
	for _, ch := range channels {
		if ch.ParentID == "" || ch.ParentID == ch.ID {
			continue
		}
		parent, ok := byID[ch.ParentID]
		if !ok || parent.IsGroup {
			continue
		}
		childrenOf[ch.ParentID] = append(childrenOf[ch.ParentID], ch)
		claimed[ch.ID] = true
	}

	var out []ResolvedChannel
	for _, ch := range channels {
		if claimed[ch.ID] {
			continue
		}

		resolved := resolveOne(ch)

		var items []Channel
		switch {
		case ch.IsGroup:
			items = ch.GroupItems
		case len(ch.ChildChannels) > 0:
			items = ch.ChildChannels
		default:
			items = childrenOf[ch.ID]
		}
		for _, item := range items {
			resolved.Children = append(resolved.Children, resolveOne(item))
		}

		out = append(out, resolved)
	}
	return out
}
