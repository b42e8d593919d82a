package widgetengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	cases := []struct {
		typ   string
		value string
		want  string
	}{
		{"whatsapp", "+994 50 123 45 67", "https://wa.me/994501234567"},
		{"whatsapp", "+994501234567", "https://wa.me/994501234567"},
		{"telegram", "@support", "https://t.me/support"},
		{"telegram", "support", "https://t.me/support"},
		{"telegram", "https://t.me/support", "https://t.me/support"},
		{"email", "team@example.com", "mailto:team@example.com"},
		{"email", "mailto:team@example.com", "mailto:team@example.com"},
		{"phone", "+1 555 0100", "tel:+15550100"},
		{"viber", "+1 (555) 010-0", "viber://chat?number=15550100"},
		{"discord", "https://discord.gg/abc123", "https://discord.gg/abc123"},
		{"instagram", "@brand", "https://instagram.com/brand"},
		{"instagram", "https://instagram.com/brand", "https://instagram.com/brand"},
		{"facebook", "brandpage", "https://facebook.com/brandpage"},
		{"linkedin", "jane-doe", "https://linkedin.com/in/jane-doe"},
		{"tiktok", "@brand", "https://tiktok.com/@brand"},
		{"messenger", "brand", "https://m.me/brand"},
		{"github", "brand", "https://github.com/brand"},
		{"website", "example.com", "https://example.com"},
		{"website", "http://example.com", "http://example.com"},
		{"custom", "https://example.com/contact", "https://example.com/contact"},
		{"somenewplatform", "example.com/x", "https://example.com/x"},
		{"whatsapp", "", "#"},
		{"", "   ", "#"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolveURL(c.typ, c.value), "%s %q", c.typ, c.value)
	}
}

func TestResolveURLDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "https://wa.me/123", ResolveURL("whatsapp", "1-2-3"))
	}
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#25D366", ResolveColor("whatsapp"))
	assert.Equal(t, "#25D366", ResolveColor("WhatsApp"))
	assert.Equal(t, neutralColor, ResolveColor("somenewplatform"))
	assert.Equal(t, neutralColor, ResolveColor(""))
}

func TestResolveLabel(t *testing.T) {
	assert.Equal(t, "Sales", ResolveLabel("whatsapp", "Sales"))
	assert.Equal(t, "WhatsApp", ResolveLabel("whatsapp", ""))
	assert.Equal(t, "WhatsApp", ResolveLabel("whatsapp", "   "))
	assert.Equal(t, "Contact", ResolveLabel("somenewplatform", ""))
}

func TestNormalizeFlatChannels(t *testing.T) {
	out := Normalize([]Channel{
		{ID: "a", Type: "whatsapp", Value: "+123"},
		{ID: "b", Type: "email", Value: "x@y.z"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Empty(t, out[0].Children)
}

func TestNormalizeParentIDGrouping(t *testing.T) {
	out := Normalize([]Channel{
		{ID: "p", Type: "telegram", Value: "@support"},
		{ID: "c1", Type: "telegram", Value: "@support2", ParentID: "p"},
		{ID: "solo", Type: "email", Value: "x@y.z"},
		{ID: "c2", Type: "telegram", Value: "@support3", ParentID: "p"},
	})
	require.Len(t, out, 2)
	require.Len(t, out[0].Children, 2)
	assert.Equal(t, "c1", out[0].Children[0].ID)
	assert.Equal(t, "c2", out[0].Children[1].ID)
	assert.Equal(t, "solo", out[1].ID)
}

func TestNormalizeChildChannelsGrouping(t *testing.T) {
	out := Normalize([]Channel{
		{ID: "p", Type: "telegram", Value: "@support", ChildChannels: []Channel{
			{ID: "c1", Type: "telegram", Value: "@support2"},
		}},
	})
	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 1)
	assert.Equal(t, "https://t.me/support2", out[0].Children[0].URL)
}

func TestNormalizeGroupWrapperWins(t *testing.T) {
	// A ParentID back-reference pointing at an explicit group is ignored;
	// that channel renders top-level instead.
	out := Normalize([]Channel{
		{ID: "g", Type: "whatsapp", Value: "+1", IsGroup: true, GroupItems: []Channel{
			{ID: "i1", Type: "whatsapp", Value: "+2"},
		}},
		{ID: "stray", Type: "email", Value: "x@y.z", ParentID: "g"},
	})
	require.Len(t, out, 2)
	require.Len(t, out[0].Children, 1)
	assert.Equal(t, "i1", out[0].Children[0].ID)
	assert.Equal(t, "stray", out[1].ID)
}

func TestNormalizeDepthCapped(t *testing.T) {
	// Grandchildren are dropped: children always resolve as leaves.
	out := Normalize([]Channel{
		{ID: "p", Type: "telegram", Value: "@a", ChildChannels: []Channel{
			{ID: "c", Type: "telegram", Value: "@b", ChildChannels: []Channel{
				{ID: "gc", Type: "telegram", Value: "@c"},
			}},
		}},
	})
	require.Len(t, out, 1)
	require.Len(t, out[0].Children, 1)
	assert.Empty(t, out[0].Children[0].Children)
}

func TestNormalizeSelfReferenceIgnored(t *testing.T) {
	out := Normalize([]Channel{
		{ID: "a", Type: "email", Value: "x@y.z", ParentID: "a"},
		{ID: "b", Type: "email", Value: "q@y.z", ParentID: "missing"},
	})
	require.Len(t, out, 2)
}

func TestNormalizeCustomIconCarried(t *testing.T) {
	out := Normalize([]Channel{
		{ID: "a", Type: "whatsapp", Value: "+1", CustomIconURL: "https://cdn.example.com/icon.png"},
		{ID: "b", Type: "email", Value: "x@y.z", CustomIcon: "https://cdn.example.com/legacy.png"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "https://cdn.example.com/icon.png", out[0].CustomIconURL)
	assert.Equal(t, "https://cdn.example.com/legacy.png", out[1].CustomIconURL)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]Channel{}))
}
