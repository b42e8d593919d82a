package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainWidget "github.com/floatkit/floatkit/domains/widget"
	"github.com/floatkit/floatkit/widgetengine"
)

func TestWidgetModelRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := domainWidget.Widget{
		ID:         "w-9",
		Name:       "Pricing page",
		TemplateID: "elegant",
		Active:     true,
		Config: widgetengine.WidgetConfig{
			WidgetID:   "w-9",
			TemplateID: "elegant",
			Channels: []widgetengine.Channel{
				{ID: "c1", Type: "whatsapp", Value: "+994501234567", Label: "Sales"},
				{ID: "g1", Type: "group", Label: "Support", IsGroup: true, ChildChannels: []widgetengine.Channel{
					{ID: "c2", Type: "telegram", Value: "@support"},
				}},
			},
			ButtonColor:     "#1a1a2e",
			Position:        "bottom-left",
			ButtonSize:      70,
			Tooltip:         "Chat with us",
			TooltipDisplay:  "hover",
			TooltipPosition: "top",
			GreetingMessage: "Hi there!",
			VideoEnabled:    true,
			VideoURL:        "https://cdn.example.com/intro.mp4",
			VideoHeight:     180,
			UseVideoPreview: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	model := toWidgetModel(w)
	assert.Equal(t, "w-9", model.ID)
	assert.Equal(t, "elegant", model.TemplateID)
	assert.Contains(t, model.Channels, `"whatsapp"`)
	assert.Contains(t, model.Channels, `"@support"`)

	back := fromWidgetModel(model)
	assert.Equal(t, w.ID, back.ID)
	assert.Equal(t, w.Name, back.Name)
	assert.Equal(t, w.Active, back.Active)
	assert.Equal(t, w.Config.ButtonColor, back.Config.ButtonColor)
	assert.Equal(t, w.Config.ButtonSize, back.Config.ButtonSize)
	assert.Equal(t, w.Config.VideoURL, back.Config.VideoURL)
	require.Len(t, back.Config.Channels, 2)
	assert.Equal(t, "Sales", back.Config.Channels[0].Label)
	require.Len(t, back.Config.Channels[1].ChildChannels, 1)
	assert.Equal(t, "telegram", back.Config.Channels[1].ChildChannels[0].Type)
}

func TestWidgetModelEmptyChannels(t *testing.T) {
	back := fromWidgetModel(widgetModel{ID: "w-0", Channels: ""})
	assert.Empty(t, back.Config.Channels)

	// Corrupt JSON degrades to an empty channel list instead of failing.
	back = fromWidgetModel(widgetModel{ID: "w-0", Channels: "{not json"})
	assert.Empty(t, back.Config.Channels)
}
