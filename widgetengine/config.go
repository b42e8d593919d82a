package widgetengine

// WidgetConfig is the render-time projection of a persisted widget. It is
// the sole input to the engine besides the template definition; rendering is
// a pure function of the two.
type WidgetConfig struct {
	WidgetID           string    `json:"widgetId"`
	Channels           []Channel `json:"channels"`
	ButtonColor        string    `json:"buttonColor"`
	Position           string    `json:"position"`
	ButtonSize         int       `json:"buttonSize"`
	Tooltip            string    `json:"tooltip"`
	TooltipDisplay     string    `json:"tooltipDisplay"`
	TooltipPosition    string    `json:"tooltipPosition"`
	GreetingMessage    string    `json:"greetingMessage"`
	CustomIconURL      string    `json:"customIconUrl"`
	VideoEnabled       bool      `json:"videoEnabled"`
	VideoURL           string    `json:"videoUrl"`
	VideoHeight        int       `json:"videoHeight"`
	VideoAlignment     string    `json:"videoAlignment"`
	VideoObjectFit     string    `json:"videoObjectFit"`
	UseVideoPreview    bool      `json:"useVideoPreview"`
	PreviewVideoHeight int       `json:"previewVideoHeight"`
	TemplateID         string    `json:"templateId"`
}

// Documented defaults. Omitting a field must yield the same output as
// supplying its default explicitly.
const (
	DefaultPosition        = "right"
	DefaultTooltipDisplay  = "hover"
	DefaultTooltipPosition = "top"
	DefaultButtonSize      = 60
	DefaultButtonColor     = "#6366F1"
	DefaultGreeting        = "Hi there! How can we help?"
	DefaultVideoHeight     = 180
	DefaultVideoAlignment  = "center"
	DefaultVideoObjectFit  = "cover"
	DefaultPreviewHeight   = 80

	minButtonSize = 50
	maxButtonSize = 80
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func oneOf(v, fallback string, allowed ...string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

// WithDefaults fills every missing or out-of-range field with its documented
// default. All downstream components assume they receive a defaulted config.
func (c WidgetConfig) WithDefaults() WidgetConfig {
	c.Position = oneOf(c.Position, DefaultPosition, "left", "center", "right")
	c.TooltipDisplay = oneOf(c.TooltipDisplay, DefaultTooltipDisplay, "hover", "always", "never")
	c.TooltipPosition = oneOf(c.TooltipPosition, DefaultTooltipPosition, "top", "bottom", "left", "right")
	c.VideoAlignment = oneOf(c.VideoAlignment, DefaultVideoAlignment, "top", "center", "bottom")
	c.VideoObjectFit = oneOf(c.VideoObjectFit, DefaultVideoObjectFit, "cover", "contain", "fill")

	if c.ButtonSize == 0 {
		c.ButtonSize = DefaultButtonSize
	}
	c.ButtonSize = clampInt(c.ButtonSize, minButtonSize, maxButtonSize)

	if c.ButtonColor == "" {
		c.ButtonColor = DefaultButtonColor
	}
	if c.GreetingMessage == "" {
		c.GreetingMessage = DefaultGreeting
	}
	if c.VideoHeight <= 0 {
		c.VideoHeight = DefaultVideoHeight
	}
	if c.PreviewVideoHeight <= 0 {
		c.PreviewVideoHeight = DefaultPreviewHeight
	}
	return c
}
