package widgetengine

import "fmt"

// Layout holds every derived numeric and CSS value the templates consume.
// All of it is pure arithmetic over the defaulted config, so identical
// configs always produce identical layouts.
type Layout struct {
	PositionStyle             string
	TooltipPositionStyle      string
	ModalAlignmentStyle       string
	ModalContentPositionStyle string

	ButtonSize       int
	ButtonSizeMobile int
	IconSize         int
	IconSizeMobile   int
	ChannelGap       int
	ChannelGapMobile int
	// ChannelBottomOffset anchors the modal above the button.
	ChannelBottomOffset int
}

const (
	tooltipOffset = 12
	edgeMargin    = 20
	modalMargin   = 24
)

// ComputeLayout derives all layout values from the defaulted config.
func ComputeLayout(cfg WidgetConfig) Layout {
	size := cfg.ButtonSize

	l := Layout{
		ButtonSize:          size,
		ButtonSizeMobile:    maxInt(48, size-8),
		IconSize:            clampInt(size/2, 24, 40),
		IconSizeMobile:      clampInt((size*45)/100, 22, 36),
		ChannelGap:          10 + size/20,
		ChannelGapMobile:    8 + size/20,
		ChannelBottomOffset: size + modalMargin,
	}

	switch cfg.Position {
	case "left":
		l.PositionStyle = fmt.Sprintf("left: %dpx;", edgeMargin)
		l.ModalAlignmentStyle = "justify-content: flex-start;"
		l.ModalContentPositionStyle = fmt.Sprintf("margin-left: %dpx; margin-bottom: %dpx;", edgeMargin, l.ChannelBottomOffset)
	case "center":
		l.PositionStyle = "left: 50%; transform: translateX(-50%);"
		l.ModalAlignmentStyle = "justify-content: center;"
		l.ModalContentPositionStyle = fmt.Sprintf("margin-bottom: %dpx;", l.ChannelBottomOffset)
	default: // right
		l.PositionStyle = fmt.Sprintf("right: %dpx;", edgeMargin)
		l.ModalAlignmentStyle = "justify-content: flex-end;"
		l.ModalContentPositionStyle = fmt.Sprintf("margin-right: %dpx; margin-bottom: %dpx;", edgeMargin, l.ChannelBottomOffset)
	}

	switch cfg.TooltipPosition {
	case "bottom":
		l.TooltipPositionStyle = fmt.Sprintf("top: %dpx; left: 50%%; transform: translateX(-50%%);", size+tooltipOffset)
	case "left":
		l.TooltipPositionStyle = fmt.Sprintf("right: %dpx; top: 50%%; transform: translateY(-50%%);", size+tooltipOffset)
	case "right":
		l.TooltipPositionStyle = fmt.Sprintf("left: %dpx; top: 50%%; transform: translateY(-50%%);", size+tooltipOffset)
	default: // top
		l.TooltipPositionStyle = fmt.Sprintf("bottom: %dpx; left: 50%%; transform: translateX(-50%%);", size+tooltipOffset)
	}

	return l
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
