package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChannelColor spaces hues evenly around the wheel: series index of count
// gets hue index*360/count at 70% saturation and 50% lightness.
func ChannelColor(index, count int) drawing.Color {
	r, g, b := channelHSL(index, count).RGB255()

	return drawing.Color{R: r, G: g, B: b, A: 255}
}

// ChannelHex is ChannelColor as a #rrggbb string for HTML legends.
func ChannelHex(index, count int) string {
	return channelHSL(index, count).Hex()
}

func channelHSL(index, count int) colorful.Color {
	if count <= 0 {
		count = 1
	}

	return colorful.Hsl(float64(index*360)/float64(count), 0.7, 0.5)
}
