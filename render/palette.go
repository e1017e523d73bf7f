package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greeting/core"
)

// Page colours, dark background so glitter and bubbles read against it
var (
	RgbBackground = core.RGB{R: 26, G: 27, B: 38}
	RgbFrame      = core.RGB{R: 122, G: 162, B: 247}
	RgbLabel      = core.RGB{R: 192, G: 202, B: 245}
	RgbLink       = core.RGB{R: 255, G: 215, B: 0}
	RgbBird       = core.RGB{R: 247, G: 118, B: 142}
)

// Color converts to a tcell true colour
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Faded blends c toward the background by alpha
func Faded(c core.RGB, alpha float64) tcell.Color {
	return Color(RgbBackground.Blend(c, alpha))
}
