package render

import (
	"math"

	"github.com/lixenwraith/greeting/particle"
)

var (
	sparkGlyphs   = []rune{'✦', '+', '*', '·'}
	featherGlyphs = []rune{'|', '/', '-', '\\'}
)

// Glyph picks the cell character for a particle frame
// Sparks shrink as they fade, feathers follow their angle, large bubbles get the capital
func Glyph(p particle.Particle, f particle.Frame) rune {
	switch p.Kind {
	case particle.KindSpark:
		i := int((1 - f.Alpha/math.Max(p.Opacity, 1e-9)) * float64(len(sparkGlyphs)))
		return sparkGlyphs[min(max(i, 0), len(sparkGlyphs)-1)]
	case particle.KindFeather:
		a := math.Mod(f.Angle, 180)
		if a < 0 {
			a += 180
		}
		// 45 degree sectors centred on vertical, diagonal, horizontal, anti-diagonal
		i := int(math.Floor((a+22.5)/45)) % len(featherGlyphs)
		return featherGlyphs[i]
	case particle.KindBubble:
		if p.Width >= 32 {
			return 'O'
		}
		return 'o'
	default:
		return '?'
	}
}
