package particle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/vmath"
)

const (
	// GlitterBurstCount is the number of sparks per click
	GlitterBurstCount = 20

	// GlitterDuration is the spark animation length; expiry adds the overlay grace
	GlitterDuration = 650 * time.Millisecond

	glitterMinDistance = 70.0
	glitterMaxDistance = 140.0
	glitterMaxRotation = 260.0
	glitterMaxDelayMs  = 110.0
	glitterMinSize     = 2.0
	glitterMaxSize     = 5.0
	glitterMinOpacity  = 0.65
	glitterMaxOpacity  = 1.0
)

// GlitterPalette holds the spark tints
var GlitterPalette = []core.RGB{
	core.MustHex("#ffd166"),
	core.MustHex("#ffe8a3"),
	core.MustHex("#fff4d6"),
	core.MustHex("#f7b2d9"),
}

// GlitterEmitter throws sparks radially out of the origin
type GlitterEmitter struct {
	rng *rand.Rand
}

// NewGlitterEmitter creates a spark emitter using rng
func NewGlitterEmitter(rng *rand.Rand) *GlitterEmitter {
	return &GlitterEmitter{rng: rng}
}

// Emit returns one spark
func (e *GlitterEmitter) Emit(origin core.Point) Particle {
	angle := e.rng.Float64() * 2 * math.Pi
	dist := vmath.RandRange(e.rng, glitterMinDistance, glitterMaxDistance)
	size := vmath.RandRange(e.rng, glitterMinSize, glitterMaxSize)

	return Particle{
		Kind:     KindSpark,
		Origin:   origin,
		DX:       math.Cos(angle) * dist,
		DY:       math.Sin(angle) * dist,
		Rotation: e.rng.Float64() * glitterMaxRotation,
		Delay:    millis(e.rng.Float64() * glitterMaxDelayMs),
		Duration: GlitterDuration,
		Width:    size,
		Height:   size,
		Opacity:  vmath.RandRange(e.rng, glitterMinOpacity, glitterMaxOpacity),
		Color:    GlitterPalette[e.rng.IntN(len(GlitterPalette))],
	}
}
