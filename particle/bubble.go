package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/vmath"
)

const (
	// BubbleOvershoot carries bubbles past the top edge before they expire
	BubbleOvershoot = 140.0

	bubbleMinRadius  = 6.0
	bubbleMaxRadius  = 24.0
	bubbleMaxDrift   = 60.0
	bubbleMinSeconds = 8.0
	bubbleMaxSeconds = 18.0
	bubbleMinOpacity = 0.28
	bubbleMaxOpacity = 0.62
	bubbleJitterX    = 10.0
	bubbleJitterY    = 6.0
)

// BubblePalette is the fixed five-colour bubble palette
var BubblePalette = []core.RGB{
	core.MustHex("#a0e7ff"),
	core.MustHex("#ffc8dd"),
	core.MustHex("#cdb4db"),
	core.MustHex("#bde0fe"),
	core.MustHex("#caffbf"),
}

// BubbleEmitter releases bubbles that rise past the top of the viewport
type BubbleEmitter struct {
	rng      *rand.Rand
	viewport func() core.Viewport
}

// NewBubbleEmitter creates a bubble emitter; viewport is queried on every emission
func NewBubbleEmitter(rng *rand.Rand, viewport func() core.Viewport) *BubbleEmitter {
	return &BubbleEmitter{rng: rng, viewport: viewport}
}

// Emit returns one bubble spawned near origin
func (e *BubbleEmitter) Emit(origin core.Point) Particle {
	vp := e.viewport()
	spawn := vp.ClampPoint(origin.Add(
		vmath.RandRange(e.rng, -bubbleJitterX, bubbleJitterX),
		vmath.RandRange(e.rng, -bubbleJitterY, bubbleJitterY),
	))
	r := vmath.RandRange(e.rng, bubbleMinRadius, bubbleMaxRadius)

	return Particle{
		Kind:     KindBubble,
		Origin:   spawn,
		DX:       vmath.RandRange(e.rng, -bubbleMaxDrift, bubbleMaxDrift),
		DY:       -(vp.Height + BubbleOvershoot),
		Duration: seconds(vmath.RandRange(e.rng, bubbleMinSeconds, bubbleMaxSeconds)),
		Width:    2 * r,
		Height:   2 * r,
		Opacity:  vmath.RandRange(e.rng, bubbleMinOpacity, bubbleMaxOpacity),
		Color:    BubblePalette[e.rng.IntN(len(BubblePalette))],
	}
}
