package particle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/greeting/core"
)

const samples = 2000

func TestGlitterRanges(t *testing.T) {
	e := NewGlitterEmitter(NewSeededRand(1))
	origin := core.Point{X: 100, Y: 100}

	for i := 0; i < samples; i++ {
		p := e.Emit(origin)
		assert.Equal(t, KindSpark, p.Kind)
		assert.Equal(t, origin, p.Origin)

		dist := math.Hypot(p.DX, p.DY)
		assert.InDelta(t, 105, dist, 35.0001)
		assert.GreaterOrEqual(t, p.Rotation, 0.0)
		assert.Less(t, p.Rotation, 260.0)
		assert.GreaterOrEqual(t, p.Delay, time.Duration(0))
		assert.Less(t, p.Delay, 110*time.Millisecond)
		assert.GreaterOrEqual(t, p.Width, 2.0)
		assert.LessOrEqual(t, p.Width, 5.0)
		assert.Equal(t, p.Width, p.Height)
		assert.GreaterOrEqual(t, p.Opacity, 0.65)
		assert.LessOrEqual(t, p.Opacity, 1.0)
		assert.Equal(t, GlitterDuration, p.Duration)
		assert.Contains(t, GlitterPalette, p.Color)
	}
}

func TestGlitterCoversAllDirections(t *testing.T) {
	e := NewGlitterEmitter(NewSeededRand(2))
	var quadrants [4]int
	for i := 0; i < samples; i++ {
		p := e.Emit(core.Point{})
		q := 0
		if p.DX < 0 {
			q |= 1
		}
		if p.DY < 0 {
			q |= 2
		}
		quadrants[q]++
	}
	for q, n := range quadrants {
		assert.Positive(t, n, "quadrant %d never hit", q)
	}
}

func TestFeatherRanges(t *testing.T) {
	e := NewFeatherEmitter(NewSeededRand(3))
	origin := core.Point{X: 300, Y: 40}

	for i := 0; i < samples; i++ {
		p := e.Emit(origin)
		assert.Equal(t, KindFeather, p.Kind)
		assert.GreaterOrEqual(t, p.DX, -220.0)
		assert.LessOrEqual(t, p.DX, 220.0)
		assert.GreaterOrEqual(t, p.DY, 620.0, "feathers always fall")
		assert.LessOrEqual(t, p.DY, 1140.0)
		assert.GreaterOrEqual(t, p.Rotation, -60.0)
		assert.LessOrEqual(t, p.Rotation, 60.0)
		assert.GreaterOrEqual(t, p.Spin, 60.0)
		assert.LessOrEqual(t, p.Spin, 200.0)
		assert.GreaterOrEqual(t, p.Duration, 4800*time.Millisecond)
		assert.LessOrEqual(t, p.Duration, 8*time.Second)
		assert.GreaterOrEqual(t, p.Opacity, 0.55)
		assert.LessOrEqual(t, p.Opacity, 0.90)
		assert.GreaterOrEqual(t, p.Width, 12.0)
		assert.LessOrEqual(t, p.Width, 32.0)
		assert.GreaterOrEqual(t, p.Height, 4.0)
		assert.LessOrEqual(t, p.Height, 11.0)

		n := e.Batch()
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
	}
}

func TestBubbleRangesAndClamp(t *testing.T) {
	vp := core.Viewport{Width: 640, Height: 480}
	e := NewBubbleEmitter(NewSeededRand(4), func() core.Viewport { return vp })

	// Corner origin forces the jitter to be clamped
	origin := core.Point{X: 0, Y: 480}
	palette := make(map[core.RGB]bool)

	for i := 0; i < samples; i++ {
		p := e.Emit(origin)
		assert.Equal(t, KindBubble, p.Kind)
		assert.GreaterOrEqual(t, p.Origin.X, 0.0)
		assert.LessOrEqual(t, p.Origin.X, 10.0)
		assert.GreaterOrEqual(t, p.Origin.Y, 474.0)
		assert.LessOrEqual(t, p.Origin.Y, 480.0)

		r := p.Width / 2
		assert.GreaterOrEqual(t, r, 6.0)
		assert.LessOrEqual(t, r, 24.0)
		assert.GreaterOrEqual(t, p.DX, -60.0)
		assert.LessOrEqual(t, p.DX, 60.0)
		assert.Equal(t, -(480.0 + 140.0), p.DY, "bubbles rise past the top")
		assert.GreaterOrEqual(t, p.Duration, 8*time.Second)
		assert.LessOrEqual(t, p.Duration, 18*time.Second)
		assert.GreaterOrEqual(t, p.Opacity, 0.28)
		assert.LessOrEqual(t, p.Opacity, 0.62)
		palette[p.Color] = true
	}
	assert.Len(t, palette, len(BubblePalette))
}

func TestBubbleFollowsViewportResize(t *testing.T) {
	vp := core.Viewport{Width: 640, Height: 480}
	e := NewBubbleEmitter(NewSeededRand(5), func() core.Viewport { return vp })

	assert.Equal(t, -620.0, e.Emit(core.Point{X: 10, Y: 10}).DY)
	vp = core.Viewport{Width: 800, Height: 1000}
	assert.Equal(t, -1140.0, e.Emit(core.Point{X: 10, Y: 10}).DY)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "spark", KindSpark.String())
	assert.Equal(t, "feather", KindFeather.String())
	assert.Equal(t, "bubble", KindBubble.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
