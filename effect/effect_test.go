package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/particle"
	"github.com/lixenwraith/greeting/scheduler"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func fullLayout(vp core.Viewport) []page.Element {
	mouth := &core.Point{X: 0.9, Y: 0.4}
	return []page.Element{
		{ID: "birdLeft", Box: core.Rect{Left: 40, Top: 40, Width: 64, Height: 32}, Anchor: mouth},
		{ID: "birdRight", Box: core.Rect{Left: vp.Width - 104, Top: 40, Width: 64, Height: 32}, Anchor: mouth},
		{ID: "giftCard", Box: core.Rect{Left: 100, Top: 100, Width: 200, Height: 200}, Anchor: &core.Point{X: 0.5, Y: 1}},
	}
}

func emptyLayout(core.Viewport) []page.Element { return nil }

type harness struct {
	loop  *engine.Loop
	clock *engine.MockTimeProvider
	doc   *page.Document
	env   Env
}

func newHarness(layout page.LayoutFunc, reduced bool) *harness {
	clock := engine.NewMockTimeProvider(epoch)
	loop := engine.NewLoop(clock)
	doc := page.NewDocument("test", loop, core.Viewport{Width: 640, Height: 480}, layout)
	return &harness{
		loop:  loop,
		clock: clock,
		doc:   doc,
		env: Env{
			Timers:        loop,
			Doc:           doc,
			ReducedMotion: reduced,
			Rand:          particle.NewSeededRand(42),
		},
	}
}

func (h *harness) live(name string) int {
	total := 0
	for _, s := range h.doc.Overlay.Surfaces() {
		if s.Name() == name {
			total += s.Len()
		}
	}
	return total
}

func TestGlitterBurstExpiresAt850ms(t *testing.T) {
	h := newHarness(fullLayout, false)
	g := NewGlitter(h.env)

	n := g.Burst(core.Point{X: 100, Y: 100})
	assert.Equal(t, 20, n)
	assert.Equal(t, scheduler.PhaseDone, g.Phase())

	surfaces := h.doc.Overlay.Surfaces()
	require.Len(t, surfaces, 1)
	burst := surfaces[0]
	require.Equal(t, 20, burst.Len())
	for _, l := range burst.Live() {
		assert.Equal(t, core.Point{X: 100, Y: 100}, l.Particle.Origin)
		assert.Equal(t, epoch, l.Born)
	}

	h.loop.Advance(849 * time.Millisecond)
	assert.Equal(t, 20, burst.Len())

	h.loop.Advance(time.Millisecond)
	assert.Equal(t, 0, burst.Len())
	assert.False(t, burst.Attached(), "burst container removes itself")
}

func TestGlitterBurstsAreIndependent(t *testing.T) {
	h := newHarness(fullLayout, false)
	g := NewGlitter(h.env)

	g.Burst(core.Point{X: 10, Y: 10})
	h.loop.Advance(400 * time.Millisecond)
	g.Burst(core.Point{X: 20, Y: 20})

	assert.Len(t, h.doc.Overlay.Surfaces(), 2)
	assert.Equal(t, 40, h.live(GlitterSurface))

	h.loop.Advance(450 * time.Millisecond)
	assert.Equal(t, 20, h.live(GlitterSurface))
	assert.Len(t, h.doc.Overlay.Surfaces(), 1)
}

func TestFeatherTickEmitsFourToEight(t *testing.T) {
	h := newHarness(fullLayout, false)
	f := NewFeatherStream(h.env, DefaultFeatherInterval, "birdLeft", "birdRight")

	require.True(t, f.Start())
	assert.Equal(t, scheduler.PhaseRunning, f.Phase())
	assert.Zero(t, f.Emitted(), "first feathers wait for the first tick")

	for tick := 0; tick < 50; tick++ {
		before := f.Emitted()
		h.loop.Advance(DefaultFeatherInterval)
		got := f.Emitted() - before
		assert.GreaterOrEqual(t, got, 4, "tick %d", tick)
		assert.LessOrEqual(t, got, 8, "tick %d", tick)
	}
}

func TestFeatherSurfaceStaysWithinCapacity(t *testing.T) {
	h := newHarness(fullLayout, false)
	f := NewFeatherStream(h.env, 10*time.Millisecond, "birdLeft", "birdRight")
	require.True(t, f.Start())

	for i := 0; i < 200; i++ {
		h.loop.Advance(10 * time.Millisecond)
		assert.LessOrEqual(t, h.live(FeatherSurface), 420)
	}
	assert.Greater(t, f.Emitted(), 420)
}

func TestFeatherMissingAnchorIsSilentNoOp(t *testing.T) {
	h := newHarness(func(vp core.Viewport) []page.Element { return fullLayout(vp)[:1] }, false)
	f := NewFeatherStream(h.env, DefaultFeatherInterval, "birdLeft", "birdRight")

	assert.False(t, f.Start())
	assert.Equal(t, scheduler.PhaseIdle, f.Phase())
	assert.Equal(t, 0, h.loop.Pending())
	assert.Empty(t, h.doc.Overlay.Surfaces())
}

func TestFeatherStopsOnPageHide(t *testing.T) {
	h := newHarness(fullLayout, false)
	f := NewFeatherStream(h.env, DefaultFeatherInterval, "birdLeft", "birdRight")
	require.True(t, f.Start())

	h.loop.Advance(3 * DefaultFeatherInterval)
	before := f.Emitted()
	require.Positive(t, before)

	h.doc.PageHide()
	assert.Equal(t, scheduler.PhaseStopped, f.Phase())
	assert.Empty(t, h.doc.Overlay.Surfaces())

	h.loop.Advance(time.Minute)
	assert.Equal(t, before, f.Emitted())
	assert.Equal(t, 0, h.loop.Pending(), "no timers survive teardown")

	assert.False(t, f.Start(), "stopped stream never restarts")
}

func TestBubbleRampStartsAt520ms(t *testing.T) {
	h := newHarness(fullLayout, false)
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")

	require.True(t, b.Start())
	assert.Equal(t, scheduler.PhaseRamping, b.Phase())
	assert.Equal(t, 1, b.Emitted(), "first tick runs at start")

	h.loop.Advance(519 * time.Millisecond)
	assert.Equal(t, 1, b.Emitted())

	h.loop.Advance(time.Millisecond)
	assert.Equal(t, 2, b.Emitted())
}

func TestBubbleSwitchesToSteadyInterval(t *testing.T) {
	h := newHarness(fullLayout, false)
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")
	require.True(t, b.Start())

	h.loop.Advance(179 * time.Second)
	assert.Equal(t, scheduler.PhaseRamping, b.Phase())

	h.loop.Advance(2 * time.Second)
	require.Equal(t, scheduler.PhaseSteady, b.Phase())
	assert.True(t, b.interval)

	for i := 0; i < 40; i++ {
		before := b.Emitted()
		h.loop.Advance(260 * time.Millisecond)
		got := b.Emitted() - before
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 2)
		assert.LessOrEqual(t, h.live(BubbleSurface), 1200)
	}
}

func TestBubbleKeepsSinglePendingTimer(t *testing.T) {
	h := newHarness(fullLayout, false)
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")
	require.True(t, b.Start())

	var handles []engine.TimerID
	for i := 0; i < 20; i++ {
		require.NotZero(t, b.handle)
		handles = append(handles, b.handle)
		h.loop.Advance(600 * time.Millisecond)
	}
	for i := 1; i < len(handles); i++ {
		assert.NotEqual(t, handles[i-1], handles[i], "each ramp tick replaces the previous timeout")
	}
}

func TestBubbleTeardownStopsEmission(t *testing.T) {
	h := newHarness(fullLayout, false)
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")
	require.True(t, b.Start())

	h.loop.Advance(10 * time.Second)
	before := b.Emitted()

	h.doc.PageHide()
	h.loop.Advance(5 * time.Minute)
	assert.Equal(t, before, b.Emitted())
	assert.Equal(t, 0, h.loop.Pending())
}

func TestBubbleMissingAnchor(t *testing.T) {
	h := newHarness(emptyLayout, false)
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")
	assert.False(t, b.Start())
	assert.Zero(t, b.Emitted())
	assert.Equal(t, 0, h.loop.Pending())
}

func TestReducedMotionEmitsNothing(t *testing.T) {
	h := newHarness(fullLayout, true)

	g := NewGlitter(h.env)
	f := NewFeatherStream(h.env, DefaultFeatherInterval, "birdLeft", "birdRight")
	b := NewBubbleStream(h.env, scheduler.DefaultRamp, "giftCard")

	assert.False(t, f.Start())
	assert.False(t, b.Start())
	for i := 0; i < 10; i++ {
		assert.Zero(t, g.Burst(core.Point{X: 100, Y: 100}))
	}

	h.loop.Advance(time.Minute)
	assert.Zero(t, f.Emitted())
	assert.Zero(t, b.Emitted())
	assert.Empty(t, h.doc.Overlay.Surfaces())
}
