package effect

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/overlay"
	"github.com/lixenwraith/greeting/particle"
	"github.com/lixenwraith/greeting/scheduler"
)

// BubbleStream ramps bubble emission up over time, then holds a steady cadence
type BubbleStream struct {
	env      Env
	anchor   string
	rng      *rand.Rand
	emitter  *particle.BubbleEmitter
	governor overlay.Governor

	state    scheduler.Ramp
	handle   engine.TimerID
	interval bool // handle is the steady interval
	surface  *overlay.Surface
	emitted  int
}

// NewBubbleStream creates an idle stream anchored to the element id
func NewBubbleStream(env Env, cfg scheduler.RampConfig, anchor string) *BubbleStream {
	rng := env.rand()
	return &BubbleStream{
		env:      env,
		anchor:   anchor,
		rng:      rng,
		emitter:  particle.NewBubbleEmitter(rng, env.Doc.Viewport),
		governor: overlay.BubbleGovernor,
		state:    scheduler.NewRamp(cfg),
	}
}

// Start enters the ramp and ticks immediately; false when gated off
func (b *BubbleStream) Start() bool {
	log := logrus.WithFields(logrus.Fields{
		"function": "Start",
		"effect":   BubbleSurface,
	})

	if b.env.ReducedMotion {
		log.Debug("Reduced motion requested, bubbles disabled")
		return false
	}
	if _, ok := b.env.Doc.Element(b.anchor); !ok {
		log.Debug("Bubble anchor absent, stream unavailable")
		return false
	}
	if b.state.Phase != scheduler.PhaseIdle {
		return false
	}

	b.state = b.state.Begin(b.env.Timers.Now())
	b.surface = b.env.Doc.Overlay.Ensure(BubbleSurface)
	b.env.Doc.Lifecycle.OnPageHide(b.Stop)

	log.Debug("Bubble stream ramping")
	b.tick()
	return true
}

// Stop cancels the pending timer and removes the surface
func (b *BubbleStream) Stop() {
	if b.handle != 0 {
		b.env.Timers.Clear(b.handle)
		b.handle = 0
	}
	b.state = b.state.Stop()
	if b.surface != nil {
		b.surface.Teardown()
	}
}

// Phase returns the scheduler phase
func (b *BubbleStream) Phase() scheduler.Phase {
	return b.state.Phase
}

// Emitted returns the total bubbles admitted so far
func (b *BubbleStream) Emitted() int {
	return b.emitted
}

func (b *BubbleStream) tick() {
	if !b.interval {
		b.handle = 0
	}

	prev := b.state.Phase
	state, step := b.state.Tick(b.env.Timers.Now(), b.rng)
	b.state = state
	if step.Final() || !b.surface.Attached() {
		return
	}

	if origin, ok := b.origin(); ok {
		for i := 0; i < step.Emit; i++ {
			b.governor.Admit(b.surface, b.emitter.Emit(origin))
			b.emitted++
		}
	}

	if prev != state.Phase {
		logrus.WithFields(logrus.Fields{
			"function": "tick",
			"effect":   BubbleSurface,
			"phase":    state.Phase.String(),
		}).Debug("Bubble stream phase change")
	}

	switch {
	case step.Repeat && !b.interval:
		b.handle = b.env.Timers.SetInterval(step.Next, b.tick)
		b.interval = true
	case !step.Repeat:
		b.handle = b.env.Timers.SetTimeout(step.Next, b.tick)
	}
}

func (b *BubbleStream) origin() (core.Point, bool) {
	el, ok := b.env.Doc.Element(b.anchor)
	if !ok {
		return core.Point{}, false
	}
	return el.Origin(), true
}
