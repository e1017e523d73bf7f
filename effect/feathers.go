package effect

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/overlay"
	"github.com/lixenwraith/greeting/particle"
	"github.com/lixenwraith/greeting/scheduler"
)

// DefaultFeatherInterval matches the paired wing-flap animation cadence
const DefaultFeatherInterval = 860 * time.Millisecond

// FeatherStream sheds feathers from every anchor on a fixed interval
type FeatherStream struct {
	env      Env
	anchors  []string
	emitter  *particle.FeatherEmitter
	governor overlay.Governor

	state   scheduler.Fixed
	handle  engine.TimerID
	surface *overlay.Surface
	emitted int
}

// NewFeatherStream creates an idle stream anchored to the given element ids
func NewFeatherStream(env Env, interval time.Duration, anchors ...string) *FeatherStream {
	if interval <= 0 {
		interval = DefaultFeatherInterval
	}
	return &FeatherStream{
		env:      env,
		anchors:  anchors,
		emitter:  particle.NewFeatherEmitter(env.rand()),
		governor: overlay.FeatherGovernor,
		state:    scheduler.NewFixed(interval),
	}
}

// Start begins ticking; false when reduced motion is on or an anchor is missing
func (f *FeatherStream) Start() bool {
	log := logrus.WithFields(logrus.Fields{
		"function": "Start",
		"effect":   FeatherSurface,
	})

	if f.env.ReducedMotion {
		log.Debug("Reduced motion requested, feathers disabled")
		return false
	}
	if _, ok := f.origins(); !ok {
		log.Debug("Feather anchors absent, stream unavailable")
		return false
	}

	state, step := f.state.Start()
	if step.Final() {
		return false
	}
	f.state = state
	f.surface = f.env.Doc.Overlay.Ensure(FeatherSurface)
	f.handle = f.env.Timers.SetInterval(step.Next, f.tick)
	f.env.Doc.Lifecycle.OnPageHide(f.Stop)

	log.WithField("interval", step.Next).Debug("Feather stream running")
	return true
}

// Stop cancels the interval and removes the surface; the stream never restarts
func (f *FeatherStream) Stop() {
	if f.handle != 0 {
		f.env.Timers.Clear(f.handle)
		f.handle = 0
	}
	f.state = f.state.Stop()
	if f.surface != nil {
		f.surface.Teardown()
	}
}

// Phase returns the scheduler phase
func (f *FeatherStream) Phase() scheduler.Phase {
	return f.state.Phase
}

// Emitted returns the total feathers admitted so far
func (f *FeatherStream) Emitted() int {
	return f.emitted
}

func (f *FeatherStream) tick() {
	state, step := f.state.Tick()
	f.state = state
	if step.Emit == 0 || !f.surface.Attached() {
		return
	}

	origins, ok := f.origins()
	if !ok {
		return
	}
	for round := 0; round < step.Emit; round++ {
		for _, origin := range origins {
			n := f.emitter.Batch()
			for i := 0; i < n; i++ {
				f.governor.Admit(f.surface, f.emitter.Emit(origin))
				f.emitted++
			}
		}
	}
}

// origins resolves every anchor against the current layout
func (f *FeatherStream) origins() ([]core.Point, bool) {
	if len(f.anchors) == 0 {
		return nil, false
	}
	points := make([]core.Point, 0, len(f.anchors))
	for _, id := range f.anchors {
		el, ok := f.env.Doc.Element(id)
		if !ok {
			return nil, false
		}
		points = append(points, el.Origin())
	}
	return points, true
}
