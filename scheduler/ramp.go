package scheduler

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/greeting/vmath"
)

// RampConfig shapes a ramped-then-steady emission schedule
type RampConfig struct {
	Duration  time.Duration // length of the ramp phase
	SlowDelay time.Duration // delay at the start of the ramp
	FastDelay time.Duration // delay reached at the end of the ramp
	Steady    time.Duration // interval once the ramp is over

	// ExtraChance is the probability of a second emission per steady tick
	ExtraChance float64
}

// DefaultRamp is the bubble schedule
var DefaultRamp = RampConfig{
	Duration:    180 * time.Second,
	SlowDelay:   520 * time.Millisecond,
	FastDelay:   110 * time.Millisecond,
	Steady:      260 * time.Millisecond,
	ExtraChance: 0.45,
}

// Progress returns the normalised ramp position for elapsed
func (c RampConfig) Progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(elapsed) / float64(c.Duration))
}

// DelayAt returns the delay before the next tick when ticking at elapsed
func (c RampConfig) DelayAt(elapsed time.Duration) time.Duration {
	if elapsed >= c.Duration {
		return c.Steady
	}
	p := c.Progress(elapsed)
	return time.Duration(vmath.Lerp(float64(c.SlowDelay), float64(c.FastDelay), p))
}

// BurstAt returns the ramp-phase emission count at elapsed
func (c RampConfig) BurstAt(elapsed time.Duration) int {
	switch p := c.Progress(elapsed); {
	case p < 0.25:
		return 1
	case p < 0.7:
		return 2
	default:
		return 3
	}
}

// Ramp self-reschedules with shrinking delays, then settles on a fixed interval
// Idle -> Ramping on Begin, Ramping -> Steady once elapsed reaches Config.Duration
type Ramp struct {
	Phase  Phase
	Start  time.Time
	Config RampConfig
}

// NewRamp creates an idle ramp scheduler
func NewRamp(cfg RampConfig) Ramp {
	return Ramp{Phase: PhaseIdle, Config: cfg}
}

// Begin records the start time; the caller ticks immediately after
func (r Ramp) Begin(now time.Time) Ramp {
	if r.Phase != PhaseIdle {
		return r
	}
	r.Phase = PhaseRamping
	r.Start = now
	return r
}

// Tick computes this tick's emission and the wait before the next one
func (r Ramp) Tick(now time.Time, rng *rand.Rand) (Ramp, Step) {
	switch r.Phase {
	case PhaseRamping:
		elapsed := now.Sub(r.Start)
		if elapsed >= r.Config.Duration {
			r.Phase = PhaseSteady
			return r, r.steadyStep(rng)
		}
		return r, Step{Emit: r.Config.BurstAt(elapsed), Next: r.Config.DelayAt(elapsed)}
	case PhaseSteady:
		return r, r.steadyStep(rng)
	default:
		return r, Step{}
	}
}

// Stop ends the schedule permanently
func (r Ramp) Stop() Ramp {
	r.Phase = PhaseStopped
	return r
}

func (r Ramp) steadyStep(rng *rand.Rand) Step {
	n := 1
	if vmath.Chance(rng, r.Config.ExtraChance) {
		n++
	}
	return Step{Emit: n, Next: r.Config.Steady, Repeat: true}
}
