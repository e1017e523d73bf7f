// Package scheduler holds the emission state machines as pure transitions.
// Each transition returns the next state and a Step describing what to emit and
// when to tick again; binding a Step to real timers is left to the caller.
package scheduler

import "time"

// Phase is the lifecycle position of a scheduler
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseBursting
	PhaseDone
	PhaseRunning
	PhaseStopped
	PhaseRamping
	PhaseSteady
)

var phaseNames = [...]string{
	PhaseIdle:     "idle",
	PhaseBursting: "bursting",
	PhaseDone:     "done",
	PhaseRunning:  "running",
	PhaseStopped:  "stopped",
	PhaseRamping:  "ramping",
	PhaseSteady:   "steady",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Step is the outcome of one transition
type Step struct {
	// Emit is the emission count for this tick; its unit is set by the scheduler
	Emit int
	// Next is the delay before the following tick, zero when nothing follows
	Next time.Duration
	// Repeat marks Next as a fixed interval instead of a one-off delay
	Repeat bool
}

// Final reports whether no further tick is scheduled
func (s Step) Final() bool {
	return s.Next <= 0
}
