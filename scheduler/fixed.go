package scheduler

import "time"

// Fixed ticks on a constant interval, one emission round per tick
// Idle -> Running on Start, Running -> Stopped on Stop; a stopped scheduler never restarts
type Fixed struct {
	Phase    Phase
	Interval time.Duration
}

// NewFixed creates an idle interval scheduler
func NewFixed(interval time.Duration) Fixed {
	return Fixed{Phase: PhaseIdle, Interval: interval}
}

// Start arms the interval; only valid from Idle
func (s Fixed) Start() (Fixed, Step) {
	if s.Phase != PhaseIdle {
		return s, Step{}
	}
	s.Phase = PhaseRunning
	return s, Step{Next: s.Interval, Repeat: true}
}

// Tick emits one round while running
func (s Fixed) Tick() (Fixed, Step) {
	if s.Phase != PhaseRunning {
		return s, Step{}
	}
	return s, Step{Emit: 1, Next: s.Interval, Repeat: true}
}

// Stop ends the schedule permanently
func (s Fixed) Stop() Fixed {
	s.Phase = PhaseStopped
	return s
}
