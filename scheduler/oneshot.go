package scheduler

// OneShot emits a fixed count per trigger and schedules nothing after it
// Idle -> Bursting on Trigger, Bursting -> Done on Settle; Done may be triggered again
type OneShot struct {
	Phase Phase
	Count int
}

// NewOneShot creates an idle burst scheduler
func NewOneShot(count int) OneShot {
	return OneShot{Phase: PhaseIdle, Count: count}
}

// Trigger enters Bursting and emits the whole burst at once
func (s OneShot) Trigger() (OneShot, Step) {
	s.Phase = PhaseBursting
	return s, Step{Emit: s.Count}
}

// Settle finishes a burst
func (s OneShot) Settle() OneShot {
	if s.Phase == PhaseBursting {
		s.Phase = PhaseDone
	}
	return s
}
