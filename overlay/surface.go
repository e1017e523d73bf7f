package overlay

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/particle"
)

// DefaultGrace keeps a particle attached briefly past its animation so trailing fades finish
const DefaultGrace = 200 * time.Millisecond

// Timers is the scheduling capability a surface needs; *engine.Loop satisfies it
type Timers interface {
	Now() time.Time
	SetTimeout(d time.Duration, fn func()) engine.TimerID
	Clear(id engine.TimerID)
}

// ID identifies a live particle within its surface, zero means not inserted
type ID uint64

// Reason records why a particle left its surface
type Reason uint8

const (
	ReasonExpired Reason = iota
	ReasonEvicted
)

// Live is a particle realised on a surface
type Live struct {
	ID       ID
	Particle particle.Particle
	Born     time.Time
}

// Stats counts surface traffic since attach
type Stats struct {
	Inserted int
	Expired  int
	Evicted  int
}

// Surface is the arena owning every visible particle of one effect
// live is kept in insertion order, so live[0] is always the oldest
type Surface struct {
	name  string
	root  *Root
	grace time.Duration

	detachWhenEmpty bool

	live     []Live
	nextID   ID
	attached bool
	stats    Stats
}

// Name returns the surface key
func (s *Surface) Name() string {
	return s.name
}

// Attached reports whether the surface is still part of the document
func (s *Surface) Attached() bool {
	return s.attached
}

// Len returns the live particle count
func (s *Surface) Len() int {
	return len(s.live)
}

// Stats returns traffic counters
func (s *Surface) Stats() Stats {
	return s.stats
}

// Live returns a snapshot of live particles, oldest first
func (s *Surface) Live() []Live {
	return slices.Clone(s.live)
}

// Insert appends p as the newest particle and arms its expiry
// Returns zero when the surface is already detached
func (s *Surface) Insert(p particle.Particle) ID {
	if !s.attached {
		return 0
	}

	s.nextID++
	id := s.nextID
	s.live = append(s.live, Live{ID: id, Particle: p, Born: s.root.timers.Now()})
	s.stats.Inserted++

	s.root.timers.SetTimeout(p.Duration+s.grace, func() {
		if !s.attached {
			return
		}
		s.remove(id, ReasonExpired)
	})
	return id
}

// Remove detaches a particle immediately; false when it is already gone
func (s *Surface) Remove(id ID) bool {
	return s.remove(id, ReasonExpired)
}

// EvictOldest removes up to n particles from the front of the sequence
func (s *Surface) EvictOldest(n int) int {
	evicted := 0
	for evicted < n && len(s.live) > 0 {
		s.remove(s.live[0].ID, ReasonEvicted)
		evicted++
	}
	return evicted
}

// remove is the single removal path shared by expiry and eviction
func (s *Surface) remove(id ID, reason Reason) bool {
	i := slices.IndexFunc(s.live, func(l Live) bool { return l.ID == id })
	if i < 0 {
		return false
	}
	s.live = slices.Delete(s.live, i, i+1)

	switch reason {
	case ReasonEvicted:
		s.stats.Evicted++
	default:
		s.stats.Expired++
	}

	if s.detachWhenEmpty && len(s.live) == 0 {
		s.Teardown()
	}
	return true
}

// Teardown detaches the surface; pending expiries become no-ops
func (s *Surface) Teardown() {
	if !s.attached {
		return
	}
	s.attached = false
	s.live = nil
	s.root.detach(s)

	logrus.WithFields(logrus.Fields{
		"function": "Teardown",
		"surface":  s.name,
		"inserted": s.stats.Inserted,
		"evicted":  s.stats.Evicted,
	}).Debug("Overlay surface detached")
}
