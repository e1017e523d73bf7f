package overlay

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/particle"
)

// Governor bounds a surface's live count by evicting the oldest particles in batches
// A zero Limit admits everything
type Governor struct {
	Limit int
	Batch int
}

// Per-effect capacity policies
var (
	FeatherGovernor = Governor{Limit: 420, Batch: 24}
	BubbleGovernor  = Governor{Limit: 1200, Batch: 1}
	Uncapped        = Governor{}
)

// Admit makes room if the surface is full, then inserts p
func (g Governor) Admit(s *Surface, p particle.Particle) ID {
	if g.Limit > 0 && s.Len() >= g.Limit {
		batch := max(g.Batch, s.Len()-g.Limit+1)
		n := s.EvictOldest(batch)

		logrus.WithFields(logrus.Fields{
			"function": "Admit",
			"surface":  s.Name(),
			"limit":    g.Limit,
			"evicted":  n,
		}).Debug("Surface at capacity, evicted oldest particles")
	}
	return s.Insert(p)
}
