// Package effect binds the emission schedulers to emitters, capacity governors and
// overlay surfaces on one page, driven by the page's event loop.
package effect

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/greeting/engine"
	"github.com/lixenwraith/greeting/overlay"
	"github.com/lixenwraith/greeting/page"
	"github.com/lixenwraith/greeting/particle"
)

// Surface names, one per effect type
const (
	GlitterSurface = "glitter"
	FeatherSurface = "feathers"
	BubbleSurface  = "bubbles"
)

// Timers is the loop capability streams need; *engine.Loop satisfies it
type Timers interface {
	overlay.Timers
	SetInterval(d time.Duration, fn func()) engine.TimerID
}

// Env is everything an effect reads from its page
type Env struct {
	Timers        Timers
	Doc           *page.Document
	ReducedMotion bool
	Rand          *rand.Rand
}

func (e Env) rand() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}
	return particle.NewRand()
}
