package effect

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/overlay"
	"github.com/lixenwraith/greeting/particle"
	"github.com/lixenwraith/greeting/scheduler"
)

// Glitter throws a one-shot spark burst per trigger into its own container
type Glitter struct {
	env     Env
	emitter *particle.GlitterEmitter
	state   scheduler.OneShot
}

// NewGlitter creates a burst effect for env's page
func NewGlitter(env Env) *Glitter {
	return &Glitter{
		env:     env,
		emitter: particle.NewGlitterEmitter(env.rand()),
		state:   scheduler.NewOneShot(particle.GlitterBurstCount),
	}
}

// Burst emits one burst at origin and returns the spark count
// The container detaches itself once its last spark expires
func (g *Glitter) Burst(origin core.Point) int {
	if g.env.ReducedMotion {
		return 0
	}

	state, step := g.state.Trigger()
	surface := g.env.Doc.Overlay.Attach(GlitterSurface, overlay.WithDetachWhenEmpty())
	for i := 0; i < step.Emit; i++ {
		overlay.Uncapped.Admit(surface, g.emitter.Emit(origin))
	}
	g.state = state.Settle()

	logrus.WithFields(logrus.Fields{
		"function": "Burst",
		"effect":   GlitterSurface,
		"x":        origin.X,
		"y":        origin.Y,
		"count":    step.Emit,
	}).Debug("Glitter burst")
	return step.Emit
}

// Phase returns the burst scheduler phase
func (g *Glitter) Phase() scheduler.Phase {
	return g.state.Phase
}
