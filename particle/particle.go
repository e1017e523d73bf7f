package particle

import (
	"time"

	"github.com/lixenwraith/greeting/core"
)

// Kind selects the visual family of a particle
type Kind uint8

const (
	KindSpark Kind = iota
	KindFeather
	KindBubble
)

func (k Kind) String() string {
	switch k {
	case KindSpark:
		return "spark"
	case KindFeather:
		return "feather"
	case KindBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Particle is an immutable descriptor of one transient visual unit
// Rendering layers interpret the kinematics; nothing mutates a particle after emission
type Particle struct {
	Kind   Kind
	Origin core.Point

	// Displacement travelled over the full animation, viewport pixels
	DX, DY float64

	// Rotation is the initial angle, Spin the extra rotation over the lifetime, degrees
	Rotation float64
	Spin     float64

	Delay    time.Duration // start offset inside Duration
	Duration time.Duration

	Width, Height float64
	Opacity       float64
	Color         core.RGB
}

// Emitter produces one particle per call from an origin in viewport coordinates
type Emitter interface {
	Emit(origin core.Point) Particle
}
