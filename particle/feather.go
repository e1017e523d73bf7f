package particle

import (
	"math/rand/v2"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/vmath"
)

const (
	FeatherMinPerOrigin = 2
	FeatherMaxPerOrigin = 4

	featherMaxDrift   = 220.0
	featherMinFall    = 620.0
	featherMaxFall    = 1140.0
	featherMaxTilt    = 60.0
	featherMinSpin    = 60.0
	featherMaxSpin    = 200.0
	featherMinSeconds = 4.8
	featherMaxSeconds = 8.0
	featherMinOpacity = 0.55
	featherMaxOpacity = 0.90
	featherMinWidth   = 12.0
	featherMaxWidth   = 32.0
	featherMinHeight  = 4.0
	featherMaxHeight  = 11.0
)

// FeatherPalette holds the feather tints
var FeatherPalette = []core.RGB{
	core.MustHex("#ffffff"),
	core.MustHex("#fdf6ec"),
	core.MustHex("#f5e6f0"),
}

// FeatherEmitter drops feathers that always fall downward
type FeatherEmitter struct {
	rng *rand.Rand
}

// NewFeatherEmitter creates a feather emitter using rng
func NewFeatherEmitter(rng *rand.Rand) *FeatherEmitter {
	return &FeatherEmitter{rng: rng}
}

// Batch returns how many feathers one origin sheds per tick
func (e *FeatherEmitter) Batch() int {
	return vmath.RandIntRange(e.rng, FeatherMinPerOrigin, FeatherMaxPerOrigin)
}

// Emit returns one feather
func (e *FeatherEmitter) Emit(origin core.Point) Particle {
	return Particle{
		Kind:     KindFeather,
		Origin:   origin,
		DX:       vmath.RandRange(e.rng, -featherMaxDrift, featherMaxDrift),
		DY:       vmath.RandRange(e.rng, featherMinFall, featherMaxFall),
		Rotation: vmath.RandRange(e.rng, -featherMaxTilt, featherMaxTilt),
		Spin:     vmath.RandRange(e.rng, featherMinSpin, featherMaxSpin),
		Duration: seconds(vmath.RandRange(e.rng, featherMinSeconds, featherMaxSeconds)),
		Width:    vmath.RandRange(e.rng, featherMinWidth, featherMaxWidth),
		Height:   vmath.RandRange(e.rng, featherMinHeight, featherMaxHeight),
		Opacity:  vmath.RandRange(e.rng, featherMinOpacity, featherMaxOpacity),
		Color:    FeatherPalette[e.rng.IntN(len(FeatherPalette))],
	}
}
