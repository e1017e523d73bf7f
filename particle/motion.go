package particle

import (
	"math"
	"time"

	"github.com/lixenwraith/greeting/core"
	"github.com/lixenwraith/greeting/vmath"
)

// Frame is the sampled visual state of a particle at one instant
type Frame struct {
	Pos     core.Point
	Angle   float64 // degrees
	Alpha   float64
	Visible bool
}

// FrameAt samples the particle age after insertion
// Sparks ease out and fade, feathers sway while falling, bubbles wobble as they rise
func (p Particle) FrameAt(age time.Duration) Frame {
	active := age - p.Delay
	if active < 0 || p.Duration <= 0 {
		return Frame{Pos: p.Origin, Angle: p.Rotation}
	}
	t := vmath.Clamp01(float64(active) / float64(p.Duration))

	var f Frame
	switch p.Kind {
	case KindSpark:
		e := 1 - (1-t)*(1-t)
		f.Pos = p.Origin.Add(p.DX*e, p.DY*e)
		f.Angle = p.Rotation
		f.Alpha = p.Opacity * (1 - t)
	case KindFeather:
		sway := math.Sin(t*math.Pi*3) * p.Width
		f.Pos = p.Origin.Add(p.DX*t+sway, p.DY*t)
		f.Angle = p.Rotation + p.Spin*t
		f.Alpha = p.Opacity * fadeInOut(t, 0.1, 0.25)
	case KindBubble:
		wobble := math.Sin(t*math.Pi*4) * p.Width * 0.25
		f.Pos = p.Origin.Add(p.DX*t+wobble, p.DY*t)
		f.Alpha = p.Opacity * fadeInOut(t, 0.05, 0.15)
	}
	f.Visible = t < 1 && f.Alpha > 0
	return f
}

func fadeInOut(t, in, out float64) float64 {
	switch {
	case t < in:
		return t / in
	case t > 1-out:
		return (1 - t) / out
	default:
		return 1
	}
}
