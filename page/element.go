package page

import "github.com/lixenwraith/greeting/core"

// Element is a laid-out node the effects can anchor to
type Element struct {
	ID    string
	Box   core.Rect
	Href  string
	Label string

	// Anchor is the fractional emission point inside Box, nil means the centre
	Anchor *core.Point
}

// Origin returns the emission point in viewport coordinates
func (e Element) Origin() core.Point {
	if e.Anchor == nil {
		return e.Box.Center()
	}
	return e.Box.PointAt(e.Anchor.X, e.Anchor.Y)
}
