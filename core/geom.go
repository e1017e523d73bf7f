package core

import "github.com/lixenwraith/greeting/vmath"

// Point is a position in viewport pixels
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an on-screen bounding box in viewport pixels
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Center returns the middle of the box
func (r Rect) Center() Point {
	return r.PointAt(0.5, 0.5)
}

// PointAt returns the point at fractional offsets (fx, fy) inside the box
func (r Rect) PointAt(fx, fy float64) Point {
	return Point{X: r.Left + r.Width*fx, Y: r.Top + r.Height*fy}
}

// Contains reports whether p lies inside the box, right and bottom edges excluded
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Viewport is the visible area in pixels
type Viewport struct {
	Width, Height float64
}

// ClampPoint pulls p into [0, Width]x[0, Height]
func (v Viewport) ClampPoint(p Point) Point {
	return Point{
		X: vmath.Clamp(p.X, 0, v.Width),
		Y: vmath.Clamp(p.Y, 0, v.Height),
	}
}
