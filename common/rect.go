package common

import "github.com/jakecoffman/cp"

// Size is a width/height pair in scene units.
type Size struct {
	W float64
	H float64
}

// Rect is a top-left anchored axis-aligned box.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt builds a box of size s whose top-left corner is pos.
func RectAt(pos cp.Vector, s Size) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: s.W, H: s.H}
}

// Intersects reports whether a and b overlap. Boxes that only share an edge
// do not intersect.
func Intersects(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Within reports whether r lies entirely inside a viewport of size vp.
func (r Rect) Within(vp Size) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= vp.W && r.Y+r.H <= vp.H
}

// ClampInto clamps the top-left position of a box of size s so the box stays
// inside vp. A box larger than the viewport is pinned to the origin.
func ClampInto(pos cp.Vector, s Size, vp Size) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(pos.X, 0, max(0, vp.W-s.W)),
		Y: cp.Clamp(pos.Y, 0, max(0, vp.H-s.H)),
	}
}
