// Package physics provides axis-aligned box geometry and collision utilities.
package physics

// Rect is an axis-aligned box in logical pixels.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// RectAt returns a square box of the given size centered on (cx, cy).
func RectAt(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Bounds is an inner playfield area. Boxes touching or crossing an edge are
// considered out of bounds.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// TouchesEdge reports whether r touches or crosses any edge of b.
func (b Bounds) TouchesEdge(r Rect) bool {
	return r.Left() <= b.Left || r.Right() >= b.Right ||
		r.Top() <= b.Top || r.Bottom() >= b.Bottom
}
