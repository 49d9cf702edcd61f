package physics

// Rect is an axis-aligned rectangle in pixel space. Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point as a vector
func (r Rect) Center() Vector {
	return NewVector(r.X+r.W/2, r.Y+r.H/2)
}

// Moved returns a copy positioned at (x, y)
func (r Rect) Moved(x, y float64) Rect {
	r.X = x
	r.Y = y
	return r
}

// Translated returns a copy shifted by (dx, dy)
func (r Rect) Translated(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// OverlapX returns the horizontal overlap extent (<= 0 means none)
func (r Rect) OverlapX(o Rect) float64 {
	return min(r.Right(), o.Right()) - max(r.Left(), o.Left())
}

// OverlapY returns the vertical overlap extent (<= 0 means none)
func (r Rect) OverlapY(o Rect) float64 {
	return min(r.Bottom(), o.Bottom()) - max(r.Top(), o.Top())
}

// Overlaps reports whether the interiors intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.OverlapX(o) > 0 && r.OverlapY(o) > 0
}
