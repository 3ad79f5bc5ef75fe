package entity

// Rect is an axis-aligned box. X, Y is the top-left corner in world units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Translate returns the rect moved by dx, dy
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Axis identifies a resolution axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Overlaps reports whether two boxes intersect. Boxes that only share an
// edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Penetration returns the overlap depth on each axis, or zeros when the
// boxes are disjoint.
func Penetration(a, b Rect) (dx, dy float64) {
	if !Overlaps(a, b) {
		return 0, 0
	}
	dx = min(a.Right()-b.X, b.Right()-a.X)
	dy = min(a.Bottom()-b.Y, b.Bottom()-a.Y)
	return dx, dy
}

// MinimumAxis picks the axis with the smaller penetration depth.
// Equal depths resolve vertically.
func MinimumAxis(a, b Rect) Axis {
	dx, dy := Penetration(a, b)
	if dx < dy {
		return AxisX
	}
	return AxisY
}
