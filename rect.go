package cityplan

import "math"

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Min corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from its min corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a Rect of the given size centered on a point.
// Sector rectangles are centered on the origin by convention, so the
// generator builds its bounds with RectAround(Pt(0, 0), w, h).
func RectAround(center Point, w, h float64) Rect {
	return Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h}
}

// Right returns the max-x edge coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the max-y edge coordinate.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle.
// Boundary points count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// Inset returns the rectangle shrunk by d on every side.
// Insetting past the center yields an empty rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(other.X > r.Right() || other.Right() < r.X ||
		other.Y > r.Top() || other.Top() < r.Y)
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Top(), other.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Polygon returns the rectangle as a counter-clockwise Polygon.
func (r Rect) Polygon() Polygon {
	return Polygon{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Top()},
		{X: r.X, Y: r.Top()},
	}
}
