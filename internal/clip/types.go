// Package clip restricts polygons to rectangular sector bounds.
package clip

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect represents an axis-aligned rectangle in Y-up plan coordinates.
// X, Y is the bottom-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the top edge y-coordinate.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Contains returns true if the point is inside the rectangle.
// Boundary points count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}
