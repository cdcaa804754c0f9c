package cityplan

import "math"

// Point represents a 2D position in plan coordinates.
// Positions and displacements are distinct types: subtracting two Points
// yields a Vec2, and a Point moves by adding a Vec2.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec returns the point as a displacement from the origin.
func (p Point) Vec() Vec2 {
	return Vec2(p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSquared returns the squared distance between two points.
// Faster than Distance when only comparing magnitudes.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Mid returns the midpoint between two points.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}
