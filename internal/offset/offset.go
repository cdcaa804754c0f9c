package offset

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the vector's magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction, or the zero
// vector when v is too short to carry a direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-12 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero reports whether the vector has no direction.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Loop is a polygon ring with a per-vertex elevation. Points and Rise run
// in parallel: Rise[i] is the elevation of Points[i].
type Loop struct {
	Points []Point
	Rise   []float64
}

// Flat builds a loop over pts with the same rise at every vertex.
func Flat(pts []Point, rise float64) Loop {
	l := Loop{
		Points: append([]Point(nil), pts...),
		Rise:   make([]float64, len(pts)),
	}
	for i := range l.Rise {
		l.Rise[i] = rise
	}
	return l
}

// parallelEps bounds the unit-direction determinant below which adjacent
// offset lines are treated as parallel.
const parallelEps = 1e-9

// Apply derives a new loop from base, offset horizontally by dist and
// raised vertically by rise above outer. Positive dist moves inward,
// negative outward; dist is measured from base, so chained steps pass
// cumulative distances against the one stable base. outer supplies only
// the starting elevations: out.Rise[i] = outer.Rise[i] + rise. A dist of
// zero passes base through exactly, changing elevation alone.
func Apply(outer Loop, base []Point, dist, rise float64) Loop {
	n := len(base)
	out := Loop{Points: make([]Point, n), Rise: make([]float64, n)}
	for i := range out.Rise {
		out.Rise[i] = riseAt(outer, i) + rise
	}
	if dist == 0 {
		copy(out.Points, base)
		return out
	}
	s := windingSign(base)
	for i := 0; i < n; i++ {
		prev := base[(i+n-1)%n]
		cur := base[i]
		next := base[(i+1)%n]
		out.Points[i] = miterVertex(prev, cur, next, s, dist)
	}
	return out
}

// miterVertex intersects the two offset lines adjacent to cur. The line
// through the inward-translated prev runs parallel to edge prev-cur; the
// line through the inward-translated cur runs parallel to edge cur-next.
func miterVertex(prev, cur, next Point, s, dist float64) Point {
	d1 := cur.Sub(prev).Normalize()
	d2 := next.Sub(cur).Normalize()
	n1 := outwardNormal(d1, s)
	n2 := outwardNormal(d2, s)

	if det := d1.Cross(d2); math.Abs(det) >= parallelEps {
		p1 := prev.Add(n1.Scale(-dist))
		p2 := cur.Add(n2.Scale(-dist))
		t := p2.Sub(p1).Cross(d2) / det
		return p1.Add(d1.Scale(t))
	}
	if avg := n1.Add(n2).Normalize(); !avg.IsZero() {
		return cur.Add(avg.Scale(-dist))
	}
	if !n1.IsZero() {
		return cur.Add(n1.Scale(-dist))
	}
	if !n2.IsZero() {
		return cur.Add(n2.Scale(-dist))
	}
	return cur
}

// outwardNormal returns the unit normal of edge direction d pointing away
// from the polygon interior. s is the winding sign of the base polygon:
// +1 counter-clockwise, -1 clockwise.
func outwardNormal(d Vec2, s float64) Vec2 {
	return d.Perp().Scale(-s)
}

// windingSign reports +1 for counter-clockwise base polygons and -1 for
// clockwise, from the sign of the shoelace signed area.
func windingSign(pts []Point) float64 {
	if signedArea(pts) < 0 {
		return -1
	}
	return 1
}

func signedArea(pts []Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

func riseAt(l Loop, i int) float64 {
	if i < 0 || i >= len(l.Rise) {
		return 0
	}
	return l.Rise[i]
}
