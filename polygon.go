package cityplan

import "math"

// Polygon is an ordered sequence of vertices forming an implicitly closed
// ring: the last vertex connects back to the first. A usable polygon has at
// least 3 vertices and must be simple (non-self-intersecting) for the
// offsetting and triangulation stages to succeed; simplicity is assumed, not
// verified. Winding is never stored; it is derived on demand from the sign
// of the shoelace signed area, with positive meaning counter-clockwise in the
// engine's Y-up plan coordinates.
type Polygon []Point

// SignedArea returns the signed area using the shoelace formula.
// Positive for counter-clockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCounterClockwise returns true if the vertices wind counter-clockwise.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// EnsureCCW returns the polygon with counter-clockwise winding,
// reversing the vertex order if necessary.
func (p Polygon) EnsureCCW() Polygon {
	if p.SignedArea() < 0 {
		return p.Reverse()
	}
	return p
}

// Reverse returns a copy of the polygon with reversed vertex order.
func (p Polygon) Reverse() Polygon {
	n := len(p)
	rev := make(Polygon, n)
	for i, v := range p {
		rev[n-1-i] = v
	}
	return rev
}

// Clone returns a copy of the polygon.
func (p Polygon) Clone() Polygon {
	return append(Polygon(nil), p...)
}

// Edge returns the i-th edge as (start, end), wrapping around the ring.
func (p Polygon) Edge(i int) (Point, Point) {
	n := len(p)
	return p[i%n], p[(i+1)%n]
}

// Centroid returns the area-weighted centroid of the polygon.
// Degenerate polygons (near-zero area or fewer than 3 vertices) fall back
// to the vertex mean.
func (p Polygon) Centroid() Point {
	n := len(p)
	if n == 0 {
		return Point{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		return p.VertexMean()
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{X: cx * f, Y: cy * f}
}

// VertexMean returns the arithmetic mean of the vertices.
// The street-margin shrink stage contracts toward this point.
func (p Polygon) VertexMean() Point {
	if len(p) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(p))
	return Point{X: sx / n, Y: sy / n}
}

// Contains returns true if the point is inside the polygon, using ray
// casting. Points exactly on the boundary may land on either side.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p[i], p[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total edge length of the ring.
func (p Polygon) Perimeter() float64 {
	n := len(p)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += p[i].Distance(p[(i+1)%n])
	}
	return total
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// InteriorAngle returns the unsigned angle at vertex i between its two
// adjacent edges, in radians. Reflex and convex corners are not
// distinguished; both report the same unsigned angle.
func (p Polygon) InteriorAngle(i int) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	prev := p[(i+n-1)%n]
	cur := p[i%n]
	next := p[(i+1)%n]
	return cur.Sub(prev).Neg().AngleBetween(next.Sub(cur))
}
