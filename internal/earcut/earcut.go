// Package earcut triangulates simple polygons by ear clipping: repeatedly
// find a convex vertex whose triangle holds no other vertex, emit that
// triangle, and drop the vertex from the ring. A simple polygon of n
// vertices always yields exactly n-2 triangles over the input vertex set.
//
// The input's winding may be either direction; convexity is judged against
// the dominant winding derived from the shoelace signed area, and emitted
// triangles follow the input's vertex order so their orientation matches
// the polygon's. Self-intersecting input is not repaired: when a full scan
// of the ring finds no ear, triangulation reports failure.
package earcut

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Triangle references three vertices of the input polygon by index, in
// ring order at the time the ear was clipped.
type Triangle struct {
	A, B, C int
}

// turnEps tolerates rounding noise in the turn-direction test, so corners
// within an epsilon of straight still count as clippable.
const turnEps = 1e-12

// Triangulate splits the polygon into len(pts)-2 triangles. ok is false
// for fewer than 3 vertices or when no ear can be clipped, which marks the
// input as self-intersecting or otherwise invalid.
func Triangulate(pts []Point) ([]Triangle, bool) {
	n := len(pts)
	if n < 3 {
		return nil, false
	}

	sign := 1.0
	if signedArea(pts) < 0 {
		sign = -1
	}

	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}

	tris := make([]Triangle, 0, n-2)
	for len(ring) > 3 {
		ear := findEar(pts, ring, sign)
		if ear < 0 {
			return nil, false
		}
		m := len(ring)
		tris = append(tris, Triangle{
			A: ring[(ear+m-1)%m],
			B: ring[ear],
			C: ring[(ear+1)%m],
		})
		ring = append(ring[:ear], ring[ear+1:]...)
	}
	return append(tris, Triangle{A: ring[0], B: ring[1], C: ring[2]}), true
}

// findEar returns the ring position of the first valid ear, or -1 when a
// full scan of the current ring finds none. A position is an ear when the
// turn there matches the dominant winding and no other remaining vertex
// lies inside its triangle.
func findEar(pts []Point, ring []int, sign float64) int {
	m := len(ring)
	for k := 0; k < m; k++ {
		a := pts[ring[(k+m-1)%m]]
		b := pts[ring[k]]
		c := pts[ring[(k+1)%m]]
		if turn(a, b, c)*sign < -turnEps {
			continue // reflex against the dominant winding
		}
		if blocked(pts, ring, k, a, b, c) {
			continue
		}
		return k
	}
	return -1
}

// blocked reports whether any remaining vertex other than the ear's own
// three corners lies inside triangle abc, boundary inclusive: a vertex
// sitting exactly on the candidate triangle's edge rejects the ear.
func blocked(pts []Point, ring []int, k int, a, b, c Point) bool {
	m := len(ring)
	prev, next := (k+m-1)%m, (k+1)%m
	for j := 0; j < m; j++ {
		if j == k || j == prev || j == next {
			continue
		}
		if inTriangle(pts[ring[j]], a, b, c) {
			return true
		}
	}
	return false
}

// inTriangle tests p against triangle abc with three cross products:
// p is outside only when the signs disagree beyond tolerance.
func inTriangle(p, a, b, c Point) bool {
	d1 := turn(a, b, p)
	d2 := turn(b, c, p)
	d3 := turn(c, a, p)
	hasNeg := d1 < -turnEps || d2 < -turnEps || d3 < -turnEps
	hasPos := d1 > turnEps || d2 > turnEps || d3 > turnEps
	return !(hasNeg && hasPos)
}

// turn returns the z-component of (b-a) x (c-b): positive when the path
// a->b->c turns counter-clockwise at b.
func turn(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
}

func signedArea(pts []Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}
