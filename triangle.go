package cityplan

import "math"

// Triangle references exactly three vertices by index. Two index spaces
// exist at different pipeline stages and must not be conflated: triangles
// from the Delaunay provider index into the generator's site list, while
// triangles from ear clipping index into one polygon's vertex list.
type Triangle struct {
	A, B, C int
}

// Area returns the unsigned area of the triangle over the given vertex
// slice. Indices outside the slice yield zero.
func (t Triangle) Area(vs []Point) float64 {
	if t.A < 0 || t.B < 0 || t.C < 0 ||
		t.A >= len(vs) || t.B >= len(vs) || t.C >= len(vs) {
		return 0
	}
	a, b, c := vs[t.A], vs[t.B], vs[t.C]
	return math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}

// TrianglesArea returns the summed unsigned area of the triangles over the
// given vertex slice.
func TrianglesArea(ts []Triangle, vs []Point) float64 {
	var total float64
	for _, t := range ts {
		total += t.Area(vs)
	}
	return total
}
