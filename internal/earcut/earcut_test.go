package earcut

import (
	"math"
	"testing"
)

func TestTriangulateSquare(t *testing.T) {
	// Counter-clockwise square: exactly 2 triangles whose areas sum to 25.
	square := []Point{{0, 0}, {5, 0}, {5, 5}, {0, 5}}
	tris, ok := Triangulate(square)
	if !ok {
		t.Fatal("square should triangulate")
	}
	if len(tris) != 2 {
		t.Fatalf("square yielded %d triangles, want 2", len(tris))
	}
	if sum := trianglesArea(tris, square); math.Abs(sum-25) > 1e-9 {
		t.Errorf("triangle areas sum to %v, want 25", sum)
	}
}

func TestTriangulateCountAndArea(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"triangle", []Point{{0, 0}, {4, 0}, {2, 3}}},
		{"cw square", []Point{{0, 0}, {0, 5}, {5, 5}, {5, 0}}},
		{"pentagon", regularRing(5, 3)},
		{"hexagon", regularRing(6, 2)},
		{"dodecagon", regularRing(12, 7)},
		{"L shape", []Point{{0, 0}, {6, 0}, {6, 3}, {3, 3}, {3, 6}, {0, 6}}},
		{"comb", []Point{{0, 0}, {8, 0}, {8, 4}, {6, 1}, {4, 4}, {2, 1}, {0, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris, ok := Triangulate(tt.pts)
			if !ok {
				t.Fatal("simple polygon should triangulate")
			}
			if want := len(tt.pts) - 2; len(tris) != want {
				t.Fatalf("got %d triangles, want %d", len(tris), want)
			}
			polyArea := math.Abs(signedArea(tt.pts))
			if sum := trianglesArea(tris, tt.pts); math.Abs(sum-polyArea) > 1e-9 {
				t.Errorf("triangle areas sum to %v, polygon area %v", sum, polyArea)
			}
		})
	}
}

func TestTriangulateUsesInputIndices(t *testing.T) {
	pts := regularRing(8, 5)
	tris, ok := Triangulate(pts)
	if !ok {
		t.Fatal("octagon should triangulate")
	}
	used := make([]bool, len(pts))
	for _, tr := range tris {
		for _, idx := range []int{tr.A, tr.B, tr.C} {
			if idx < 0 || idx >= len(pts) {
				t.Fatalf("triangle index %d out of range [0, %d)", idx, len(pts))
			}
			used[idx] = true
		}
	}
	for i, u := range used {
		if !u {
			t.Errorf("vertex %d never appears in any triangle", i)
		}
	}
}

func TestTriangulatePreservesWinding(t *testing.T) {
	ccw := []Point{{0, 0}, {5, 0}, {5, 5}, {0, 5}}
	tris, ok := Triangulate(ccw)
	if !ok {
		t.Fatal("square should triangulate")
	}
	for i, tr := range tris {
		if turn(ccw[tr.A], ccw[tr.B], ccw[tr.C]) <= 0 {
			t.Errorf("triangle %d not counter-clockwise like input", i)
		}
	}

	cw := []Point{{0, 0}, {0, 5}, {5, 5}, {5, 0}}
	tris, ok = Triangulate(cw)
	if !ok {
		t.Fatal("square should triangulate")
	}
	for i, tr := range tris {
		if turn(cw[tr.A], cw[tr.B], cw[tr.C]) >= 0 {
			t.Errorf("triangle %d not clockwise like input", i)
		}
	}
}

func TestTriangulateReflexNotClippedFirst(t *testing.T) {
	// In the L shape the reflex corner (3,3) can never be an ear; every
	// triangle containing it as its corner vertex would cover the notch.
	pts := []Point{{0, 0}, {6, 0}, {6, 3}, {3, 3}, {3, 6}, {0, 6}}
	tris, ok := Triangulate(pts)
	if !ok {
		t.Fatal("L shape should triangulate")
	}
	// Every emitted triangle must stay inside the polygon: sample each
	// centroid against the input ring.
	for i, tr := range tris {
		cx := (pts[tr.A].X + pts[tr.B].X + pts[tr.C].X) / 3
		cy := (pts[tr.A].Y + pts[tr.B].Y + pts[tr.C].Y) / 3
		if !rayInside(pts, Point{cx, cy}) {
			t.Errorf("triangle %d centroid (%v, %v) lies outside the polygon", i, cx, cy)
		}
	}
}

func TestTriangulateCollinearVertex(t *testing.T) {
	// A vertex on a straight edge yields one degenerate ear but the count
	// and area still hold.
	pts := []Point{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {0, 4}}
	tris, ok := Triangulate(pts)
	if !ok {
		t.Fatal("polygon with collinear vertex should triangulate")
	}
	if len(tris) != 3 {
		t.Fatalf("got %d triangles, want 3", len(tris))
	}
	if sum := trianglesArea(tris, pts); math.Abs(sum-16) > 1e-9 {
		t.Errorf("triangle areas sum to %v, want 16", sum)
	}
}

func TestTriangulateTooFewVertices(t *testing.T) {
	if _, ok := Triangulate(nil); ok {
		t.Error("nil input should not triangulate")
	}
	if _, ok := Triangulate([]Point{{0, 0}, {1, 1}}); ok {
		t.Error("2 vertices should not triangulate")
	}
}

func TestTriangulateInvalidRingFails(t *testing.T) {
	// The ring retraces the segment (0,0)-(4,0) before closing through
	// (2,2); every candidate ear is blocked by a coincident vertex, so a
	// full scan finds none and the failure is reported.
	pts := []Point{{0, 0}, {4, 0}, {0, 0}, {4, 0}, {2, 2}}
	if _, ok := Triangulate(pts); ok {
		t.Error("edge-retracing ring should fail to triangulate")
	}
}

func BenchmarkTriangulate(b *testing.B) {
	ring := regularRing(64, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := Triangulate(ring); !ok {
			b.Fatal("triangulation failed")
		}
	}
}

// regularRing builds a counter-clockwise regular n-gon of the given radius.
func regularRing(n int, radius float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

func trianglesArea(tris []Triangle, pts []Point) float64 {
	var sum float64
	for _, tr := range tris {
		a, b, c := pts[tr.A], pts[tr.B], pts[tr.C]
		sum += math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
	}
	return sum
}

// rayInside is a plain ray-cast point-in-polygon test for verification.
func rayInside(poly []Point, p Point) bool {
	inside := false
	for i := range poly {
		j := (i + 1) % len(poly)
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
