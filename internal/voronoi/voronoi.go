// Package voronoi derives Voronoi cell polygons from a Delaunay
// triangulation, using the duality between the two: the vertices of a
// site's Voronoi cell are the circumcenters of the Delaunay triangles
// incident to that site.
//
// The triangulation arrives as flat triples of site indices, so incidence
// is a pure index comparison. Sites on the convex hull of the input set
// have unbounded true cells; they collect fewer than 3 circumcenters and
// report no cell, which callers treat as an expected per-site outcome.
package voronoi

import (
	"math"
	"sort"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// collinearEps bounds the circumcenter determinant below which a triangle
// is treated as collinear and skipped.
const collinearEps = 1e-10

// Circumcenter returns the common center of the circle through a, b and c.
// ok is false for collinear triangles, whose circumcenter is undefined.
func Circumcenter(a, b, c Point) (Point, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < collinearEps {
		return Point{}, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return Point{X: ux, Y: uy}, true
}

// Cell builds the Voronoi cell polygon around sites[site]. triangles holds
// the Delaunay triangulation as flat triples of site indices. The returned
// vertices are ordered counter-clockwise around the site. ok is false when
// fewer than 3 valid circumcenters are incident to the site, the expected
// outcome for convex-hull sites.
func Cell(sites []Point, triangles []int, site int) ([]Point, bool) {
	if site < 0 || site >= len(sites) {
		return nil, false
	}
	var centers []Point
	for i := 0; i+2 < len(triangles); i += 3 {
		ia, ib, ic := triangles[i], triangles[i+1], triangles[i+2]
		if ia != site && ib != site && ic != site {
			continue
		}
		if ia < 0 || ib < 0 || ic < 0 ||
			ia >= len(sites) || ib >= len(sites) || ic >= len(sites) {
			continue
		}
		cc, ok := Circumcenter(sites[ia], sites[ib], sites[ic])
		if !ok {
			continue
		}
		centers = append(centers, cc)
	}
	if len(centers) < 3 {
		return nil, false
	}
	sortAround(centers, sites[site])
	return centers, true
}

// Cells builds one cell per site in a single pass over the triangulation,
// computing each triangle's circumcenter once and sharing it among the
// triangle's three generating sites. The result has one entry per site;
// nil entries mark sites without a closed cell.
func Cells(sites []Point, triangles []int) [][]Point {
	centers := make([][]Point, len(sites))
	for i := 0; i+2 < len(triangles); i += 3 {
		ia, ib, ic := triangles[i], triangles[i+1], triangles[i+2]
		if ia < 0 || ib < 0 || ic < 0 ||
			ia >= len(sites) || ib >= len(sites) || ic >= len(sites) {
			continue
		}
		cc, ok := Circumcenter(sites[ia], sites[ib], sites[ic])
		if !ok {
			continue
		}
		centers[ia] = append(centers[ia], cc)
		centers[ib] = append(centers[ib], cc)
		centers[ic] = append(centers[ic], cc)
	}
	for si := range centers {
		if len(centers[si]) < 3 {
			centers[si] = nil
			continue
		}
		sortAround(centers[si], sites[si])
	}
	return centers
}

// sortAround orders points by angle around s, ascending, which yields a
// counter-clockwise ring. For interior sites the circumcenters of the
// incident triangles form a star-shaped set around the site, so angular
// order produces a simple polygon; no self-intersection check follows.
func sortAround(pts []Point, s Point) {
	sort.Slice(pts, func(i, j int) bool {
		ai := math.Atan2(pts[i].Y-s.Y, pts[i].X-s.X)
		aj := math.Atan2(pts[j].Y-s.Y, pts[j].X-s.X)
		return ai < aj
	})
}
