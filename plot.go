package cityplan

// shrinkEps is the distance below which a vertex counts as coincident with
// the contraction center, making the shrink direction undefined.
const shrinkEps = 1e-9

// Shrink moves every vertex of p toward the polygon's vertex mean by d,
// carving a uniform margin such as a street allowance from a block. It is
// a coarse approximation of polygon erosion: vertices travel along their
// own ray to the center, so edge distances are only approximate and the
// shrunk ring is not checked for self-intersection beyond the per-vertex
// room test.
//
// ok is false when any vertex sits within shrinkEps of the center or
// closer to it than d, either of which would collapse or invert the ring.
func Shrink(p Polygon, d float64) (Polygon, bool) {
	if len(p) < 3 {
		return nil, false
	}
	center := p.VertexMean()
	out := make(Polygon, len(p))
	for i, v := range p {
		toCenter := center.Sub(v)
		room := toCenter.Length()
		if room < shrinkEps || room < d {
			return nil, false
		}
		out[i] = v.Add(toCenter.Mul(d / room))
	}
	return out, true
}

// PlotRules holds the acceptance thresholds for generated building plots.
// Zero values disable the corresponding check.
type PlotRules struct {
	// MinArea is the smallest acceptable plot area.
	MinArea float64

	// MinSide is the shortest acceptable edge length.
	MinSide float64

	// MinAngle is the smallest acceptable interior angle, in radians.
	// Angles are unsigned, so reflex corners are judged by the same
	// magnitude as convex ones.
	MinAngle float64
}

// ValidatePlot reports whether a candidate plot polygon satisfies the
// rules: area at or above MinArea, every edge at least MinSide long, and
// every interior angle at least MinAngle. Polygons with fewer than 3
// vertices never validate. The predicate only judges; it never repairs.
func ValidatePlot(p Polygon, rules PlotRules) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	if p.Area() < rules.MinArea {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if a.Distance(b) < rules.MinSide {
			return false
		}
	}
	for i := 0; i < n; i++ {
		if p.InteriorAngle(i) < rules.MinAngle {
			return false
		}
	}
	return true
}
