package clip

import "math"

// boundaryEps is the tolerance for classifying a vertex against a clip
// boundary. Vertices within it count as inside, so polygons touching the
// rectangle edge keep their boundary vertices instead of oscillating on
// rounding noise.
const boundaryEps = 1e-9

// Rectangle sides, in the order the subject is clipped against them.
const (
	sideLeft = iota
	sideRight
	sideBottom
	sideTop
)

// PolygonRect clips the subject polygon against the rectangle with the
// Sutherland-Hodgman algorithm, one half-plane per side. The subject's
// winding order is preserved. ok is false when nothing remains: the
// subject lies outside the rectangle or collapses below 3 vertices. An
// edge that straddles a boundary it runs parallel to (within tolerance)
// has no well-defined crossing; that crossing is dropped and the ring
// continues with its remaining vertices rather than receiving a
// fabricated point.
func PolygonRect(subject []Point, r Rect) ([]Point, bool) {
	if len(subject) < 3 || r.IsEmpty() {
		return nil, false
	}
	out := append([]Point(nil), subject...)
	for side := sideLeft; side <= sideTop; side++ {
		out = clipAgainst(out, r, side)
		if len(out) == 0 {
			return nil, false
		}
	}
	out = weld(out)
	if len(out) < 3 {
		return nil, false
	}
	return out, true
}

// weld removes consecutive coincident vertices, including the wrap from
// last back to first. Vertices sitting exactly on a clip boundary make
// the half-plane passes emit them twice, once as a kept endpoint and once
// as a zero-length crossing.
func weld(pts []Point) []Point {
	out := pts[:0]
	for _, p := range pts {
		if len(out) > 0 && coincident(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && coincident(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func coincident(a, b Point) bool {
	return math.Abs(a.X-b.X) < boundaryEps && math.Abs(a.Y-b.Y) < boundaryEps
}

// clipAgainst clips pts against one side of the rectangle. Each subject
// edge contributes its surviving endpoint and, when it crosses the
// boundary, the crossing point. A transition whose crossing cannot be
// computed contributes only its surviving endpoint.
func clipAgainst(pts []Point, r Rect, side int) []Point {
	out := make([]Point, 0, len(pts)+4)
	for i := range pts {
		cur := pts[i]
		next := pts[(i+1)%len(pts)]
		curIn := inside(cur, r, side)
		nextIn := inside(next, r, side)
		switch {
		case curIn && nextIn:
			out = append(out, next)
		case curIn && !nextIn:
			if x, ok := crossing(cur, next, r, side); ok {
				out = append(out, x)
			}
		case !curIn && nextIn:
			if x, ok := crossing(cur, next, r, side); ok {
				out = append(out, x)
			}
			out = append(out, next)
		}
	}
	return out
}

// inside reports whether p lies on the kept side of the boundary,
// within boundaryEps.
func inside(p Point, r Rect, side int) bool {
	switch side {
	case sideLeft:
		return p.X >= r.X-boundaryEps
	case sideRight:
		return p.X <= r.Right()+boundaryEps
	case sideBottom:
		return p.Y >= r.Y-boundaryEps
	default:
		return p.Y <= r.Top()+boundaryEps
	}
}

// crossing intersects segment ab with the boundary line of the given side.
func crossing(a, b Point, r Rect, side int) (Point, bool) {
	switch side {
	case sideLeft:
		return crossVertical(a, b, r.X)
	case sideRight:
		return crossVertical(a, b, r.Right())
	case sideBottom:
		return crossHorizontal(a, b, r.Y)
	default:
		return crossHorizontal(a, b, r.Top())
	}
}

func crossVertical(a, b Point, x float64) (Point, bool) {
	dx := b.X - a.X
	if math.Abs(dx) < boundaryEps {
		return Point{}, false
	}
	t := (x - a.X) / dx
	p := a.Lerp(b, t)
	p.X = x
	return p, true
}

func crossHorizontal(a, b Point, y float64) (Point, bool) {
	dy := b.Y - a.Y
	if math.Abs(dy) < boundaryEps {
		return Point{}, false
	}
	t := (y - a.Y) / dy
	p := a.Lerp(b, t)
	p.Y = y
	return p, true
}
