// Package sample provides seed point sampling for sector subdivision.
package sample

import "math/rand"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Points draws n points uniformly from a rectangle of size w by h centered
// on the origin, keeping an inward padding from every edge. If the padding
// inverts the range on either axis, sampling falls back to the full
// rectangle on both axes. Duplicate points (exact value equality) are
// dropped, so the result may hold fewer than n points; callers that need a
// Voronoi subdivision must treat fewer than 3 survivors as a failed pass.
//
// The random source is injected so generation passes are reproducible.
func Points(rng *rand.Rand, n int, w, h, pad float64) []Point {
	if n <= 0 {
		return nil
	}

	minX, maxX := -w/2+pad, w/2-pad
	minY, maxY := -h/2+pad, h/2-pad
	if minX >= maxX || minY >= maxY {
		minX, maxX = -w/2, w/2
		minY, maxY = -h/2, h/2
	}

	seen := make(map[Point]struct{}, n)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p := Point{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}
