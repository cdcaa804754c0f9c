package cityplan

import "errors"

// Foundational precondition failures abort a whole generation pass.
// Everything else in the pipeline is an expected, data-dependent condition
// reported per entity through skip reasons, never through errors.
var (
	// ErrTooFewSites is returned when seed sampling yields fewer than the
	// 3 unique points a Voronoi subdivision needs.
	ErrTooFewSites = errors.New("cityplan: fewer than 3 unique seed points")

	// ErrNoTriangles is returned when the Delaunay provider produces an
	// empty triangulation for the sampled sites.
	ErrNoTriangles = errors.New("cityplan: triangulation produced no triangles")

	// ErrFootprintTooSmall is returned when a roof or pavement request
	// supplies a footprint with fewer than 3 vertices.
	ErrFootprintTooSmall = errors.New("cityplan: footprint needs at least 3 vertices")
)
