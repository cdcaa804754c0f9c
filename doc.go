// Package cityplan generates procedural city-block geometry for Go.
//
// # Overview
//
// cityplan subdivides a rectangular sector into organic building blocks:
// it samples seed points, derives each point's Voronoi cell from a shared
// Delaunay triangulation, clips the cells to the sector, carves street
// margins, and validates the resulting plots. On top of the plots it
// builds stepped roof silhouettes, pavement strips and triangulated caps
// ready for mesh extrusion.
//
// # Quick Start
//
//	import "github.com/gogpu/cityplan"
//
//	// Subdivide a sector into blocks
//	plan, err := cityplan.Generate(cityplan.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Build a roof on every validated plot
//	for _, b := range plan.OkBlocks() {
//		roof, err := cityplan.BuildRoof(b.Plot, nil,
//			cityplan.DefaultConfig().RoofLayers, 0.3)
//		...
//	}
//
//	// Save a debug preview
//	cityplan.SavePNG("plan.png", cityplan.RenderPlan(plan, cityplan.DefaultRenderOptions()))
//
// # Architecture
//
// The library is organized into:
//   - Public API: Generate, Plan, Block, BuildRoof, Roof, PlotIndex,
//     GeoJSON export, preview rendering
//   - Internal: sample (seed points), voronoi (cells from triangulation),
//     clip (rectangle clipping), offset (mitered loops), earcut
//     (triangulation), parallel (per-site fan-out)
//
// Per-site failures never abort a pass: each site's Block records how far
// it got and why it stopped. Only foundational failures (too few seeds, an
// empty triangulation) surface as errors.
//
// # Coordinate System
//
// Uses plan coordinates throughout:
//   - The sector is centered on the origin
//   - X increases right
//   - Y increases up
//   - Positive shoelace area means counter-clockwise winding
//   - Angles in radians
//
// Elevation ("rise") rides alongside as a per-vertex scalar on edge loops;
// polygons themselves stay two-dimensional.
package cityplan

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
