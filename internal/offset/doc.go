// Package offset derives mitered offset loops from a base polygon, the
// core operation behind stepped roof silhouettes and pavement strips.
//
// # Algorithm Overview
//
// Each edge of the base polygon is translated along its outward normal by
// -dist (positive dist moves inward, negative outward). Adjacent translated
// edges are intersected to recover the offset vertex, which keeps corners
// sharp (mitered) and preserves the vertex count:
//   - Near-parallel adjacent edges (straight-through corners) fall back to
//     displacing the vertex along the averaged normal.
//   - A true 180-degree spike, where the averaged normal vanishes, falls
//     back to one edge's normal alone.
//
// # Chaining
//
// Successive loops of a stepped silhouette are all derived from the same
// stable base polygon with cumulative distances, never from the previous
// output. That keeps edge directions exact across the chain: numeric noise
// in one loop cannot tilt the normals of the next.
//
// Elevation travels separately: every output vertex's rise is the outer
// loop's rise at the same index plus the step's rise, so the base polygon
// stays two-dimensional while loops stack upward.
package offset
