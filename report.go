package cityplan

// BlockStatus tags the outcome of one site's pipeline run.
type BlockStatus int

const (
	// StatusOK marks a block that carries a validated plot.
	StatusOK BlockStatus = iota

	// StatusSkipped marks a block some stage rejected; Reason says which.
	StatusSkipped
)

// String returns the status name.
func (s BlockStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// SkipReason identifies the pipeline stage that rejected a site. Skips are
// expected, data-dependent outcomes: a skipped site never aborts the pass.
type SkipReason int

const (
	// SkipNone is the reason carried by StatusOK blocks.
	SkipNone SkipReason = iota

	// SkipOpenCell: the site sits on the convex hull of the seed set, so
	// its true Voronoi cell is unbounded and fewer than 3 circumcenters
	// were collected.
	SkipOpenCell

	// SkipClippedAway: the cell fell entirely outside the sector
	// rectangle, or collapsed below 3 vertices during clipping.
	SkipClippedAway

	// SkipShrinkTooTight: the street margin exceeds the room between the
	// clipped cell's vertices and its center.
	SkipShrinkTooTight

	// SkipRejectedPlot: the shrunk plot failed the validation thresholds.
	SkipRejectedPlot
)

// String returns the skip reason name.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipOpenCell:
		return "open cell"
	case SkipClippedAway:
		return "clipped away"
	case SkipShrinkTooTight:
		return "shrink too tight"
	case SkipRejectedPlot:
		return "rejected plot"
	default:
		return "unknown"
	}
}

// Block is the per-site outcome of a generation pass. Polygons are filled
// in as far as the pipeline carried this site: a block skipped at the
// clipping stage still exposes its raw cell.
type Block struct {
	// SiteIndex is the site's position in the Plan's site list, and the
	// index Delaunay triangles refer to.
	SiteIndex int

	// Site is the generating seed point.
	Site Point

	// Cell is the raw Voronoi cell, counter-clockwise. Nil when the site
	// was skipped as an open hull cell.
	Cell Polygon

	// Clipped is the cell bounded to the sector rectangle.
	Clipped Polygon

	// Plot is the street-carved, validated building plot. Only StatusOK
	// blocks carry one.
	Plot Polygon

	// Status and Reason record the pipeline outcome for this site.
	Status BlockStatus
	Reason SkipReason
}

// Ok reports whether the block carries a usable plot.
func (b *Block) Ok() bool {
	return b.Status == StatusOK
}

// Report aggregates the per-site outcomes of one generation pass.
type Report struct {
	// Sites is the number of unique seed points that entered the pass.
	Sites int

	// Built is the number of blocks that produced a validated plot.
	Built int

	// Skipped counts skipped sites by reason. Reasons that never occurred
	// are absent.
	Skipped map[SkipReason]int
}

// summarize tallies block outcomes into a Report.
func summarize(blocks []Block) Report {
	r := Report{Sites: len(blocks), Skipped: make(map[SkipReason]int)}
	for i := range blocks {
		if blocks[i].Ok() {
			r.Built++
			continue
		}
		r.Skipped[blocks[i].Reason]++
	}
	return r
}
