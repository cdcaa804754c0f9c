package cityplan

// Plan is the result of one sector generation pass: the sites, their
// shared Delaunay triangulation, and one Block per site. Plans are built
// fresh per pass and never mutated afterward; a new request produces a new
// Plan.
type Plan struct {
	// Sector is the rectangle the pass subdivided, centered on the origin.
	Sector Rect

	// Sites are the unique seed points, in sampling order. Block and
	// Triangle indices refer to this slice.
	Sites []Point

	// Triangles is the Delaunay triangulation over Sites.
	Triangles []Triangle

	// Blocks holds one entry per site, in site order.
	Blocks []Block

	// Report tallies the block outcomes.
	Report Report
}

// OkBlocks returns the blocks that produced a validated plot, in site
// order. The pointers alias the Plan's blocks.
func (p *Plan) OkBlocks() []*Block {
	out := make([]*Block, 0, p.Report.Built)
	for i := range p.Blocks {
		if p.Blocks[i].Ok() {
			out = append(out, &p.Blocks[i])
		}
	}
	return out
}

// Block returns the block for a site index, or nil when out of range.
func (p *Plan) Block(site int) *Block {
	if site < 0 || site >= len(p.Blocks) {
		return nil
	}
	return &p.Blocks[site]
}
