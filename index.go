package cityplan

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// minExtent pads degenerate bounding box sides; the R-tree rejects
// non-positive lengths.
const minExtent = 1e-9

// blockEntry adapts a block to the rtreego.Spatial interface, bounded by
// its plot polygon.
type blockEntry struct {
	block *Block
	rect  rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *blockEntry) Bounds() rtreego.Rect {
	return e.rect
}

// PlotIndex answers spatial queries over the validated plots of one plan:
// which plot covers a point, which plots touch a region, which plot is
// nearest. The placement layer drives these when scattering props and
// assigning building sites.
//
// The index aliases the plan's blocks and is read-only after construction,
// so concurrent queries are safe.
type PlotIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewPlotIndex indexes every block of the plan that carries a validated
// plot.
func NewPlotIndex(plan *Plan) *PlotIndex {
	idx := &PlotIndex{tree: rtreego.NewTree(2, 4, 8)}
	for _, b := range plan.OkBlocks() {
		idx.tree.Insert(&blockEntry{block: b, rect: plotRect(b.Plot)})
		idx.size++
	}
	return idx
}

// Len returns the number of indexed plots.
func (idx *PlotIndex) Len() int {
	return idx.size
}

// Covering returns the block whose plot contains p. ok is false when the
// point lies on a street or outside every plot.
func (idx *PlotIndex) Covering(p Point) (*Block, bool) {
	for _, h := range idx.tree.SearchIntersect(pointRect(p)) {
		b := h.(*blockEntry).block
		if b.Plot.Contains(p) {
			return b, true
		}
	}
	return nil, false
}

// Intersecting returns the blocks whose plot bounding boxes overlap r, in
// site order.
func (idx *PlotIndex) Intersecting(r Rect) []*Block {
	if r.IsEmpty() {
		return nil
	}
	bb, err := rtreego.NewRect(rtreego.Point{r.X, r.Y}, []float64{r.W, r.H})
	if err != nil {
		return nil
	}
	hits := idx.tree.SearchIntersect(bb)
	blocks := make([]*Block, 0, len(hits))
	for _, h := range hits {
		blocks = append(blocks, h.(*blockEntry).block)
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].SiteIndex < blocks[j].SiteIndex
	})
	return blocks
}

// Nearest returns the block whose plot bounding box lies nearest to p. ok
// is false only for an empty index.
func (idx *PlotIndex) Nearest(p Point) (*Block, bool) {
	if idx.size == 0 {
		return nil, false
	}
	h := idx.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if h == nil {
		return nil, false
	}
	return h.(*blockEntry).block, true
}

// plotRect converts a plot's bounding box to an R-tree rectangle, padding
// sides that collapsed to zero.
func plotRect(p Polygon) rtreego.Rect {
	b := p.Bounds()
	w, h := b.W, b.H
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.X, b.Y}, []float64{w, h})
	return rect
}

// pointRect wraps a query point in a minimal rectangle.
func pointRect(p Point) rtreego.Rect {
	rect, _ := rtreego.NewRect(rtreego.Point{p.X, p.Y}, []float64{minExtent, minExtent})
	return rect
}
