package cityplan

import (
	"fmt"

	"github.com/gogpu/cityplan/internal/earcut"
	"github.com/gogpu/cityplan/internal/offset"
)

// edgeCollapseEps bounds the offset edge length below which the outline
// counts as collapsed.
const edgeCollapseEps = 1e-9

// LayerSkipReason says why a roof layer was dropped during construction.
type LayerSkipReason int

const (
	// LayerInverted: the cumulative inset crossed the outline's center
	// and flipped its winding.
	LayerInverted LayerSkipReason = iota

	// LayerCollapsed: the offset outline retained no usable area.
	LayerCollapsed
)

// String returns the reason name.
func (r LayerSkipReason) String() string {
	switch r {
	case LayerInverted:
		return "inverted"
	case LayerCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// SkippedLayer records a roof layer dropped during construction.
type SkippedLayer struct {
	// Index is the layer's position in the input layer list.
	Index int

	Reason LayerSkipReason
}

// Roof is the stepped silhouette built on one footprint.
type Roof struct {
	// Footprint is the base outline the roof stands on.
	Footprint Polygon

	// Loops holds the silhouette outlines bottom to top: the footprint at
	// rise 0 first, then one loop per surviving layer. Vertex i of every
	// loop corresponds to footprint vertex i, so strip meshes between
	// consecutive loops pair vertices directly.
	Loops []EdgeLoop

	// Skipped records layers dropped because their offset degenerated.
	// Surviving layers are unaffected by a skipped sibling.
	Skipped []SkippedLayer

	// Cap is the flat top outline.
	Cap EdgeLoop

	// CapInsetSkipped reports that the cap inset degenerated; Cap then
	// reuses the topmost loop's outline.
	CapInsetSkipped bool

	// CapTriangles triangulates Cap.Points. Nil when ear clipping found
	// no valid ear; the cap outline itself is still usable.
	CapTriangles []Triangle

	// CornerMarks are the footprint vertices flagged for corner features,
	// in footprint order.
	CornerMarks []Point
}

// TopRise returns the elevation of the cap outline.
func (r *Roof) TopRise() float64 {
	return r.Cap.MaxRise()
}

// BuildRoof constructs the stepped silhouette for a footprint: the base
// loop at rise 0, one mitered offset loop per layer, and a triangulated
// flat cap pulled in by capInset. Every loop is derived from the footprint
// with the cumulative inset, so numeric noise never accumulates across
// layers.
//
// cornerFlags marks footprint vertices that receive a corner feature; nil
// means none, otherwise its length must match the footprint. A layer whose
// offset outline inverts or collapses is skipped and recorded; it
// contributes neither inset nor rise to the layers above it.
func BuildRoof(footprint Polygon, cornerFlags []bool, layers []RoofLayer, capInset float64) (*Roof, error) {
	if len(footprint) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrFootprintTooSmall, len(footprint))
	}
	if cornerFlags != nil && len(cornerFlags) != len(footprint) {
		return nil, fmt.Errorf("cityplan: %d corner flags for %d footprint vertices",
			len(cornerFlags), len(footprint))
	}
	log := Logger()

	base := toOffset(footprint)

	roof := &Roof{Footprint: footprint.Clone()}
	roof.Loops = append(roof.Loops, FlatLoop(footprint, 0))

	var dist float64
	for li, layer := range layers {
		outer := roof.Loops[len(roof.Loops)-1]
		cand := fromOffsetLoop(offset.Apply(toOffsetLoop(outer), base, dist+layer.Inset, layer.Rise))
		reason, ok := usableOutline(cand.Points, footprint)
		if !ok {
			roof.Skipped = append(roof.Skipped, SkippedLayer{Index: li, Reason: reason})
			log.Debug("roof layer skipped", "layer", li, "reason", reason.String())
			continue
		}
		dist += layer.Inset
		roof.Loops = append(roof.Loops, cand)
	}

	top := roof.Loops[len(roof.Loops)-1]
	capLoop := fromOffsetLoop(offset.Apply(toOffsetLoop(top), base, dist+capInset, 0))
	if _, ok := usableOutline(capLoop.Points, footprint); !ok {
		capLoop = EdgeLoop{Points: top.Points.Clone(), Rise: append([]float64(nil), top.Rise...)}
		roof.CapInsetSkipped = true
		log.Debug("cap inset skipped", "inset", capInset)
	}
	roof.Cap = capLoop

	tris, ok := earcutTriangles(capLoop.Points)
	if ok {
		roof.CapTriangles = tris
	} else {
		log.Debug("cap triangulation failed", "vertices", len(capLoop.Points))
	}

	for i, flagged := range cornerFlags {
		if flagged {
			roof.CornerMarks = append(roof.CornerMarks, footprint[i])
		}
	}
	return roof, nil
}

// Pavement derives the pavement strip outline around a footprint: the
// footprint offset outward by outset, at ground level. Vertex i of the
// returned loop corresponds to footprint vertex i, so the pair mesh as one
// strip.
func Pavement(footprint Polygon, outset float64) (EdgeLoop, error) {
	if len(footprint) < 3 {
		return EdgeLoop{}, fmt.Errorf("%w: got %d", ErrFootprintTooSmall, len(footprint))
	}
	base := toOffset(footprint)
	return fromOffsetLoop(offset.Apply(offset.Flat(base, 0), base, -outset, 0)), nil
}

// usableOutline checks a candidate outline edge by edge against the base
// it offsets. Miter offsetting preserves the vertex count and moves each
// vertex linearly with distance, so winding and area stay plausible even
// past the collapse point; what actually degenerates is the edges. An edge
// shrunk to a point marks the outline collapsed, and an edge running
// against its base direction marks it inverted.
func usableOutline(ring, base Polygon) (LayerSkipReason, bool) {
	n := len(base)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		re := ring[j].Sub(ring[i])
		if re.Length() < edgeCollapseEps {
			return LayerCollapsed, false
		}
		if base[j].Sub(base[i]).Dot(re) < 0 {
			return LayerInverted, false
		}
	}
	return 0, true
}

// earcutTriangles triangulates a simple polygon into indexed triangles
// over its own vertex list.
func earcutTriangles(p Polygon) ([]Triangle, bool) {
	pts := make([]earcut.Point, len(p))
	for i, v := range p {
		pts[i] = earcut.Point{X: v.X, Y: v.Y}
	}
	ears, ok := earcut.Triangulate(pts)
	if !ok {
		return nil, false
	}
	out := make([]Triangle, len(ears))
	for i, t := range ears {
		out[i] = Triangle{A: t.A, B: t.B, C: t.C}
	}
	return out, true
}

// toOffset converts a Polygon to the offsetter's local point type.
func toOffset(p Polygon) []offset.Point {
	out := make([]offset.Point, len(p))
	for i, v := range p {
		out[i] = offset.Point{X: v.X, Y: v.Y}
	}
	return out
}

// toOffsetLoop converts an EdgeLoop to the offsetter's loop type.
func toOffsetLoop(l EdgeLoop) offset.Loop {
	return offset.Loop{Points: toOffset(l.Points), Rise: l.Rise}
}

// fromOffsetLoop converts an offsetter loop back to an EdgeLoop.
func fromOffsetLoop(l offset.Loop) EdgeLoop {
	pts := make(Polygon, len(l.Points))
	for i, p := range l.Points {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return EdgeLoop{Points: pts, Rise: l.Rise}
}
