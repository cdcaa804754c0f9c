package cityplan

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds emitted by the GeoJSON exporters, stored under the "kind"
// property so viewers can filter and style layers.
const (
	KindSector     = "sector"
	KindSite       = "site"
	KindCell       = "cell"
	KindPlot       = "plot"
	KindRoofLoop   = "roof-loop"
	KindRoofCap    = "roof-cap"
	KindPavement   = "pavement"
	KindCornerMark = "corner-mark"
)

// PlanFeatures flattens a plan into a GeoJSON feature collection: the
// sector outline, one point per seed site, and the cell and plot polygons
// of every block that reached those stages. Properties carry the site
// index and the block outcome, so downstream tooling can filter without
// re-running the pipeline.
func PlanFeatures(plan *Plan) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(polygonFeature(plan.Sector.Polygon(), KindSector))

	for i := range plan.Blocks {
		b := &plan.Blocks[i]

		site := geojson.NewFeature(orb.Point{b.Site.X, b.Site.Y})
		site.Properties["kind"] = KindSite
		site.Properties["site"] = b.SiteIndex
		site.Properties["status"] = b.Status.String()
		if b.Status == StatusSkipped {
			site.Properties["reason"] = b.Reason.String()
		}
		fc.Append(site)

		if len(b.Cell) >= 3 {
			cell := polygonFeature(b.Cell, KindCell)
			cell.Properties["site"] = b.SiteIndex
			fc.Append(cell)
		}
		if b.Ok() {
			plot := polygonFeature(b.Plot, KindPlot)
			plot.Properties["site"] = b.SiteIndex
			plot.Properties["area"] = b.Plot.Area()
			fc.Append(plot)
		}
	}
	return fc
}

// RoofFeatures flattens a roof into a GeoJSON feature collection: one
// polygon per silhouette loop bottom to top, the cap outline, and one
// point per corner mark. Loop features carry their level and elevation.
func RoofFeatures(roof *Roof) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, loop := range roof.Loops {
		f := LoopFeature(loop, KindRoofLoop)
		f.Properties["level"] = i
		fc.Append(f)
	}

	capF := LoopFeature(roof.Cap, KindRoofCap)
	fc.Append(capF)

	for _, m := range roof.CornerMarks {
		f := geojson.NewFeature(orb.Point{m.X, m.Y})
		f.Properties["kind"] = KindCornerMark
		fc.Append(f)
	}
	return fc
}

// LoopFeature converts an edge loop to a polygon feature tagged with the
// given kind and the loop's elevation. Pavement strips use KindPavement.
func LoopFeature(loop EdgeLoop, kind string) *geojson.Feature {
	f := polygonFeature(loop.Points, kind)
	f.Properties["rise"] = loop.MaxRise()
	return f
}

// polygonFeature wraps a polygon in a single-ring GeoJSON feature.
func polygonFeature(p Polygon, kind string) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{ringOf(p)})
	f.Properties["kind"] = kind
	return f
}

// ringOf converts a polygon to a closed orb ring: GeoJSON rings repeat the
// first position at the end.
func ringOf(p Polygon) orb.Ring {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, v := range p {
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if len(p) > 0 {
		ring = append(ring, orb.Point{p[0].X, p[0].Y})
	}
	return ring
}
