package cityplan

import (
	"fmt"
	"log/slog"

	"github.com/fogleman/delaunay"

	"github.com/gogpu/cityplan/internal/clip"
	"github.com/gogpu/cityplan/internal/parallel"
	"github.com/gogpu/cityplan/internal/sample"
	"github.com/gogpu/cityplan/internal/voronoi"
)

// Generate runs one sector pass: sample seed sites inside the padded
// sector rectangle, triangulate them, derive one Voronoi cell per site,
// clip each cell to the sector, carve the street margin, and validate the
// resulting plot. Per-site failures are recorded on that site's Block and
// never disturb sibling sites; only foundational failures return an error:
// fewer than 3 unique seeds ([ErrTooFewSites]) or an empty triangulation
// ([ErrNoTriangles]).
//
// Generation is deterministic for a fixed random source; see [WithRand].
func Generate(cfg Config, opts ...Option) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seeds := sample.Points(o.rng, cfg.SeedCount, cfg.SectorW, cfg.SectorH, cfg.SectorPadding)
	if len(seeds) < 3 {
		return nil, fmt.Errorf("%w: %d unique of %d requested", ErrTooFewSites, len(seeds), cfg.SeedCount)
	}
	sites := make([]Point, len(seeds))
	for i, s := range seeds {
		sites[i] = Point{X: s.X, Y: s.Y}
	}
	return subdivide(sites, cfg, o)
}

// subdivide runs the pipeline stages that follow seed sampling. Sites are
// already unique and at least 3.
func subdivide(sites []Point, cfg Config, o genOptions) (*Plan, error) {
	log := o.logger

	tri, err := delaunay.Triangulate(delaunayPoints(sites))
	if err != nil {
		return nil, fmt.Errorf("cityplan: triangulating %d sites: %w", len(sites), err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrNoTriangles
	}

	plan := &Plan{
		Sector:    RectAround(Pt(0, 0), cfg.SectorW, cfg.SectorH),
		Sites:     sites,
		Triangles: triangleTriples(tri.Triangles),
		Blocks:    make([]Block, len(sites)),
	}

	// All cells derive from the shared triangulation before the fan-out;
	// the per-site stage only reads them and writes its own block slot.
	cells := voronoi.Cells(voronoiPoints(sites), tri.Triangles)
	sector := clip.NewRect(plan.Sector.X, plan.Sector.Y, plan.Sector.W, plan.Sector.H)
	parallel.ForEachIndex(o.workers, len(sites), func(i int) {
		plan.Blocks[i] = buildBlock(i, sites[i], cells[i], sector, cfg, log)
	})

	plan.Report = summarize(plan.Blocks)
	log.Info("sector generated",
		"sites", plan.Report.Sites,
		"built", plan.Report.Built,
		"skipped", plan.Report.Sites-plan.Report.Built)
	return plan, nil
}

// buildBlock carries one site through clip, shrink and validation. Every
// early return records the stage that rejected the site.
func buildBlock(i int, site Point, cell []voronoi.Point, sector clip.Rect, cfg Config, log *slog.Logger) Block {
	b := Block{SiteIndex: i, Site: site, Status: StatusSkipped}

	if cell == nil {
		b.Reason = SkipOpenCell
		log.Debug("site skipped", "site", i, "reason", b.Reason.String())
		return b
	}
	b.Cell = fromVoronoi(cell)

	clipped, ok := clip.PolygonRect(toClip(b.Cell), sector)
	if !ok {
		b.Reason = SkipClippedAway
		log.Debug("site skipped", "site", i, "reason", b.Reason.String())
		return b
	}
	b.Clipped = fromClip(clipped)

	plot, ok := Shrink(b.Clipped, cfg.StreetWidth/2)
	if !ok {
		b.Reason = SkipShrinkTooTight
		log.Debug("site skipped", "site", i, "reason", b.Reason.String())
		return b
	}
	if !ValidatePlot(plot, cfg.Rules) {
		b.Reason = SkipRejectedPlot
		log.Debug("site skipped", "site", i, "reason", b.Reason.String())
		return b
	}

	b.Plot = plot
	b.Status = StatusOK
	return b
}

// triangleTriples regroups the triangulation's flat index list into
// Triangle values over the site list.
func triangleTriples(flat []int) []Triangle {
	tris := make([]Triangle, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		tris = append(tris, Triangle{A: flat[i], B: flat[i+1], C: flat[i+2]})
	}
	return tris
}

// delaunayPoints converts sites for the triangulation dependency.
func delaunayPoints(sites []Point) []delaunay.Point {
	out := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		out[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	return out
}

// voronoiPoints converts sites to the cell builder's local point type.
func voronoiPoints(sites []Point) []voronoi.Point {
	out := make([]voronoi.Point, len(sites))
	for i, s := range sites {
		out[i] = voronoi.Point{X: s.X, Y: s.Y}
	}
	return out
}

// fromVoronoi converts a cell ring back to a root Polygon.
func fromVoronoi(cell []voronoi.Point) Polygon {
	out := make(Polygon, len(cell))
	for i, p := range cell {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}

// toClip converts a Polygon to the clipper's local point type.
func toClip(p Polygon) []clip.Point {
	out := make([]clip.Point, len(p))
	for i, v := range p {
		out[i] = clip.Pt(v.X, v.Y)
	}
	return out
}

// fromClip converts a clipped ring back to a root Polygon.
func fromClip(pts []clip.Point) Polygon {
	out := make(Polygon, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
