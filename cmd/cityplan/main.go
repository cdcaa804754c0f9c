// Command cityplan generates a city sector and writes PNG and GeoJSON
// previews of the result.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"

	"github.com/gogpu/cityplan"
)

func main() {
	var (
		seed    = flag.Int64("seed", 1, "random seed")
		sites   = flag.Int("sites", 24, "number of seed points")
		width   = flag.Float64("width", 160, "sector width in plan units")
		height  = flag.Float64("height", 120, "sector height in plan units")
		street  = flag.Float64("street", 3, "street width carved between blocks")
		scale   = flag.Float64("scale", 4, "PNG pixels per plan unit")
		pngOut  = flag.String("png", "cityplan.png", "PNG output file (empty to skip)")
		jsonOut = flag.String("geojson", "cityplan.geojson", "GeoJSON output file (empty to skip)")
		verbose = flag.Bool("v", false, "log per-site pipeline decisions")
	)
	flag.Parse()

	if *verbose {
		cityplan.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := cityplan.DefaultConfig()
	cfg.SeedCount = *sites
	cfg.SectorW = *width
	cfg.SectorH = *height
	cfg.StreetWidth = *street

	plan, err := cityplan.Generate(cfg, cityplan.WithRand(rand.New(rand.NewSource(*seed))))
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}
	log.Printf("Generated %d sites: %d plots built, %d skipped",
		plan.Report.Sites, plan.Report.Built, plan.Report.Sites-plan.Report.Built)

	if *pngOut != "" {
		opts := cityplan.DefaultRenderOptions()
		opts.Scale = *scale
		if err := cityplan.SavePNG(*pngOut, cityplan.RenderPlan(plan, opts)); err != nil {
			log.Fatalf("Failed to save PNG: %v", err)
		}
		log.Printf("Wrote %s", *pngOut)
	}

	if *jsonOut != "" {
		data, err := json.MarshalIndent(cityplan.PlanFeatures(plan), "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode GeoJSON: %v", err)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			log.Fatalf("Failed to write GeoJSON: %v", err)
		}
		log.Printf("Wrote %s", *jsonOut)
	}
}
