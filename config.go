package cityplan

import (
	"errors"
	"fmt"
	"math"
)

// RoofLayer describes one step of a stepped roof silhouette: how far the
// layer's outline moves in from the footprint relative to the layer below
// it, and how far it climbs.
type RoofLayer struct {
	// Inset is the horizontal offset from the previous layer's outline.
	// Positive moves inward; negative produces an overhang.
	Inset float64

	// Rise is the vertical climb from the previous layer.
	Rise float64
}

// Config holds the numeric parameters of a sector generation pass.
// DefaultConfig returns a working set; zero-value Config does not validate.
type Config struct {
	// SeedCount is the number of seed points sampled for the sector.
	// Duplicates are dropped after sampling, so the effective site count
	// may be lower. Must be at least 3.
	SeedCount int

	// SectorW, SectorH are the sector rectangle dimensions. The sector is
	// centered on the origin.
	SectorW, SectorH float64

	// SectorPadding keeps seed points away from the sector edges. A
	// padding that inverts the sampling range falls back to the full
	// rectangle.
	SectorPadding float64

	// StreetWidth is carved between neighboring blocks; each block cedes
	// half of it on every side when its cell is shrunk to a plot.
	StreetWidth float64

	// PavementOutset is how far pavement strips extend outward from a
	// building footprint.
	PavementOutset float64

	// RoofLayers describes the stepped silhouette built on every
	// footprint, bottom to top. Empty means a flat roof at footprint
	// level.
	RoofLayers []RoofLayer

	// CapInset pulls the final flat cap in from the topmost layer's
	// outline.
	CapInset float64

	// Rules are the acceptance thresholds applied to candidate plots.
	Rules PlotRules
}

// DefaultConfig returns the parameter set used by the examples: a 100x80
// sector, a dozen blocks, and a two-step roof profile.
func DefaultConfig() Config {
	return Config{
		SeedCount:      12,
		SectorW:        100,
		SectorH:        80,
		SectorPadding:  6,
		StreetWidth:    3,
		PavementOutset: 1.2,
		RoofLayers: []RoofLayer{
			{Inset: 1.0, Rise: 2.5}, // mansard step
			{Inset: 0.6, Rise: 1.5}, // attic step
		},
		CapInset: 0.3,
		Rules: PlotRules{
			MinArea:  12,
			MinSide:  1.5,
			MinAngle: 15 * math.Pi / 180,
		},
	}
}

// Validate reports the first configuration error, or nil when the config
// can drive a generation pass.
func (c Config) Validate() error {
	if c.SeedCount < 3 {
		return fmt.Errorf("cityplan: config: seed count %d, need at least 3", c.SeedCount)
	}
	if c.SectorW <= 0 || c.SectorH <= 0 {
		return fmt.Errorf("cityplan: config: sector %gx%g, need positive dimensions", c.SectorW, c.SectorH)
	}
	if c.SectorPadding < 0 {
		return errors.New("cityplan: config: sector padding must not be negative")
	}
	if c.StreetWidth < 0 {
		return errors.New("cityplan: config: street width must not be negative")
	}
	if c.Rules.MinArea < 0 || c.Rules.MinSide < 0 || c.Rules.MinAngle < 0 {
		return errors.New("cityplan: config: plot rules must not be negative")
	}
	return nil
}
