package cityplan

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// RenderOptions configures the preview rasterizer.
type RenderOptions struct {
	// Scale is pixels per plan unit. Values <= 0 fall back to 4.
	Scale float64

	// Margin is the pixel border around the rendered bounds.
	Margin int
}

// DefaultRenderOptions returns the options used by the examples.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Scale: 4, Margin: 8}
}

// Flat preview palette. Fills are solid; only edge pixels blend.
var (
	colorBackground = color.RGBA{R: 24, G: 26, B: 33, A: 255}
	colorSector     = color.RGBA{R: 44, G: 48, B: 58, A: 255}
	colorCell       = color.RGBA{R: 70, G: 78, B: 95, A: 255}
	colorPlot       = color.RGBA{R: 96, G: 142, B: 97, A: 255}
	colorSite       = color.RGBA{R: 226, G: 96, B: 76, A: 255}
	colorRoofLow    = color.RGBA{R: 84, G: 90, B: 104, A: 255}
	colorRoofHigh   = color.RGBA{R: 176, G: 184, B: 198, A: 255}
	colorCap        = color.RGBA{R: 226, G: 230, B: 238, A: 255}
)

// RenderPlan rasterizes a plan into a debug preview: the sector backdrop,
// every clipped cell, the validated plots on top, and one marker per seed
// site. The output depends only on the plan and options.
func RenderPlan(plan *Plan, opts RenderOptions) *image.RGBA {
	c := newCanvas(plan.Sector, opts)
	c.fill(plan.Sector.Polygon(), colorSector)

	for i := range plan.Blocks {
		b := &plan.Blocks[i]
		if len(b.Clipped) >= 3 {
			c.fill(b.Clipped, colorCell)
		}
	}
	for _, b := range plan.OkBlocks() {
		c.fill(b.Plot, colorPlot)
	}
	for i := range plan.Blocks {
		c.mark(plan.Blocks[i].Site, colorSite, 2)
	}
	return c.img
}

// RenderRoof rasterizes a roof's silhouette loops bottom to top, shading
// from low to high, with the cap on top and corner marks last.
func RenderRoof(roof *Roof, opts RenderOptions) *image.RGBA {
	c := newCanvas(roof.Footprint.Bounds(), opts)

	n := len(roof.Loops)
	for i, loop := range roof.Loops {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c.fill(loop.Points, lerpRGBA(colorRoofLow, colorRoofHigh, t))
	}
	c.fill(roof.Cap.Points, colorCap)
	for _, m := range roof.CornerMarks {
		c.mark(m, colorSite, 2)
	}
	return c.img
}

// SavePNG writes an image to disk as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// canvas pairs an image with the plan-to-pixel transform and a reusable
// rasterizer.
type canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
	m   Matrix
}

// newCanvas sizes an image to the given plan-space bounds and prepares the
// transform: plan coordinates are Y-up, images are Y-down, so the scale
// flips the vertical axis around the bounds center.
func newCanvas(bounds Rect, opts RenderOptions) *canvas {
	scale := opts.Scale
	if scale <= 0 {
		scale = 4
	}
	w := int(math.Ceil(bounds.W*scale)) + 2*opts.Margin
	h := int(math.Ceil(bounds.H*scale)) + 2*opts.Margin
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	center := bounds.Center()
	m := Translate(float64(w)/2, float64(h)/2).
		Multiply(Scale(scale, -scale)).
		Multiply(Translate(-center.X, -center.Y))

	return &canvas{
		img: img,
		ras: vector.NewRasterizer(w, h),
		m:   m,
	}
}

// fill rasterizes a solid polygon.
func (c *canvas) fill(p Polygon, col color.Color) {
	if len(p) < 3 {
		return
	}
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())

	first := c.m.TransformPoint(p[0])
	c.ras.MoveTo(float32(first.X), float32(first.Y))
	for _, v := range p[1:] {
		q := c.m.TransformPoint(v)
		c.ras.LineTo(float32(q.X), float32(q.Y))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// mark stamps a small square marker, r pixels in each direction from the
// point's pixel.
func (c *canvas) mark(p Point, col color.Color, r int) {
	q := c.m.TransformPoint(p)
	x, y := int(q.X), int(q.Y)
	rect := image.Rect(x-r, y-r, x+r+1, y+r+1).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// lerpRGBA interpolates two palette colors channel by channel.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: ch(a.A, b.A),
	}
}
