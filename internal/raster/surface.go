// Package raster provides the RGBA render target the game draws into and the
// collision sampler reads from.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four arcs approximate a circle.
const kappa = 0.5522847498

// Surface is a fixed-size RGBA raster. Drawing is alpha-composited over the
// existing pixels; shape edges are antialiased.
type Surface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New creates a transparent surface of the given size.
// Non-positive dimensions produce an empty surface.
func New(width, height int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(0, 0),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds returns the pixel bounds of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// RGBAAt returns the pixel at (x, y), or transparent black outside the bounds.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Image exposes the backing image. Callers must treat it as read-only.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear sets every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// Fill paints every pixel with c, replacing what was there.
func (s *Surface) Fill(c color.RGBA) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites an axis-aligned rectangle. Fractional edges get
// partial coverage. alpha is the global opacity in [0, 1].
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.fill(x, y, x+w, y+h, c, alpha, func(ox, oy float32) {
		x0, y0 := float32(x)-ox, float32(y)-oy
		x1, y1 := float32(x+w)-ox, float32(y+h)-oy
		s.z.MoveTo(x0, y0)
		s.z.LineTo(x1, y0)
		s.z.LineTo(x1, y1)
		s.z.LineTo(x0, y1)
		s.z.ClosePath()
	})
}

// FillCircle composites a disc centred at (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA, alpha float64) {
	if r <= 0 {
		return
	}
	s.fill(cx-r, cy-r, cx+r, cy+r, c, alpha, func(ox, oy float32) {
		x, y := float32(cx)-ox, float32(cy)-oy
		rr := float32(r)
		k := rr * kappa
		s.z.MoveTo(x+rr, y)
		s.z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
		s.z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
		s.z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
		s.z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
		s.z.ClosePath()
	})
}

// fill rasterizes the path built by trace inside the clipped bounding box
// [minX,maxX)x[minY,maxY). The rasterizer's origin maps to the box corner, so
// trace receives that offset.
func (s *Surface) fill(minX, minY, maxX, maxY float64, c color.RGBA, alpha float64, trace func(ox, oy float32)) {
	if alpha <= 0 || math.IsNaN(minX+minY+maxX+maxY) {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.img.Rect)
	if box.Empty() {
		return
	}

	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	trace(float32(box.Min.X), float32(box.Min.Y))

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(float64(c.A) * alpha))})
	s.z.Draw(s.img, box, src, image.Point{})
}

// Thumbnail returns a nearest-neighbour downscale of the surface, one output
// pixel per sampled source pixel. Used by the terminal renderer.
func (s *Surface) Thumbnail(width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 || s.img.Rect.Empty() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return imaging.Resize(s.img, width, height, imaging.NearestNeighbor)
}

// Save writes the surface to an image file; the format follows the extension.
func (s *Surface) Save(path string) error {
	return imaging.Save(s.img, path)
}
