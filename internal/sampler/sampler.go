// Package sampler answers color-overlap questions by reading rendered pixels
// instead of tracking shape geometry.
//
// Two colors match when every channel, alpha included, differs by at most the
// sampler's tolerance. ColorAmount counts matching pixels; a pixel belongs to a
// region when its centre lies inside it. Reads outside the source never fail:
// regions are intersected with the source bounds and points outside it report
// Transparent.
package sampler

import (
	"image"
	"image/color"
	"math"
)

// DefaultTolerance is the per-channel difference still treated as a match.
const DefaultTolerance uint8 = 8

// Transparent is returned by PointColor for coordinates outside the source.
var Transparent = color.RGBA{}

// Source is a read-only pixel buffer. *image.RGBA and *raster.Surface both
// satisfy it.
type Source interface {
	Bounds() image.Rectangle
	RGBAAt(x, y int) color.RGBA
}

// Region is an axis-aligned rectangle in pixel coordinates. It may be
// fractional and may extend past the source.
type Region struct {
	X, Y float64
	W, H float64
}

// RegionAround returns the square region bounding a circle.
func RegionAround(cx, cy, r float64) Region {
	return Region{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Pixels returns the pixel rectangle whose centres fall inside the region,
// before any clamping. Degenerate regions yield an empty rectangle.
func (r Region) Pixels() image.Rectangle {
	if !(r.W > 0) || !(r.H > 0) || !finite(r.X) || !finite(r.Y) {
		return image.Rectangle{}
	}
	x0 := pixelEdge(r.X)
	y0 := pixelEdge(r.Y)
	x1 := pixelEdge(r.X + r.W)
	y1 := pixelEdge(r.Y + r.H)
	return image.Rect(x0, y0, x1, y1).Canon()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// pixelEdge maps a coordinate to the index of the first pixel whose centre
// is at or after it, saturating far outside the int range.
func pixelEdge(v float64) int {
	e := math.Ceil(v - 0.5)
	switch {
	case e > math.MaxInt32:
		return math.MaxInt32
	case e < math.MinInt32:
		return math.MinInt32
	}
	return int(e)
}

// Matches reports whether a and b differ by at most tol on every channel.
func Matches(a, b color.RGBA, tol uint8) bool {
	return absDiff(a.R, b.R) <= tol &&
		absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol &&
		absDiff(a.A, b.A) <= tol
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Sampler reads colors from a Source. It holds no state besides the source
// and the tolerance, so every query reflects the pixels as they are now.
type Sampler struct {
	src       Source
	tolerance uint8
}

// New creates a sampler over src with a fixed tolerance.
func New(src Source, tolerance uint8) *Sampler {
	return &Sampler{src: src, tolerance: tolerance}
}

// Tolerance returns the per-channel match tolerance.
func (s *Sampler) Tolerance() uint8 {
	return s.tolerance
}

// ColorAmount counts the pixels inside region that match target.
// Empty, inverted and fully out-of-bounds regions count zero.
func (s *Sampler) ColorAmount(region Region, target color.RGBA) int {
	rect := region.Pixels().Intersect(s.src.Bounds())
	if rect.Empty() {
		return 0
	}

	if img, ok := s.src.(*image.RGBA); ok {
		return countRGBA(img, rect, target, s.tolerance)
	}

	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if Matches(s.src.RGBAAt(x, y), target, s.tolerance) {
				n++
			}
		}
	}
	return n
}

// countRGBA scans the pixel slice directly; rect must lie inside img.
func countRGBA(img *image.RGBA, rect image.Rectangle, target color.RGBA, tol uint8) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		off := img.PixOffset(rect.Min.X, y)
		row := img.Pix[off : off+rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			px := color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			if Matches(px, target, tol) {
				n++
			}
		}
	}
	return n
}

// PointColor returns the color of the pixel containing (x, y).
// Coordinates are floored; anything outside the source is Transparent.
func (s *Sampler) PointColor(x, y float64) color.RGBA {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Transparent
	}
	fx, fy := math.Floor(x), math.Floor(y)
	b := s.src.Bounds()
	if fx < float64(b.Min.X) || fx >= float64(b.Max.X) || fy < float64(b.Min.Y) || fy >= float64(b.Max.Y) {
		return Transparent
	}
	return s.src.RGBAAt(int(fx), int(fy))
}
