package sampler

import (
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// uniformImage creates a w x h image filled with c.
func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// splitImage creates a w x h image, left of splitX filled with left, the rest with right.
func splitImage(w, h, splitX int, left, right color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < splitX {
				img.SetRGBA(x, y, left)
			} else {
				img.SetRGBA(x, y, right)
			}
		}
	}
	return img
}

// genericSource hides the *image.RGBA type to exercise the slow path.
type genericSource struct {
	img *image.RGBA
}

func (g genericSource) Bounds() image.Rectangle     { return g.img.Bounds() }
func (g genericSource) RGBAAt(x, y int) color.RGBA { return g.img.RGBAAt(x, y) }

func TestColorAmountUniformSquare(t *testing.T) {
	img := uniformImage(40, 40, red)

	for name, src := range map[string]Source{"rgba": img, "generic": genericSource{img}} {
		t.Run(name, func(t *testing.T) {
			s := New(src, DefaultTolerance)
			got := s.ColorAmount(Region{X: 10, Y: 10, W: 20, H: 20}, red)
			if got != 400 {
				t.Errorf("ColorAmount() = %d, expected 400", got)
			}
		})
	}
}

func TestColorAmountHalfSplit(t *testing.T) {
	img := splitImage(40, 40, 20, red, blue)
	s := New(img, DefaultTolerance)

	got := s.ColorAmount(Region{X: 0, Y: 0, W: 40, H: 40}, red)
	// Half of 1600, allowing one column of rounding
	if got < 800-40 || got > 800+40 {
		t.Errorf("ColorAmount() = %d, expected about 800", got)
	}

	if got := s.ColorAmount(Region{X: 0, Y: 0, W: 40, H: 40}, blue); got != 800 {
		t.Errorf("blue amount = %d, expected 800", got)
	}
}

func TestColorAmountOutsideBounds(t *testing.T) {
	s := New(uniformImage(40, 40, red), DefaultTolerance)

	regions := []Region{
		{X: 100, Y: 100, W: 20, H: 20},
		{X: -30, Y: 0, W: 20, H: 40},
		{X: 0, Y: 40, W: 40, H: 10},
		{X: -1e12, Y: -1e12, W: 10, H: 10},
	}
	for _, r := range regions {
		if got := s.ColorAmount(r, red); got != 0 {
			t.Errorf("ColorAmount(%+v) = %d, expected 0", r, got)
		}
	}
}

func TestColorAmountPartiallyOutside(t *testing.T) {
	s := New(uniformImage(40, 40, red), DefaultTolerance)

	got := s.ColorAmount(Region{X: -10, Y: -10, W: 20, H: 20}, red)
	if got != 100 {
		t.Errorf("clamped ColorAmount() = %d, expected 100", got)
	}
}

func TestColorAmountDegenerateRegions(t *testing.T) {
	s := New(uniformImage(40, 40, red), DefaultTolerance)

	regions := []Region{
		{X: 5, Y: 5, W: 0, H: 10},
		{X: 5, Y: 5, W: 10, H: 0},
		{X: 5, Y: 5, W: -10, H: 10},
		{X: 5, Y: 5, W: 10, H: -3},
		{X: math.NaN(), Y: 5, W: 10, H: 10},
		{X: 5, Y: 5, W: math.NaN(), H: 10},
		{X: math.Inf(-1), Y: 5, W: 10, H: 10},
	}
	for _, r := range regions {
		if got := s.ColorAmount(r, red); got != 0 {
			t.Errorf("ColorAmount(%+v) = %d, expected 0", r, got)
		}
	}
}

func TestColorAmountFractionalRegion(t *testing.T) {
	s := New(uniformImage(40, 40, red), DefaultTolerance)

	// Centres 10.5..19.5 fall inside [10.2, 20.2)
	got := s.ColorAmount(Region{X: 10.2, Y: 10.2, W: 10, H: 10}, red)
	if got != 100 {
		t.Errorf("ColorAmount() = %d, expected 100", got)
	}

	// Too thin to contain any pixel centre
	if got := s.ColorAmount(Region{X: 10.6, Y: 10, W: 0.3, H: 10}, red); got != 0 {
		t.Errorf("sub-pixel sliver = %d, expected 0", got)
	}
}

func TestColorAmountMonotonicInTolerance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8((x*8 + y) % 256)
			img.SetRGBA(x, y, color.RGBA{R: v, G: 100, B: 255 - v, A: 255})
		}
	}
	target := color.RGBA{R: 128, G: 100, B: 127, A: 255}
	region := Region{X: -4, Y: -4, W: 40, H: 40}

	prev := -1
	for tol := 0; tol <= 255; tol++ {
		got := New(img, uint8(tol)).ColorAmount(region, target)
		if got < prev {
			t.Fatalf("tolerance %d gave %d, less than %d at previous tolerance", tol, got, prev)
		}
		prev = got
	}
	if prev != 32*32 {
		t.Errorf("max tolerance should match every pixel, got %d", prev)
	}
}

func TestColorAmountTolerance(t *testing.T) {
	img := uniformImage(10, 10, color.RGBA{R: 250, G: 5, B: 0, A: 255})

	if got := New(img, 0).ColorAmount(Region{W: 10, H: 10}, red); got != 0 {
		t.Errorf("exact match with off-by-5 color = %d, expected 0", got)
	}
	if got := New(img, 5).ColorAmount(Region{W: 10, H: 10}, red); got != 100 {
		t.Errorf("tolerance 5 = %d, expected 100", got)
	}
}

func TestPointColor(t *testing.T) {
	img := splitImage(40, 40, 20, red, blue)
	s := New(img, DefaultTolerance)

	tests := []struct {
		name     string
		x, y     float64
		expected color.RGBA
	}{
		{"inside left", 5, 5, red},
		{"inside right", 30, 5, blue},
		{"fraction floors", 19.99, 3.7, red},
		{"split column", 20.0, 0, blue},
		{"left of surface", -0.5, 10, Transparent},
		{"right edge exclusive", 40, 10, Transparent},
		{"below", 10, 40.1, Transparent},
		{"NaN", math.NaN(), 1, Transparent},
		{"huge", 1e300, 1e300, Transparent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.PointColor(tc.x, tc.y); got != tc.expected {
				t.Errorf("PointColor(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestPointColorDeterministic(t *testing.T) {
	s := New(uniformImage(4, 4, red), DefaultTolerance)

	first := s.PointColor(-3, 17)
	for i := 0; i < 10; i++ {
		if got := s.PointColor(-3, 17); got != first {
			t.Fatalf("PointColor changed between calls: %v vs %v", got, first)
		}
	}
}

func TestSamplerSeesCurrentPixels(t *testing.T) {
	img := uniformImage(10, 10, red)
	s := New(img, DefaultTolerance)
	region := Region{W: 10, H: 10}

	if got := s.ColorAmount(region, red); got != 100 {
		t.Fatalf("before redraw = %d", got)
	}
	for x := 0; x < 10; x++ {
		img.SetRGBA(x, 0, blue)
	}
	if got := s.ColorAmount(region, red); got != 90 {
		t.Errorf("after redraw = %d, expected 90", got)
	}
}

func TestMatches(t *testing.T) {
	a := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	if !Matches(a, a, 0) {
		t.Error("color should match itself at tolerance 0")
	}
	if Matches(a, color.RGBA{R: 10, G: 20, B: 30, A: 240}, 8) {
		t.Error("alpha difference beyond tolerance should not match")
	}
	if !Matches(a, color.RGBA{R: 18, G: 12, B: 30, A: 255}, 8) {
		t.Error("differences within tolerance should match")
	}
}

func TestRegionAroundAndPixels(t *testing.T) {
	r := RegionAround(50, 40, 10)
	if r != (Region{X: 40, Y: 30, W: 20, H: 20}) {
		t.Errorf("RegionAround() = %+v", r)
	}
	if got := r.Pixels(); got != image.Rect(40, 30, 60, 50) {
		t.Errorf("Pixels() = %v", got)
	}
	if got := (Region{W: -1, H: 5}).Pixels(); !got.Empty() {
		t.Errorf("negative width Pixels() = %v, expected empty", got)
	}
}
