package raster

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is fully transparent black, the color of a cleared surface.
var Transparent = color.RGBA{}

// ParseHex parses a "#RRGGBB" string into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("raster: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHex is ParseHex for compile-time constants. It panics on bad input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette parses a list of hex colors.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex formats the RGB channels of c as "#rrggbb". Alpha is ignored.
func Hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
