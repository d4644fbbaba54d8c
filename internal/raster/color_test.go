package raster

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
	}{
		{"#516143", color.RGBA{R: 0x51, G: 0x61, B: 0x43, A: 255}},
		{"#D3CEB2", color.RGBA{R: 0xD3, G: 0xCE, B: 0xB2, A: 255}},
		{"#ffda73", color.RGBA{R: 0xFF, G: 0xDA, B: 0x73, A: 255}},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestParseHexRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "516143", "#12", "#GGGGGG"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) should fail", in)
		}
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#516143", "#6F856F"})
	if err != nil {
		t.Fatalf("ParsePalette failed: %v", err)
	}
	if len(p) != 2 || p[1] != MustParseHex("#6F856F") {
		t.Errorf("ParsePalette = %v", p)
	}

	if _, err := ParsePalette([]string{"#516143", "nope"}); err == nil {
		t.Error("ParsePalette should reject bad entries")
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := MustParseHex("#7B6440")
	if got := Hex(c); got != "#7b6440" {
		t.Errorf("Hex() = %q, expected #7b6440", got)
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex should panic on bad input")
		}
	}()
	MustParseHex("bad")
}
