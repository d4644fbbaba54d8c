package main

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/chromaball/internal/config"
)

func TestRenderPalette(t *testing.T) {
	out := renderPalette(config.DefaultChromaConfig().Palette)

	for _, want := range []string{"Base (4 colors)", "#516143", "#FFDA73", "palette of 9 (14 colors)", "nearest"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestNearestColor(t *testing.T) {
	all := []string{"#ff0000", "#fe0000", "#0000ff"}
	c, _ := colorful.Hex("#ff0000")

	near, dist, ok := nearestColor(c, "#ff0000", all)
	if !ok || near != "#fe0000" {
		t.Errorf("nearest = %q, %v; want #fe0000", near, ok)
	}
	if dist <= 0 {
		t.Errorf("distance = %v, want > 0", dist)
	}

	if _, _, ok := nearestColor(c, "#ff0000", []string{"#ff0000"}); ok {
		t.Error("a palette of one has no nearest color")
	}
}
