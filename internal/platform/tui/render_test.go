package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/raster"
)

func TestRenderFrameFilled(t *testing.T) {
	s := raster.New(8, 8)
	s.Fill(color.RGBA{R: 200, A: 255})
	overlay := core.NewScreen(4, 2)

	out := RenderFrame(s, overlay)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, string(upperHalf)); n != 4 {
			t.Errorf("line %d: %d half blocks, want 4", i, n)
		}
	}
}

func TestRenderFrameTransparent(t *testing.T) {
	s := raster.New(8, 8)
	overlay := core.NewScreen(4, 2)

	out := RenderFrame(s, overlay)
	if strings.ContainsRune(out, upperHalf) || strings.ContainsRune(out, lowerHalf) {
		t.Errorf("transparent surface rendered blocks: %q", out)
	}
}

func TestRenderFrameLowerHalf(t *testing.T) {
	s := raster.New(2, 2)
	s.FillRect(0, 1, 2, 1, color.RGBA{G: 200, A: 255}, 1)
	overlay := core.NewScreen(2, 1)

	out := RenderFrame(s, overlay)
	if n := strings.Count(out, string(lowerHalf)); n != 2 {
		t.Errorf("got %d lower half blocks in %q, want 2", n, out)
	}
}

func TestRenderFrameOverlay(t *testing.T) {
	s := raster.New(20, 4)
	s.Fill(color.RGBA{B: 200, A: 255})
	overlay := core.NewScreen(10, 2)
	overlay.DrawTextColored(1, 0, "Life", core.ColorHUD)

	out := RenderFrame(s, overlay)
	first := strings.Split(out, "\n")[0]
	if !strings.Contains(first, "Life") {
		t.Errorf("overlay text missing from %q", first)
	}
	if n := strings.Count(first, string(upperHalf)); n != 6 {
		t.Errorf("got %d raster cells next to the text, want 6", n)
	}
}

func TestRenderFrameEmpty(t *testing.T) {
	if out := RenderFrame(raster.New(4, 4), core.NewScreen(0, 0)); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestPixelCell(t *testing.T) {
	tests := []struct {
		top, bottom string
		want        rune
	}{
		{"", "", ' '},
		{"", "#ff0000", lowerHalf},
		{"#ff0000", "", upperHalf},
		{"#ff0000", "#00ff00", upperHalf},
	}
	for _, tt := range tests {
		if _, got := pixelCell(tt.top, tt.bottom); got != tt.want {
			t.Errorf("pixelCell(%q, %q) = %q, want %q", tt.top, tt.bottom, got, tt.want)
		}
	}
}
