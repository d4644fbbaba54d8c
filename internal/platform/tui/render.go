package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/raster"
)

// Half blocks show two vertically stacked pixels in one cell.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// cellStyle identifies a run of cells that can share one style.
type cellStyle struct {
	overlay bool
	color   core.Color
	fg, bg  string // hex, empty for transparent
}

// RenderFrame draws the surface scaled to the overlay size, two pixels per
// cell, and puts the non-transparent overlay cells on top. Adjacent cells with
// the same style are grouped to keep escape sequences short.
func RenderFrame(s *raster.Surface, overlay *core.Screen) string {
	cols, rows := overlay.Width(), overlay.Height()
	if cols <= 0 || rows <= 0 {
		return ""
	}
	img := s.Thumbnail(cols, rows*2)

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		var run strings.Builder
		var cur cellStyle
		for x := range cols {
			top := pixelHex(img, x, y*2)
			bottom := pixelHex(img, x, y*2+1)

			st, r := pixelCell(top, bottom)
			if !overlay.Transparent(x, y) {
				cell := overlay.GetCell(x, y)
				st = cellStyle{overlay: true, color: cell.Color, bg: top}
				r = cell.Rune
			}

			if x > 0 && st != cur {
				sb.WriteString(cur.render(run.String()))
				run.Reset()
			}
			cur = st
			run.WriteRune(r)
		}
		sb.WriteString(cur.render(run.String()))
	}
	return sb.String()
}

// pixelCell picks the glyph for two pixels. The foreground always paints a
// visible pixel so transparent halves show the terminal background.
func pixelCell(top, bottom string) (cellStyle, rune) {
	switch {
	case top == "" && bottom == "":
		return cellStyle{}, ' '
	case top == "":
		return cellStyle{fg: bottom}, lowerHalf
	default:
		return cellStyle{fg: top, bg: bottom}, upperHalf
	}
}

func (c cellStyle) render(text string) string {
	var style lipgloss.Style
	if c.overlay {
		style = overlayStyle(c.color)
	} else {
		style = lipgloss.NewStyle()
		if c.fg != "" {
			style = style.Foreground(lipgloss.Color(c.fg))
		}
	}
	if c.bg != "" {
		style = style.Background(lipgloss.Color(c.bg))
	}
	return style.Render(text)
}

// pixelHex returns the hex color at (x, y), or "" for transparent pixels.
func pixelHex(img *image.NRGBA, x, y int) string {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) {
		return ""
	}
	c := img.NRGBAAt(x, y)
	if c.A == 0 {
		return ""
	}
	return raster.Hex(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}
