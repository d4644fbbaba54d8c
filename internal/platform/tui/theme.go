package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chromaball/internal/core"
)

// Theme colors, picked to read well on top of the earthy floor palette.
var (
	colorHUD     = lipgloss.Color("#1B1B1B")
	colorWarning = lipgloss.Color("#C0392B")
	colorTitle   = lipgloss.Color("#2E2A1F")
	colorMuted   = lipgloss.Color("#6B6657")
)

// colorStyles maps core.Color to lipgloss styles for overlay text.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(colorHUD).Bold(true),
	core.ColorWarning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(colorTitle).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(colorMuted),
}

// helpStyle frames the key help footer.
var helpStyle = lipgloss.NewStyle().Padding(0, 1)

// overlayStyle returns the style for overlay text of color c.
func overlayStyle(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}
