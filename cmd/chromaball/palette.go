package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromaball/internal/config"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the floor palette and its unlocks",
	Long: `Print a swatch for every floor color, grouped by when it becomes
available, together with the closest other color in the palette.
Colors that sit close together are the hard ones to tell apart.`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

var (
	paletteHeader = lipgloss.NewStyle().Bold(true).MarginTop(1)
	paletteMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runPalette(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(renderPalette(cfg.Palette))
}

// renderPalette lays out the base colors and each unlock group.
func renderPalette(p config.PaletteConfig) string {
	all := append([]string(nil), p.Base...)
	for _, u := range p.Unlocks {
		all = append(all, u.Colors...)
	}

	var sb strings.Builder
	sb.WriteString(paletteHeader.Render(fmt.Sprintf("Base (%d colors)", len(p.Base))))
	sb.WriteString("\n")
	writeSwatches(&sb, p.Base, all)

	size := len(p.Base)
	for _, u := range p.Unlocks {
		size += len(u.Colors)
		title := fmt.Sprintf("Score %d-%d, palette of %d (%d colors)", u.MinScore, u.MaxScore, u.Size, size)
		sb.WriteString(paletteHeader.Render(title))
		sb.WriteString("\n")
		writeSwatches(&sb, u.Colors, all)
	}

	sb.WriteString(paletteHeader.Render("Screens"))
	sb.WriteString("\n")
	writeSwatches(&sb, []string{p.Background, p.Highlight}, nil)
	return strings.TrimRight(sb.String(), "\n")
}

// writeSwatches prints one line per color with its nearest neighbor in all.
func writeSwatches(sb *strings.Builder, hexes, all []string) {
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			fmt.Fprintf(sb, "  %s %s\n", h, paletteMuted.Render("(invalid)"))
			continue
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
		line := fmt.Sprintf("  %s %s", swatch, strings.ToUpper(c.Hex()))

		if near, dist, ok := nearestColor(c, h, all); ok {
			line += paletteMuted.Render(fmt.Sprintf("  nearest %s (ΔE %.1f)", strings.ToUpper(near), dist*100))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// nearestColor finds the palette entry closest to c in CIE Lab space,
// skipping self.
func nearestColor(c colorful.Color, self string, all []string) (string, float64, bool) {
	best, bestDist := "", 0.0
	for _, h := range all {
		if strings.EqualFold(h, self) {
			continue
		}
		o, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		if d := c.DistanceLab(o); best == "" || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, bestDist, best != ""
}
