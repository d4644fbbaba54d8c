package chromaball

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/chromaball/internal/config"
	"github.com/vovakirdan/chromaball/internal/raster"
)

// unlock is a parsed config.PaletteUnlock.
type unlock struct {
	size     int
	minScore int
	maxScore int
	colors   []color.RGBA
}

// palette holds the parsed colors of a config.PaletteConfig.
type palette struct {
	base       []color.RGBA
	unlocks    []unlock
	background color.RGBA
	highlight  color.RGBA
}

func parsePalette(cfg config.PaletteConfig) (palette, error) {
	var p palette
	var err error

	if p.base, err = raster.ParsePalette(cfg.Base); err != nil {
		return palette{}, fmt.Errorf("palette base: %w", err)
	}
	if len(p.base) == 0 {
		return palette{}, fmt.Errorf("palette base is empty")
	}
	if p.background, err = raster.ParseHex(cfg.Background); err != nil {
		return palette{}, fmt.Errorf("palette background: %w", err)
	}
	if p.highlight, err = raster.ParseHex(cfg.Highlight); err != nil {
		return palette{}, fmt.Errorf("palette highlight: %w", err)
	}

	for i, u := range cfg.Unlocks {
		colors, err := raster.ParsePalette(u.Colors)
		if err != nil {
			return palette{}, fmt.Errorf("palette unlock %d: %w", i, err)
		}
		p.unlocks = append(p.unlocks, unlock{
			size:     u.Size,
			minScore: u.MinScore,
			maxScore: u.MaxScore,
			colors:   colors,
		})
	}
	return p, nil
}

// unlockColors grows the state palette when its size and the score hit an
// unlock window. Windows are exclusive on both ends.
func (p palette) unlockColors(st *State) {
	for _, u := range p.unlocks {
		if len(st.Palette) == u.size && st.Score > u.minScore && st.Score < u.maxScore {
			st.Palette = append(st.Palette, u.colors...)
		}
	}
}
