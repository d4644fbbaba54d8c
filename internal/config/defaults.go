package config

import (
	_ "embed"
)

//go:embed defaults/chromaball.yaml
var defaultChromaYAML []byte

// DefaultChromaConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that fails to parse.
func DefaultChromaConfig() ChromaConfig {
	return ChromaConfig{
		Raster: RasterConfig{
			Width:  480,
			Height: 320,
		},
		Player: PlayerConfig{
			MinRadius: 20,
			MaxRadius: 30,
			MaxSpeedX: 200,
			MaxSpeedY: 200,
			Accel:     10,
			Bounce:    0.4,
		},
		Tiles: TilesConfig{
			Columns:      3,
			Rows:         5,
			BaseSpeed:    1,
			SlowUntil:    10,
			SpeedDivisor: 100,
		},
		Life: LifeConfig{
			Start:           100,
			Max:             100,
			RecoverMax:      1,
			PenaltyBase:     20,
			ChangeCost:      [2]float64{5, 10},
			ChangeCostLarge: [2]float64{15, 20},
			LargePalette:    9,
			RecolorEvery:    100,
		},
		Sampler: SamplerConfig{
			Tolerance:      8,
			MismatchMargin: 1000,
		},
		Palette: PaletteConfig{
			Base: []string{"#516143", "#6F856F", "#7B6440", "#554128"},
			Unlocks: []PaletteUnlock{
				{Size: 4, MinScore: 100, MaxScore: 199, Colors: []string{"#62452A", "#6C533D", "#55493A"}},
				{Size: 7, MinScore: 500, MaxScore: 599, Colors: []string{"#376C3A", "#266235"}},
				{Size: 9, MinScore: 1000, MaxScore: 1099, Colors: []string{"#B08F53", "#FFE8B5", "#B0996B", "#8C7D58", "#FFDA73"}},
			},
			Background: "#D3CEB2",
			Highlight:  "#D3CEB2",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				PenaltyMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChromaYAML
}
