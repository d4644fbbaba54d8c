package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chromaball/internal/raster"
)

const configFile = "chromaball.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.chromaball/configs/chromaball.yaml ->
// ./configs/chromaball.yaml -> embedded default.
// Only a broken customPath is an error; other broken files are skipped.
func Load(customPath string) (ChromaConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChromaConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ChromaConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultChromaYAML)
	if err != nil {
		return DefaultChromaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs the
// keys it changes, and validates the result.
func Parse(data []byte) (ChromaConfig, error) {
	cfg := DefaultChromaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChromaConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ChromaConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg ChromaConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chromaball", "configs", filename)
}

// Validate reports every invalid setting at once.
func (c ChromaConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Raster.Width > 0 && c.Raster.Height > 0, "raster size must be positive, got %dx%d", c.Raster.Width, c.Raster.Height)
	check(c.Player.MinRadius > 0 && c.Player.MinRadius <= c.Player.MaxRadius,
		"player radius range [%g, %g] is invalid", c.Player.MinRadius, c.Player.MaxRadius)
	check(c.Player.Bounce >= 0 && c.Player.Bounce <= 1, "player bounce %g must be within [0, 1]", c.Player.Bounce)
	check(c.Player.MaxSpeedX >= 0 && c.Player.MaxSpeedY >= 0, "player max speed must not be negative")
	check(c.Tiles.Columns > 0 && c.Tiles.Rows > 0, "tile grid must be positive, got %dx%d", c.Tiles.Columns, c.Tiles.Rows)
	check(c.Tiles.SpeedDivisor > 0, "tiles speed_divisor must be positive")
	check(c.Life.Start > 0 && c.Life.Start <= c.Life.Max, "life start %g must be within (0, %g]", c.Life.Start, c.Life.Max)
	check(c.Life.ChangeCost[0] <= c.Life.ChangeCost[1], "life change_cost range is inverted")
	check(c.Life.ChangeCostLarge[0] <= c.Life.ChangeCostLarge[1], "life change_cost_large range is inverted")
	check(c.Life.RecolorEvery > 0, "life recolor_every must be positive")
	check(c.Sampler.Tolerance >= 0 && c.Sampler.Tolerance <= 255, "sampler tolerance %d must be within [0, 255]", c.Sampler.Tolerance)
	check(c.Sampler.MismatchMargin >= 0, "sampler mismatch_margin must not be negative")
	check(len(c.Palette.Base) > 0, "palette base must not be empty")

	// The penalty divides by (penalty_base - palette size); keep it positive
	// for the largest palette the unlocks can produce.
	largest := len(c.Palette.Base)
	for _, u := range c.Palette.Unlocks {
		largest += len(u.Colors)
	}
	check(c.Life.PenaltyBase > float64(largest), "life penalty_base %g must exceed the largest palette size %d", c.Life.PenaltyBase, largest)

	hexes := append([]string{c.Palette.Background, c.Palette.Highlight}, c.Palette.Base...)
	for _, u := range c.Palette.Unlocks {
		hexes = append(hexes, u.Colors...)
	}
	for _, h := range hexes {
		if _, err := raster.ParseHex(h); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ChromaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust collision strictness based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Sampler.Tolerance = 16
		cfg.Sampler.MismatchMargin = 1400
	case DifficultyHard:
		cfg.Sampler.Tolerance = 4
		cfg.Sampler.MismatchMargin = 700
	}
}
