// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ChromaConfig contains all tunables of the game.
type ChromaConfig struct {
	Raster     RasterConfig     `yaml:"raster"`
	Player     PlayerConfig     `yaml:"player"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Life       LifeConfig       `yaml:"life"`
	Sampler    SamplerConfig    `yaml:"sampler"`
	Palette    PaletteConfig    `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RasterConfig defines the size of the render target in pixels.
type RasterConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ball.
type PlayerConfig struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeedX float64 `yaml:"max_speed_x"` // pixels per second
	MaxSpeedY float64 `yaml:"max_speed_y"`
	Accel     float64 `yaml:"accel"`  // velocity change per frame while a key is held
	Bounce    float64 `yaml:"bounce"` // restitution factor at the walls
}

// TilesConfig defines the scrolling floor.
type TilesConfig struct {
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	BaseSpeed    float64 `yaml:"base_speed"`    // pixels per frame
	SlowUntil    int     `yaml:"slow_until"`    // score below which tiles move at base speed
	SpeedDivisor float64 `yaml:"speed_divisor"` // speed = max(base, score / divisor) afterwards
}

// LifeConfig defines life, penalties and color change costs.
type LifeConfig struct {
	Start           float64    `yaml:"start"`
	Max             float64    `yaml:"max"`
	RecoverMax      float64    `yaml:"recover_max"`       // upper bound of the per-frame gain on a match
	PenaltyBase     float64    `yaml:"penalty_base"`      // penalty = rand / (base - palette size)
	ChangeCost      [2]float64 `yaml:"change_cost"`       // cost range while the palette is small
	ChangeCostLarge [2]float64 `yaml:"change_cost_large"` // cost range once the palette is large
	LargePalette    int        `yaml:"large_palette"`     // palette size above which the large cost applies
	RecolorEvery    int        `yaml:"recolor_every"`     // the ball is recolored whenever score is a multiple of this
}

// SamplerConfig defines the pixel collision thresholds.
type SamplerConfig struct {
	Tolerance      int `yaml:"tolerance"`       // max per-channel difference for a match
	MismatchMargin int `yaml:"mismatch_margin"` // pixel shortfall that counts as a mismatch
}

// PaletteConfig defines the tile colors and the colors unlocked while playing.
type PaletteConfig struct {
	Base       []string        `yaml:"base"`
	Unlocks    []PaletteUnlock `yaml:"unlocks"`
	Background string          `yaml:"background"` // game over screen
	Highlight  string          `yaml:"highlight"`  // mismatch flash
}

// PaletteUnlock adds colors when the palette has exactly Size colors and the
// score lies strictly between MinScore and MaxScore.
type PaletteUnlock struct {
	Size     int      `yaml:"size"`
	MinScore int      `yaml:"min_score"`
	MaxScore int      `yaml:"max_score"`
	Colors   []string `yaml:"colors"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to tile speed factor at max difficulty
	PenaltyMultiplier float64 `yaml:"penalty_multiplier"` // added to mismatch penalty factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means "keep the
// config as loaded" and is accepted.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
