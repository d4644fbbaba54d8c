package chromaball

import (
	"image/color"
	"slices"

	"github.com/vovakirdan/chromaball/internal/core"
)

// Phase is the top-level state of a game.
type Phase int

const (
	PhasePlaying  Phase = iota // ball and floor are moving
	PhaseGameOver              // life ran out; waits for a reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Tile is one rectangle of the scrolling floor, in raster pixels.
type Tile struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Player is the ball.
type Player struct {
	Pos      core.Vec // center
	Vel      core.Vec // pixels per second
	Radius   float64
	MaxSpeed core.Vec
	Bounce   float64
	Color    color.RGBA
}

// State is everything that changes between frames. Game.Step never modifies
// the State it is given.
type State struct {
	Score   int
	Life    float64
	Tiles   []Tile
	Player  Player
	Palette []color.RGBA

	// Sampled is the color read under the ball at the end of the previous
	// frame. The next frame counts how much of it the floor still shows.
	Sampled color.RGBA

	// FarthestTile is the smallest tile Y seen so far; wrapped tiles restart there.
	FarthestTile float64

	Phase    Phase
	Paused   bool
	Mismatch bool // the last frame lost life
	Ticks    int
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Tiles = slices.Clone(s.Tiles)
	s.Palette = slices.Clone(s.Palette)
	return s
}

// Summary converts the state for the platform layer.
func (s State) Summary() core.GameState {
	return core.GameState{
		Score:    s.Score,
		Life:     s.Life,
		GameOver: s.Phase == PhaseGameOver,
		Paused:   s.Paused,
	}
}
