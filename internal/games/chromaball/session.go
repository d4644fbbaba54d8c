package chromaball

import (
	"time"

	"github.com/vovakirdan/chromaball/internal/config"
	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/random"
	"github.com/vovakirdan/chromaball/internal/raster"
)

// Session runs one game for one player: a Game, its random source and the
// current State behind the Reset/Step/Render interface the platform drives.
type Session struct {
	cfg   config.ChromaConfig
	rt    core.RuntimeConfig
	game  *Game
	state State
}

// NewSession creates a session. Reset must be called before Step.
func NewSession(cfg config.ChromaConfig) *Session {
	return &Session{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (s *Session) ID() string {
	return "chromaball"
}

// Title returns the display name for this game.
func (s *Session) Title() string {
	return "Chromaball"
}

// Reset starts a new game. A zero seed is replaced with the current time.
func (s *Session) Reset(rt core.RuntimeConfig) error {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game, err := New(s.cfg, random.New(rt.Seed))
	if err != nil {
		return err
	}
	s.rt = rt
	s.game = game
	s.state = game.NewState()
	return nil
}

// Step advances the game by one frame.
func (s *Session) Step(in core.InputFrame, elapsed float64) core.StepResult {
	s.state = s.game.Step(s.state, in, elapsed)
	return core.StepResult{State: s.state.Summary()}
}

// Render draws the HUD overlay.
func (s *Session) Render(dst *core.Screen) {
	s.game.RenderHUD(s.state, dst)
}

// State returns the platform summary of the current state.
func (s *Session) State() core.GameState {
	return s.state.Summary()
}

// Snapshot returns a copy of the full game state.
func (s *Session) Snapshot() State {
	return s.state.Clone()
}

// Surface returns the raster of the running game.
func (s *Session) Surface() *raster.Surface {
	return s.game.Surface()
}

// Runtime returns the runtime config of the last Reset, with the seed resolved.
func (s *Session) Runtime() core.RuntimeConfig {
	return s.rt
}
