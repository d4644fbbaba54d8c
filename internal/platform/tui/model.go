package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/frame"
	"github.com/vovakirdan/chromaball/internal/games/chromaball"
	"github.com/vovakirdan/chromaball/internal/input"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	session    *chromaball.Session
	screen     *core.Screen
	controller *input.Controller
	timer      frame.Timer
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	gameState  core.GameState
	now        func() time.Time
	shotDir    string
	quitting   bool
}

// NewModel resets session with cfg and wraps it in a model.
// The overlay starts at the configured size and follows window resizes.
func NewModel(session *chromaball.Session, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if err := session.Reset(cfg); err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		session:    session,
		controller: input.NewController(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		config:     session.Runtime(),
		gameState:  session.State(),
		now:        time.Now,
	}
	m.screen = core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH))

	if home, err := os.UserHomeDir(); err == nil {
		m.shotDir = filepath.Join(home, ".chromaball", "screenshots")
	}

	logger.Debug("session ready", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return m, nil
}

// gameRows leaves the last terminal row for the help footer.
func gameRows(height int) int {
	if height <= 1 {
		return height
	}
	return height - 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.controller.Trigger(core.ActionPause)
		return m, nil
	}

	k, ok := m.keys.ControllerKey(msg)
	if !ok {
		return m, nil
	}
	// Repeats of a held key refresh it; SPACE and ESC fire once per press.
	if isHoldKey(k) {
		m.controller.KeyDown(k, m.now())
	} else {
		m.controller.Tap(k, m.now())
	}
	return m, nil
}

// handleMouse treats the left button as a touch: dragging moves the ball and
// two quick releases buy a new color.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if p, ok := m.cellToRaster(msg.X, msg.Y); ok {
			m.controller.TouchMove(p)
		}
	case tea.MouseActionRelease:
		m.controller.TouchEnd(m.now())
	}
	return m, nil
}

// cellToRaster maps the center of a terminal cell to raster pixels.
func (m Model) cellToRaster(x, y int) (core.Vec, bool) {
	cols, rows := m.screen.Width(), m.screen.Height()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return core.Vec{}, false
	}
	s := m.session.Surface()
	return core.Vec{
		X: (float64(x) + 0.5) * float64(s.Width()) / float64(cols),
		Y: (float64(y) + 0.5) * float64(s.Height()) / float64(rows),
	}, true
}

// handleResize processes window resize events. The raster keeps its size;
// only the terminal view is rescaled, so the game continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.timer.Tick(now)
	in := m.controller.Frame(now)

	wasOver := m.gameState.GameOver
	result := m.session.Step(in, elapsed)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	} else if wasOver && !m.gameState.GameOver {
		m.logger.Debug("game restarted")
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the raster as a PNG. Failures are logged and ignored.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Debug("screenshot failed", "error", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.png", m.session.ID(), timestamp))
	if err := m.session.Surface().Save(path); err != nil {
		m.logger.Debug("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the latest game summary.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderFrame(m.session.Surface(), m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for session.
func Run(session *chromaball.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(session, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to move the ball
	)

	_, err = p.Run()
	return err
}
