package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromaball/internal/config"
	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/games/chromaball"
)

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultChromaConfig()
	cfg.Difficulty.Enabled = false

	m, err := NewModel(chromaball.NewSession(cfg), core.RuntimeConfig{
		ScreenW:  40,
		ScreenH:  12,
		TickRate: 60,
		Seed:     1,
	}, nil)
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	m.now = func() time.Time { return base }
	m.shotDir = t.TempDir()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelTickSchedulesNext(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Fatal("Init returned no tick command")
	}

	m, cmd := update(t, m, TickMsg(base))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if got := m.session.Snapshot().Ticks; got != 1 {
		t.Errorf("ticks = %d, want 1", got)
	}
}

func TestModelHeldKeyExpires(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(base.Add(10*time.Millisecond)))
	if vx := m.session.Snapshot().Player.Vel.X; vx != 10 {
		t.Fatalf("vel.x = %v, want 10", vx)
	}

	// No repeat arrived, so the key is released.
	m, _ = update(t, m, TickMsg(base.Add(300*time.Millisecond)))
	if vx := m.session.Snapshot().Player.Vel.X; vx != 10 {
		t.Errorf("vel.x = %v, want 10 after release", vx)
	}
}

func TestModelResetKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(base))
	m, _ = update(t, m, TickMsg(base.Add(16*time.Millisecond)))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, TickMsg(base.Add(32*time.Millisecond)))
	if got := m.session.Snapshot().Ticks; got != 0 {
		t.Errorf("ticks after reset = %d, want 0", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg(base))
	if !m.State().Paused {
		t.Error("expected paused")
	}
}

func TestModelMouseMovesBall(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, TickMsg(base))

	// 40x11 game cells over a 480x320 raster.
	pos := m.session.Snapshot().Player.Pos
	if math.Abs(pos.X-6) > 1e-9 || math.Abs(pos.Y-320.0/22) > 1e-9 {
		t.Errorf("pos = %+v, want the center of the first cell", pos)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("overlay = %dx%d, want 60x19", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(base))

	view := m.View()
	if !strings.Contains(view, "Life:") || !strings.Contains(view, "Score:") {
		t.Errorf("HUD missing from view:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("help footer missing from view:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(base))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	want := filepath.Join(m.shotDir, "chromaball_20240101_120000.png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}
