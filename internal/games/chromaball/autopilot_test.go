package chromaball

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/chromaball/internal/core"
)

func TestAutopilotSteersToMatchingTile(t *testing.T) {
	g := newTestGame(t, 1)
	a := NewAutopilot(g.Config())

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	st := g.NewState()
	st.Player.Pos = core.Vec{X: 30, Y: 60}
	st.Player.Vel = core.Vec{}
	st.Player.Color = red
	st.Tiles = []Tile{
		{X: 0, Y: 40, W: 60, H: 40, Color: blue},
		{X: 120, Y: 40, W: 60, H: 40, Color: red},
	}

	in := a.Decide(st)
	if !in.Has(core.ActionRight) || in.Has(core.ActionLeft) {
		t.Errorf("expected Right, got %v", in.Actions)
	}
	if in.Has(core.ActionChangeColor) {
		t.Error("should not buy a color while a match is visible")
	}
}

func TestAutopilotBrakesOnTarget(t *testing.T) {
	g := newTestGame(t, 1)
	a := NewAutopilot(g.Config())

	red := color.RGBA{R: 255, A: 255}
	st := g.NewState()
	st.Player.Pos = core.Vec{X: 150, Y: 60}
	st.Player.Vel = core.Vec{X: 100}
	st.Player.Color = red
	st.Tiles = []Tile{{X: 120, Y: 40, W: 60, H: 40, Color: red}}

	in := a.Decide(st)
	if !in.Has(core.ActionLeft) {
		t.Errorf("expected Left to brake, got %v", in.Actions)
	}
}

func TestAutopilotBuysColorWithoutMatch(t *testing.T) {
	g := newTestGame(t, 1)
	a := NewAutopilot(g.Config())

	st := g.NewState()
	st.Player.Color = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	st.Life = 80
	if in := a.Decide(st); !in.Has(core.ActionChangeColor) {
		t.Error("expected ChangeColor")
	}

	st.Ticks += 5
	if in := a.Decide(st); in.Has(core.ActionChangeColor) {
		t.Error("should wait for the cooldown")
	}

	st.Ticks += a.Cooldown
	st.Life = 10
	if in := a.Decide(st); in.Has(core.ActionChangeColor) {
		t.Error("should keep life in reserve")
	}

	st.Life = 80
	if in := a.Decide(st); !in.Has(core.ActionChangeColor) {
		t.Error("expected ChangeColor after the cooldown")
	}
}

func TestAutopilotIdleWhenOver(t *testing.T) {
	g := newTestGame(t, 1)
	a := NewAutopilot(g.Config())

	st := g.NewState()
	st.Phase = PhaseGameOver
	if in := a.Decide(st); len(in.Actions) != 0 {
		t.Errorf("expected no input, got %v", in.Actions)
	}
}

func TestAutopilotOutlivesIdle(t *testing.T) {
	idle := newTestGame(t, 31)
	auto := newTestGame(t, 31)
	a := NewAutopilot(auto.Config())

	si, sa := idle.NewState(), auto.NewState()
	none := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		si = idle.Step(si, none, frameTime)
		sa = auto.Step(sa, a.Decide(sa), frameTime)
	}
	if sa.Phase == PhaseGameOver && si.Phase == PhasePlaying {
		t.Errorf("autopilot lost while idle survived: auto=%+v idle=%+v", sa.Summary(), si.Summary())
	}
}
