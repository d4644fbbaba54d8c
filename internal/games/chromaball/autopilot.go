package chromaball

import (
	"math"

	"github.com/vovakirdan/chromaball/internal/config"
	"github.com/vovakirdan/chromaball/internal/core"
)

// Autopilot plays the game without a human. It steers the ball toward the
// closest visible tile that has the ball's color, and buys a new color when
// no such tile is on screen. It is deterministic.
type Autopilot struct {
	width, height float64
	accel         float64
	lastBuy       int

	// MinLife is the life the autopilot keeps in reserve when buying colors.
	MinLife float64
	// Cooldown is the number of ticks between two color purchases.
	Cooldown int
}

// NewAutopilot creates an autopilot for games built from cfg.
func NewAutopilot(cfg config.ChromaConfig) *Autopilot {
	return &Autopilot{
		width:    float64(cfg.Raster.Width),
		height:   float64(cfg.Raster.Height),
		accel:    cfg.Player.Accel,
		lastBuy:  math.MinInt / 2,
		MinLife:  40,
		Cooldown: 30,
	}
}

// Decide returns the input for the next frame.
func (a *Autopilot) Decide(st State) core.InputFrame {
	in := core.NewInputFrame()
	if st.Phase == PhaseGameOver || st.Paused {
		return in
	}

	p := st.Player
	target, ok := a.target(st)
	if !ok {
		if st.Life > a.MinLife && st.Ticks-a.lastBuy >= a.Cooldown {
			in.Set(core.ActionChangeColor)
			a.lastBuy = st.Ticks
		}
		target = core.Vec{X: a.width / 2, Y: a.height / 2}
	}

	a.axis(&in, target.X-p.Pos.X, p.Vel.X, p.MaxSpeed.X, core.ActionLeft, core.ActionRight)
	a.axis(&in, target.Y-p.Pos.Y, p.Vel.Y, p.MaxSpeed.Y, core.ActionUp, core.ActionDown)
	return in
}

// target returns the center of the nearest on-screen tile matching the ball.
func (a *Autopilot) target(st State) (core.Vec, bool) {
	p := st.Player
	best := math.Inf(1)
	var out core.Vec
	found := false

	for _, t := range st.Tiles {
		if t.Color != p.Color || t.Y+t.H <= 0 || t.Y >= a.height {
			continue
		}
		// Aim at the visible part of the tile, which keeps scrolling down.
		top := math.Max(t.Y, 0)
		bottom := math.Min(t.Y+t.H, a.height)
		c := core.Vec{X: t.X + t.W/2, Y: (top + bottom) / 2}
		if d := c.Sub(p.Pos).Len(); d < best {
			best, out, found = d, c, true
		}
	}
	return out, found
}

// axis presses neg or pos so the velocity approaches one proportional to the
// remaining distance.
func (a *Autopilot) axis(in *core.InputFrame, dist, vel, max float64, neg, pos core.Action) {
	want := core.ClampF(dist*2, -max, max)
	switch {
	case vel < want-a.accel/2:
		in.Set(pos)
	case vel > want+a.accel/2:
		in.Set(neg)
	}
}
