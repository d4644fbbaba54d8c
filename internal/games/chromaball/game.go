// Package chromaball implements the color-matching ball game.
// A ball rolls over a scrolling floor of colored tiles. Every frame the game
// reads the rendered raster back to decide whether the ball sits on floor of
// its own color; it gains score while it does and loses life while it does not.
package chromaball

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/chromaball/internal/config"
	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/random"
	"github.com/vovakirdan/chromaball/internal/raster"
	"github.com/vovakirdan/chromaball/internal/sampler"
)

// Game owns the raster and the rules. The per-frame data lives in State.
type Game struct {
	cfg        config.ChromaConfig
	surface    *raster.Surface
	sampler    *sampler.Sampler
	rng        random.Provider
	difficulty *config.DifficultyManager
	palette    palette
}

// New creates a game drawing into a fresh raster of the configured size.
func New(cfg config.ChromaConfig, rng random.Provider) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := parsePalette(cfg.Palette)
	if err != nil {
		return nil, fmt.Errorf("chromaball: %w", err)
	}

	surface := raster.New(cfg.Raster.Width, cfg.Raster.Height)
	return &Game{
		cfg:        cfg,
		surface:    surface,
		sampler:    sampler.New(surface.Image(), uint8(cfg.Sampler.Tolerance)),
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		palette:    pal,
	}, nil
}

// Surface returns the raster the game draws into.
func (g *Game) Surface() *raster.Surface {
	return g.surface
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.ChromaConfig {
	return g.cfg
}

// NewState returns the state of a freshly started game.
func (g *Game) NewState() State {
	w := float64(g.cfg.Raster.Width)
	h := float64(g.cfg.Raster.Height)
	pc := g.cfg.Player

	st := State{
		Life:    g.cfg.Life.Start,
		Palette: append([]color.RGBA(nil), g.palette.base...),
		Sampled: sampler.Transparent,
		Phase:   PhasePlaying,
	}

	// Each row is a third of the screen tall; rows past the third start above it.
	cols, rows := g.cfg.Tiles.Columns, g.cfg.Tiles.Rows
	tw, th := w/float64(cols), h/3
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			st.Tiles = append(st.Tiles, Tile{
				X:     float64(i) * tw,
				Y:     h - float64(j)*th,
				W:     tw,
				H:     th,
				Color: random.Pick(g.rng, st.Palette),
			})
		}
	}

	st.Player = Player{
		Pos:      core.Vec{X: w / 2, Y: float64(g.rng.Int(int(h / 2)))},
		Radius:   g.rng.Range(pc.MinRadius, pc.MaxRadius),
		MaxSpeed: core.Vec{X: pc.MaxSpeedX, Y: pc.MaxSpeedY},
		Bounce:   pc.Bounce,
		Color:    random.Pick(g.rng, st.Palette),
	}
	return st
}

// Step advances st by one frame of elapsed seconds and returns the new state.
// It redraws the raster as a side effect.
func (g *Game) Step(st State, in core.InputFrame, elapsed float64) State {
	if in.Has(core.ActionReset) {
		return g.NewState()
	}

	next := st.Clone()

	if in.Has(core.ActionPause) && next.Phase == PhasePlaying {
		next.Paused = !next.Paused
	}
	if next.Paused {
		return next
	}

	if next.Phase == PhaseGameOver {
		g.surface.Fill(g.palette.background)
		return next
	}

	next.Ticks++

	if in.Has(core.ActionChangeColor) {
		g.changeColor(&next)
	}
	g.steer(&next, in)

	if next.Score%g.cfg.Life.RecolorEvery == 0 {
		next.Player.Color = random.Pick(g.rng, next.Palette)
	}

	g.surface.Clear()
	g.advanceTiles(&next)

	p := &next.Player
	amountBefore := g.sampler.ColorAmount(sampler.RegionAround(p.Pos.X, p.Pos.Y, p.Radius), next.Sampled)

	g.bounce(p)
	p.Pos = p.Pos.Add(p.Vel.Scale(elapsed))
	g.surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color, 1)

	next.Sampled = g.sampler.PointColor(p.Pos.X+p.Radius/2, p.Pos.Y+p.Radius/2)
	amountMax := g.sampler.ColorAmount(sampler.RegionAround(p.Pos.X, p.Pos.Y, p.Radius), next.Sampled)

	next.Mismatch = amountBefore < amountMax-g.cfg.Sampler.MismatchMargin
	if next.Mismatch {
		alpha := 0.8 / (1 + g.rng.Range(0, 50)/100)
		g.surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius/3, g.palette.highlight, alpha)

		penalty := g.rng.Float() / (g.cfg.Life.PenaltyBase - float64(len(next.Palette)))
		penalty *= g.difficulty.PenaltyFactor(next.Score, next.Ticks)
		next.Life = math.Max(next.Life-penalty, 0)
	} else {
		next.Life = math.Min(g.cfg.Life.Max, next.Life+g.rng.Float()*g.cfg.Life.RecoverMax)
		next.Score++
		g.palette.unlockColors(&next)
	}

	if next.Life <= 0 {
		next.Phase = PhaseGameOver
	}
	return next
}

// changeColor buys a new ball color if there is enough life to pay for it.
func (g *Game) changeColor(st *State) {
	lc := g.cfg.Life
	cost := lc.ChangeCost
	if len(st.Palette) > lc.LargePalette {
		cost = lc.ChangeCostLarge
	}
	lost := g.rng.Range(cost[0], cost[1])
	if st.Life > lost {
		st.Player.Color = random.Pick(g.rng, st.Palette)
		st.Life -= lost
	}
}

// steer applies held directions and the pointer to the ball.
func (g *Game) steer(st *State, in core.InputFrame) {
	p := &st.Player
	accel := g.cfg.Player.Accel

	if in.Has(core.ActionUp) {
		p.Vel.Y = math.Max(p.Vel.Y-accel, -p.MaxSpeed.Y)
	}
	if in.Has(core.ActionDown) {
		p.Vel.Y = math.Min(p.Vel.Y+accel, p.MaxSpeed.Y)
	}
	if in.Has(core.ActionLeft) {
		p.Vel.X = math.Max(p.Vel.X-accel, -p.MaxSpeed.X)
	}
	if in.Has(core.ActionRight) {
		p.Vel.X = math.Min(p.Vel.X+accel, p.MaxSpeed.X)
	}
	if in.HasPointer {
		p.Pos = in.Pointer
	}
}

// advanceTiles draws every tile at its current position, then scrolls it.
// Tiles that leave the bottom restart at the farthest row with a new color.
func (g *Game) advanceTiles(st *State) {
	h := float64(g.cfg.Raster.Height)
	speed := g.tileSpeed(st.Score) * g.difficulty.SpeedFactor(st.Score, st.Ticks)

	for i := range st.Tiles {
		t := &st.Tiles[i]
		g.surface.FillRect(t.X, t.Y, t.W, t.H, t.Color, 1)
		t.Y += speed
		st.FarthestTile = math.Min(st.FarthestTile, t.Y)
		if t.Y > h {
			t.Y = st.FarthestTile
			t.Color = random.Pick(g.rng, st.Palette)
		}
	}
}

// tileSpeed returns the scroll speed in pixels per frame before difficulty scaling.
func (g *Game) tileSpeed(score int) float64 {
	tc := g.cfg.Tiles
	if score < tc.SlowUntil {
		return tc.BaseSpeed
	}
	return math.Max(tc.BaseSpeed, float64(score)/tc.SpeedDivisor)
}

// bounce reflects the ball off the raster edges while it still moves outward.
func (g *Game) bounce(p *Player) {
	w := float64(g.cfg.Raster.Width)
	h := float64(g.cfg.Raster.Height)

	if (p.Pos.X-p.Radius < 0 && p.Vel.X < 0) || (p.Pos.X+p.Radius > w && p.Vel.X > 0) {
		p.Vel.X = -p.Vel.X * p.Bounce
	}
	if (p.Pos.Y-p.Radius < 0 && p.Vel.Y < 0) || (p.Pos.Y+p.Radius > h && p.Vel.Y > 0) {
		p.Vel.Y = -p.Vel.Y * p.Bounce
	}
}

// RenderHUD draws the text overlay for st. The raster itself is drawn by Step.
func (g *Game) RenderHUD(st State, dst *core.Screen) {
	dst.Clear()

	if st.Phase == PhaseGameOver {
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d", st.Score), "Esc to restart")
		return
	}

	lifeColor := core.ColorHUD
	if st.Life < 25 {
		lifeColor = core.ColorWarning
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Life: %d", int(st.Life)), lifeColor)
	dst.DrawTextRight(dst.Width()-1, 0, fmt.Sprintf("Score: %d", st.Score), core.ColorHUD)

	if st.Paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a framed message box in the middle of dst. The title
// sits on the first row and lines follow after a blank row.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorTitle)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorTitle)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len(l))/2, box.Y+3+i, l, core.ColorMuted)
	}
}
