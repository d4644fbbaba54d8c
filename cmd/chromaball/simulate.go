package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/frame"
	"github.com/vovakirdan/chromaball/internal/games/chromaball"
)

var (
	flagFrames   int
	flagRealtime bool
	flagIdle     bool
	flagPNG      string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with the autopilot",
	Long: `Run a game without a terminal UI and log a summary.

The autopilot steers toward tiles of the ball's color. Runs are
reproducible: the same seed, config and flags give the same result.
By default frames are stepped as fast as possible on a simulated clock;
--realtime drives them from a real ticker at --fps.

Examples:
  chromaball simulate --seed 42
  chromaball simulate --seed 42 --frames 10000 --difficulty hard
  chromaball simulate --idle --png /tmp/last-frame.png
  chromaball simulate --realtime --frames 600 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to run (stops early on game over)")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Drive frames from a real ticker")
	simulateCmd.Flags().BoolVar(&flagIdle, "idle", false, "Send no input instead of using the autopilot")
	simulateCmd.Flags().StringVar(&flagPNG, "png", "", "Save the last frame to this image file")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "chromaball-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := simulate(logger); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func simulate(logger *log.Logger) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}

	session := chromaball.NewSession(gameCfg)
	if err := session.Reset(core.RuntimeConfig{TickRate: fps, Seed: flagSeed}); err != nil {
		return err
	}
	logger.Info("simulation started",
		"seed", session.Runtime().Seed,
		"frames", flagFrames,
		"realtime", flagRealtime,
		"autopilot", !flagIdle,
	)

	var pilot *chromaball.Autopilot
	if !flagIdle {
		pilot = chromaball.NewAutopilot(gameCfg)
	}

	var loop *frame.Loop
	done := false
	step := func(elapsed float64) {
		in := core.NewInputFrame()
		if pilot != nil {
			in = pilot.Decide(session.Snapshot())
		}
		res := session.Step(in, elapsed)

		n := int(loop.Frames()) + 1
		if n%(fps*10) == 0 {
			logger.Debug("progress", "frame", n, "score", res.State.Score, "life", fmt.Sprintf("%.1f", res.State.Life))
		}
		if res.State.GameOver || n >= flagFrames {
			done = true
			loop.Stop()
		}
	}

	start := time.Now()
	if flagRealtime {
		loop = frame.NewLoop(frame.NewTicker(fps))
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := loop.Run(ctx, step); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		// Simulated clock: every frame is exactly one tick apart.
		loop = frame.NewLoop(nil)
		clock := time.Unix(0, 0)
		interval := time.Second / time.Duration(fps)
		for !done {
			loop.Step(clock, step)
			clock = clock.Add(interval)
		}
	}

	st := session.Snapshot()
	logger.Info("simulation finished",
		"frames", loop.Frames(),
		"score", st.Score,
		"life", fmt.Sprintf("%.1f", st.Life),
		"phase", st.Phase,
		"palette", len(st.Palette),
		"took", time.Since(start).Round(time.Millisecond),
	)

	if flagPNG != "" {
		if err := session.Surface().Save(flagPNG); err != nil {
			return fmt.Errorf("saving frame: %w", err)
		}
		logger.Info("frame saved", "path", flagPNG)
	}
	return nil
}
