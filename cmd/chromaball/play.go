package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chromaball/internal/core"
	"github.com/vovakirdan/chromaball/internal/games/chromaball"
	"github.com/vovakirdan/chromaball/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Accelerate (hold)
  Space        - Buy a new ball color (costs life)
  Esc/R        - Restart
  P            - Pause
  Mouse drag   - Move the ball; double click buys a new color
  Ctrl+S       - Save a PNG screenshot to ~/.chromaball/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, lenient color matching
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, strict color matching
  fixed  - No progression, stays at config's initial level

Examples:
  chromaball play
  chromaball play --difficulty easy
  chromaball play --config ./my-chromaball.yaml
  chromaball play --log-file /tmp/chromaball.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playGame() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "chromaball")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if runErr := tui.Run(chromaball.NewSession(gameCfg), cfg, logger); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
