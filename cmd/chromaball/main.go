// chromaball is a color-matching ball game for the terminal.
//
// Usage:
//
//	chromaball play          - Play in this terminal
//	chromaball serve         - Start SSH server for remote play
//	chromaball simulate      - Run a headless game with the autopilot
//	chromaball palette       - Show the floor palette and its unlocks
//	chromaball config        - Print the default or resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromaball/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chromaball",
	Short: "Chromaball - keep the ball on tiles of its own color",
	Long: `Chromaball is a terminal arcade game. A ball rolls over a scrolling
floor of colored tiles. Keep it on tiles of its own color to score; every
frame it spends on the wrong color costs life.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run a headless game with the autopilot
  palette   - Show the floor palette
  config    - Print configuration

Examples:
  chromaball play
  chromaball play --difficulty hard
  chromaball serve --ssh :2222
  chromaball simulate --seed 42 --frames 6000`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config selected by the global flags and applies
// the difficulty preset.
func loadGameConfig() (config.ChromaConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.ChromaConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ChromaConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// logLevel parses the --log-level flag.
func logLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid --log-level: %w", err)
	}
	return level, nil
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := logLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
