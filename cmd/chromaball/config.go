package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromaball/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print configuration",
	Long: `Print the built-in default configuration, ready to be saved as
~/.chromaball/configs/chromaball.yaml or ./configs/chromaball.yaml.

With --resolved, print the configuration the game would actually use
after applying --config and --difficulty.

Examples:
  chromaball config > configs/chromaball.yaml
  chromaball config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded config with presets applied")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := writeConfig(os.Stdout, flagResolved); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig writes the embedded defaults, or the loaded config when resolved
// is set, to w.
func writeConfig(w io.Writer, resolved bool) error {
	out := config.DefaultYAML()
	if resolved {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		if out, err = config.Marshal(cfg); err != nil {
			return err
		}
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
