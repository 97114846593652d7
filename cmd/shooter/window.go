package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-shooter/internal/platform/window"
)

func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Play in a desktop window",
		Long: `Play the arena shooter in a desktop window.

Controls:
  Arrows/WASD        - Move
  Space              - Fire
  Enter/R/click      - Play again (after game over)
  Esc                - Quit`,
		Args: cobra.NoArgs,
		RunE: runWindow,
	}
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger.Info("opening window", "title", cfg.Window.Title, "scale", cfg.Window.Scale, "seed", flagSeed)
	return window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
}
