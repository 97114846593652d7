package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-shooter/internal/core"
	"github.com/vovakirdan/arena-shooter/internal/platform/tui"
)

var flagFPS int

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play the arena shooter in the terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter/R      - Play again (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Logs are discarded unless --log-file is given, since the game owns the screen.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate")
	return cmd
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.FrameRate = flagFPS
	rt.Seed = flagSeed

	logger.Info("starting terminal session", "width", rt.ScreenW, "height", rt.ScreenH, "fps", rt.FrameRate, "seed", rt.Seed)
	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  logger,
	})
}
