// shooter is a real-time arena shooter that runs in the terminal, in a
// desktop window, or headless.
//
// Usage:
//
//	shooter play             - Play in the terminal
//	shooter window           - Play in a desktop window
//	shooter simulate         - Run a deterministic headless simulation
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.shooter/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible spawns
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
//
// Flag defaults may also come from SHOOTER_* variables or a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-shooter/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// .env must be loaded before flag defaults are read from the environment
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shooter",
		Short: "Arena Shooter - dodge and shoot in a 512x480 arena",
		Long: `Arena Shooter is a small real-time arcade game: move around the arena,
fire in three directions, and avoid the enemies that arrive faster the
longer you survive.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless simulation with an autopilot
  config    - Print the effective configuration

Examples:
  shooter play
  shooter window --seed 42
  shooter simulate --frames 3600 --seed 7
  shooter config --defaults > configs/shooter.yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", config.Env(config.EnvConfigPath, ""), "Path to config YAML")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", config.EnvInt64(config.EnvSeed, 0), "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.Env(config.EnvLogLevel, "info"), "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", config.Env(config.EnvLogFile, ""), "Write logs to this file")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newWindowCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// loadConfig loads the configuration selected by the global flags.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closeFn, nil
}
