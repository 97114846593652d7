package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-shooter/internal/config"
)

var flagDefaults bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with, as YAML.

With --defaults, print the built-in defaults file instead, which is a
good starting point for ~/.shooter/configs/shooter.yaml.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
	cmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
	return cmd
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
