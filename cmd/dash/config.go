package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-dash/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search order
(--config, ~/.unicorn-dash/configs/dash.yaml, ./configs/dash.yaml, built-in
defaults) and validation. Use the output as a starting point for a custom file.

Examples:
  dash config
  dash config --defaults
  dash config --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
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
	_, err = os.Stdout.Write(data)
	return err
}
