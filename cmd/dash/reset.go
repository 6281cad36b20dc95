package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagKeepHistory bool

var resetScoresCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Forget best scores and run history",
	Long: `Reset the best score of every difficulty to zero and delete the run
history database rows.

Examples:
  dash reset-scores
  dash reset-scores --keep-history`,
	Args: cobra.NoArgs,
	RunE: runResetScores,
}

func init() {
	resetScoresCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "Only reset best scores")
}

func runResetScores(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	scores := openScores(logger)
	if err := scores.Reset(); err != nil {
		return fmt.Errorf("resetting best scores: %w", err)
	}
	fmt.Println("Best scores reset.")

	if flagKeepHistory {
		return nil
	}
	history := openHistory(logger)
	if history == nil {
		return fmt.Errorf("run history database %s is unavailable", flagDBPath)
	}
	defer history.Close()
	if err := history.ClearRuns(""); err != nil {
		return err
	}
	fmt.Println("Run history cleared.")
	return nil
}
