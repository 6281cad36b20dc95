package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/platform/tui"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show the best recorded runs",
	Long: `Display the best score and the top runs for each difficulty, or only
for the one given.

Examples:
  dash scores
  dash scores hard
  dash scores --limit 25
  dash scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to show per difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	difficulties := core.Difficulties
	start := core.DifficultyNormal
	if len(args) == 1 {
		d, err := core.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		difficulties = []core.Difficulty{d}
		start = d
	}

	scores := openScores(logger)
	history := openHistory(logger)
	if history != nil {
		defer history.Close()
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var runs tui.RunHistory
		if history != nil {
			runs = history
		}
		return tui.RunScoreboard(runs, scores.All(), start, width, height)
	}

	for i, d := range difficulties {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s - best %d\n", d.Title(), scores.Best(d))

		if history == nil {
			continue
		}
		runs, err := history.TopRuns(d.String(), flagLimit)
		if err != nil {
			return fmt.Errorf("retrieving runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("  No runs recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-5s  %-11s  %s\n", "Rank", "Score", "Distance", "Stars", "Coins", "Hit by", "Date")
		fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %-5s  %-11s  %s\n", "----", "-----", "--------", "-----", "-----", "------", "----")
		for j, r := range runs {
			fmt.Printf("  %-4d  %-8d  %-8.0f  %-5d  %-5d  %-11s  %s\n",
				j+1, r.Score, r.Distance, r.Stars, r.Coins, r.KilledBy, r.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	return nil
}
