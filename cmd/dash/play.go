package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/game"
	"github.com/vovakirdan/unicorn-dash/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Unicorn Dash",
	Long: `Start the game at the difficulty menu, or straight into a run with
--difficulty.

Controls:
  Space/Up/W   - Jump (press again in the air to double jump)
  Down/S       - Duck
  P            - Pause
  M/Esc        - Back to menu
  R/Enter      - Restart (after game over)
  1/2/3        - Easy/Normal/Hard
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  dash play
  dash play --difficulty easy
  dash play --seed 42 --no-save
  dash play --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu: easy, normal or hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logOut, closeLog := openLogFile()
	defer closeLog()
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var start core.Difficulty
	if flagDifficulty != "" {
		if start, err = core.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	scores := openScores(logger)
	opts := game.Options{
		Config: cfg,
		Scores: scores,
		Logger: logger,
		Seed:   flagSeed,
	}
	if history := openHistory(logger); history != nil {
		defer history.Close()
		opts.Recorder = history
	}

	machine := game.New(opts)
	if flagDifficulty != "" {
		machine.Handle(core.DifficultySelected(start))
	}

	screenshotDir := ""
	if dir := config.AppDir(); dir != "" {
		screenshotDir = filepath.Join(dir, "screenshots")
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "width", width, "height", height)
	runErr := tui.Run(machine, tui.Options{
		FPS:           flagFPS,
		Width:         width,
		Height:        height,
		WorldWidth:    cfg.Runtime.ViewportWidth,
		ScreenshotDir: screenshotDir,
	})

	// A quit from inside the game has already flushed; this covers ctrl+c
	// paths that end the program without a Quit intent.
	if err := scores.Flush(); err != nil {
		logger.Warn("could not save high scores", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("game error: %w", runErr)
	}
	return nil
}
