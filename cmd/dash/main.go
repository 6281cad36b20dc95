// dash is Unicorn Dash, an endless runner for the terminal.
//
// Usage:
//
//	dash                     - Open the difficulty menu and play
//	dash play                - Same as dash, optionally with --difficulty
//	dash scores [difficulty] - Show the best recorded runs
//	dash config              - Print the effective configuration as YAML
//	dash reset-scores        - Forget best scores and run history
//
// Global flags:
//
//	--fps <rate>        - Redraw rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Run history database (default: ~/.unicorn-dash/runs.db)
//	--config <path>     - Custom configuration YAML
//	--log-level <level> - debug, info, warn or error
//	--no-save           - Keep best scores in memory only
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/highscore"
	"github.com/vovakirdan/unicorn-dash/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagNoSave     bool
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Unicorn Dash - an endless runner in your terminal",
	Long: `Unicorn Dash is an endless runner: jump over rocks and crystals,
duck under dragons, collect stars and coins, and pick up shields and magnets.

Available commands:
  play          - Play (the default when no command is given)
  scores        - View the best recorded runs
  config        - Print the effective configuration
  reset-scores  - Forget best scores and run history

Examples:
  dash
  dash play --difficulty hard
  dash scores easy
  dash config > ~/.unicorn-dash/configs/dash.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDirName+"/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", false, "Keep best scores in memory only")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu: easy, normal or hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetScoresCmd)
}

// newLogger creates the process logger. Interactive commands log to a file
// because the terminal belongs to the UI.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.unicorn-dash/dash.log for appending. It falls back to
// io.Discard when the directory is not writable.
func openLogFile() (io.Writer, func()) {
	dir := config.AppDir()
	if dir == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dash.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// loadConfig loads and validates the configuration. An invalid configuration
// is fatal before any game starts.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}

// openScores opens and loads the best-score store. Failures degrade to an
// in-memory store; they never stop the game.
func openScores(logger *log.Logger) *highscore.Store {
	if flagNoSave {
		logger.Info("high scores kept in memory only (--no-save)")
		store := highscore.New(highscore.NewMemoryBackend(nil), logger)
		//nolint:errcheck // Memory backend cannot fail
		store.Load()
		return store
	}

	backend, err := highscore.OpenGdata(highscore.DefaultAppName)
	if err != nil {
		logger.Warn("high scores will not persist", "error", err)
	}
	store := highscore.New(backend, logger)
	if err := store.Load(); err != nil {
		logger.Warn("starting with empty high scores", "error", err)
	}
	return store
}

// openHistory opens the run history database, or returns nil when it is
// unavailable.
func openHistory(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
