// Package game is the top-level state machine of Unicorn Dash. It owns the
// active run, routes decoded intents to it and settles finished runs with the
// high-score store and the run history.
package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/highscore"
	"github.com/vovakirdan/unicorn-dash/internal/runner"
	"github.com/vovakirdan/unicorn-dash/internal/storage"
)

// State is the top-level game state.
type State string

const (
	StateMenu     State = "menu"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateDying    State = "dying"
	StateGameOver State = "game_over"
)

// RunRecorder appends finished runs to a history log.
// *storage.Store satisfies it.
type RunRecorder interface {
	RecordRun(run storage.Run) (string, error)
}

// Options configures a Machine. Only Config is required.
type Options struct {
	Config   config.Config
	Scores   *highscore.Store // nil keeps no best scores
	Recorder RunRecorder      // nil disables run history
	Logger   *log.Logger      // nil discards diagnostics
	Seed     int64            // 0 = time based, otherwise every run uses this seed
}

// Machine drives Menu, Playing, Paused, Dying and GameOver.
// It is not safe for concurrent use; the front end's update loop owns it.
type Machine struct {
	cfg      config.Config
	scores   *highscore.Store
	recorder RunRecorder
	logger   *log.Logger
	seed     int64

	state      State
	difficulty core.Difficulty
	session    *runner.Session
	lastRun    runner.RunStats
	lastRunID  string
	newBest    bool
	quit       bool
}

// New creates a machine in the menu state with Normal selected.
func New(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		cfg:        opts.Config,
		scores:     opts.Scores,
		recorder:   opts.Recorder,
		logger:     logger,
		seed:       opts.Seed,
		state:      StateMenu,
		difficulty: core.DifficultyNormal,
	}
}

// Handle applies one intent. Intents that mean nothing in the current state
// are dropped with a debug log.
func (m *Machine) Handle(in core.Intent) {
	if in.Kind == core.IntentQuit {
		m.requestQuit()
		return
	}
	if m.quit {
		return
	}

	switch m.state {
	case StateMenu:
		if in.Kind == core.IntentSelectDifficulty {
			m.start(in.Difficulty)
			return
		}

	case StatePlaying:
		switch in.Kind {
		case core.IntentJump:
			m.session.JumpPressed()
			return
		case core.IntentDuck:
			m.session.DuckHeld(in.Held)
			return
		case core.IntentPause:
			m.session.Pause()
			m.state = StatePaused
			m.logger.Debug("paused", "tick", m.session.Tick())
			return
		case core.IntentMenu:
			m.toMenu()
			return
		}

	case StatePaused:
		switch in.Kind {
		case core.IntentPause:
			m.session.Resume()
			m.state = StatePlaying
			m.logger.Debug("resumed", "tick", m.session.Tick())
			return
		case core.IntentDuck:
			// A key released during the pause must not leave the duck stuck.
			if !in.Held {
				m.session.DuckHeld(false)
				return
			}
		case core.IntentMenu:
			m.toMenu()
			return
		}

	case StateGameOver:
		switch in.Kind {
		case core.IntentRestart:
			m.start(m.difficulty)
			return
		case core.IntentSelectDifficulty:
			m.start(in.Difficulty)
			return
		case core.IntentMenu:
			m.toMenu()
			return
		}
	}

	m.logger.Debug("ignoring intent", "intent", in.Kind.String(), "state", string(m.state))
}

// HandleAll applies intents in arrival order.
func (m *Machine) HandleAll(intents []core.Intent) {
	for _, in := range intents {
		m.Handle(in)
	}
}

// Advance feeds elapsed wall time to the active run and returns the number
// of fixed steps simulated. Only Playing and Dying advance.
func (m *Machine) Advance(elapsed time.Duration) int {
	if m.state != StatePlaying && m.state != StateDying {
		return 0
	}
	steps := m.session.Advance(elapsed)
	m.sync()
	return steps
}

// Step runs exactly one fixed step regardless of wall time.
func (m *Machine) Step() {
	if m.state != StatePlaying && m.state != StateDying {
		return
	}
	m.session.Step()
	m.sync()
}

func (m *Machine) sync() {
	switch {
	case m.session.Over():
		m.finish()
	case m.session.Dying() && m.state == StatePlaying:
		m.state = StateDying
		m.logger.Debug("dying", "tick", m.session.Tick(), "score", m.session.Score())
	}
}

func (m *Machine) start(d core.Difficulty) {
	if !d.Valid() {
		m.logger.Debug("ignoring unknown difficulty", "difficulty", int(d))
		return
	}
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.difficulty = d
	m.session = runner.NewSession(m.cfg, d, seed, m.logger)
	m.state = StatePlaying
	m.newBest = false
	m.lastRunID = ""
	m.logger.Info("run started", "difficulty", d.String(), "seed", seed)
}

func (m *Machine) toMenu() {
	m.session = nil
	m.state = StateMenu
}

// finish settles a dead run: best score first, then run history.
// Neither failure stops the game.
func (m *Machine) finish() {
	m.state = StateGameOver
	m.lastRun = m.session.Stats()

	m.newBest = false
	if m.scores != nil {
		improved, err := m.session.SubmitScore(m.scores)
		if err != nil {
			m.logger.Warn("high score kept in memory only", "error", err)
		}
		m.newBest = improved
	}

	if m.recorder != nil {
		id, err := m.recorder.RecordRun(runRecord(m.lastRun, m.newBest))
		if err != nil {
			m.logger.Warn("could not record run", "error", err)
		}
		m.lastRunID = id
	}

	m.logger.Info("run over",
		"difficulty", m.lastRun.Difficulty.String(),
		"score", m.lastRun.Score,
		"ticks", m.lastRun.Ticks,
		"killed_by", m.lastRun.KilledBy,
		"new_best", m.newBest,
	)
}

func runRecord(stats runner.RunStats, newBest bool) storage.Run {
	return storage.Run{
		Difficulty:  stats.Difficulty.String(),
		Seed:        stats.Seed,
		Score:       stats.Score,
		Distance:    stats.Distance,
		Stars:       stats.Stars,
		Coins:       stats.Coins,
		ShieldsUsed: stats.ShieldsUsed,
		Ticks:       stats.Ticks,
		KilledBy:    stats.KilledBy,
		NewBest:     newBest,
	}
}

func (m *Machine) requestQuit() {
	if m.quit {
		return
	}
	m.quit = true
	if m.scores != nil {
		if err := m.scores.Flush(); err != nil {
			m.logger.Warn("could not flush high scores on quit", "error", err)
		}
	}
	m.logger.Info("quit requested", "state", string(m.state))
}

// State returns the current top-level state.
func (m *Machine) State() State { return m.state }

// Difficulty returns the selected difficulty.
func (m *Machine) Difficulty() core.Difficulty { return m.difficulty }

// QuitRequested reports whether Quit has been handled. The process should
// exit with status 0.
func (m *Machine) QuitRequested() bool { return m.quit }

// Session returns the active run, or nil in the menu.
func (m *Machine) Session() *runner.Session { return m.session }

// LastRun returns the summary of the most recently finished run.
func (m *Machine) LastRun() runner.RunStats { return m.lastRun }

// LastRunID returns the run-history id of the last finished run, if recorded.
func (m *Machine) LastRunID() string { return m.lastRunID }
