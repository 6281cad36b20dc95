package game

import (
	"github.com/vovakirdan/unicorn-dash/internal/core"
	"github.com/vovakirdan/unicorn-dash/internal/runner"
)

// Snapshot is everything the presentation layer needs for one frame.
type Snapshot struct {
	State      State
	Difficulty core.Difficulty
	HighScore  int                     // Best score for Difficulty
	HighScores map[core.Difficulty]int // Best score per difficulty, for the menu
	NewBest    bool                    // The last finished run set a new best
	HasRun     bool                    // Frame is valid (any state but Menu)
	Frame      runner.Frame
	LastRun    runner.RunStats // Valid in StateGameOver
	Quit       bool
}

// Snapshot captures the current state. It shares no memory with the machine.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:      m.state,
		Difficulty: m.difficulty,
		NewBest:    m.newBest,
		LastRun:    m.lastRun,
		Quit:       m.quit,
	}
	if m.scores != nil {
		snap.HighScore = m.scores.Best(m.difficulty)
		snap.HighScores = m.scores.All()
	}
	if m.session != nil {
		snap.HasRun = true
		snap.Frame = m.session.Frame()
	}
	return snap
}
