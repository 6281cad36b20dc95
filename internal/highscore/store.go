// Package highscore keeps the best score per difficulty and persists it
// across runs. Persistence problems never block play: a store that cannot
// read or write keeps working in memory.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// ErrPersistenceUnavailable reports that the backing store could not be read
// or written. The in-memory scores remain valid.
var ErrPersistenceUnavailable = errors.New("high-score persistence unavailable")

// Backend reads and writes the encoded score table.
type Backend interface {
	// Load returns the stored payload, or nil if nothing has been saved yet.
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store maps difficulty to best score. Load it once at process start; it
// saves itself whenever a run sets a new best.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	logger  *log.Logger
	best    map[core.Difficulty]int
	dirty   bool
}

// New creates a store with all-zero scores. A nil backend keeps the store
// in memory only.
func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		backend: backend,
		logger:  logger,
		best:    zeroScores(),
	}
}

func zeroScores() map[core.Difficulty]int {
	m := make(map[core.Difficulty]int, len(core.Difficulties))
	for _, d := range core.Difficulties {
		m[d] = 0
	}
	return m
}

// Load reads the stored scores. A missing, unreadable or malformed payload
// leaves every difficulty at zero; the returned error is for diagnostics only
// and wraps ErrPersistenceUnavailable.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.best = zeroScores()
	s.dirty = false
	if s.backend == nil {
		return nil
	}

	data, err := s.backend.Load()
	if err != nil {
		return fmt.Errorf("highscore: cannot load scores: %v: %w", err, ErrPersistenceUnavailable)
	}
	if len(data) == 0 {
		return nil
	}

	var raw map[string]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("highscore: corrupt score table: %v: %w", err, ErrPersistenceUnavailable)
	}
	for name, score := range raw {
		d, err := core.ParseDifficulty(name)
		if err != nil || score < 0 {
			s.logger.Warn("ignoring high-score entry", "difficulty", name, "score", score)
			continue
		}
		s.best[d] = score
	}
	s.logger.Debug("high scores loaded", "easy", s.best[core.DifficultyEasy],
		"normal", s.best[core.DifficultyNormal], "hard", s.best[core.DifficultyHard])
	return nil
}

// Best returns the best score for d.
func (s *Store) Best(d core.Difficulty) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best[d]
}

// All returns a copy of every best score.
func (s *Store) All() map[core.Difficulty]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[core.Difficulty]int, len(s.best))
	for d, v := range s.best {
		out[d] = v
	}
	return out
}

// Submit records score for d if it strictly beats the stored best, then
// persists. It reports whether the score is a new best. A save error does not
// undo the new best; the store stays dirty so Flush can retry.
func (s *Store) Submit(d core.Difficulty, score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !d.Valid() || score <= s.best[d] {
		return false, nil
	}
	prev := s.best[d]
	s.best[d] = score
	s.dirty = true
	s.logger.Info("new high score", "difficulty", d.String(), "score", score, "previous", prev)

	return true, s.saveLocked()
}

// Save writes the current scores to the backend.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// Flush saves only if there are unsaved changes.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.saveLocked()
}

// Dirty reports whether the in-memory scores differ from the saved ones.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Reset zeroes every difficulty and saves.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = zeroScores()
	s.dirty = true
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if s.backend == nil {
		return nil
	}

	raw := make(map[string]int, len(s.best))
	for d, v := range s.best {
		raw[d.String()] = v
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode scores: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		s.logger.Warn("could not save high scores", "error", err)
		return fmt.Errorf("highscore: cannot save scores: %v: %w", err, ErrPersistenceUnavailable)
	}
	s.dirty = false
	return nil
}
