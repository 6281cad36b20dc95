package runner

import (
	"math"

	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// BestScores is the high-score store as seen by a run.
type BestScores interface {
	Best(d core.Difficulty) int
	Submit(d core.Difficulty, score int) (bool, error)
}

// ScoreTracker accumulates distance-based score and collectible bonuses.
// The score never decreases within a run.
type ScoreTracker struct {
	pointsPerDistance float64
	distance          float64
	bonus             int
	stars             int
	coins             int
}

// NewScoreTracker creates a tracker converting distance to points at the given rate.
func NewScoreTracker(pointsPerDistance float64) *ScoreTracker {
	return &ScoreTracker{pointsPerDistance: pointsPerDistance}
}

// AddDistance records distance travelled this tick. Non-positive values are ignored.
func (t *ScoreTracker) AddDistance(d float64) {
	if d > 0 && !math.IsInf(d, 0) {
		t.distance += d
	}
}

// AddBonus credits a collectible bonus.
func (t *ScoreTracker) AddBonus(kind CollectibleKind, points int) {
	if points > 0 {
		t.bonus += points
	}
	switch kind {
	case CollectibleStar:
		t.stars++
	case CollectibleCoin:
		t.coins++
	}
}

// Score returns distance points plus bonuses.
func (t *ScoreTracker) Score() int {
	return int(math.Floor(t.distance*t.pointsPerDistance)) + t.bonus
}

// Distance returns total distance travelled.
func (t *ScoreTracker) Distance() float64 { return t.distance }

// Stars returns the number of stars collected.
func (t *ScoreTracker) Stars() int { return t.stars }

// Coins returns the number of coins collected.
func (t *ScoreTracker) Coins() int { return t.coins }

// Reset zeroes the tracker for a new run.
func (t *ScoreTracker) Reset() {
	t.distance = 0
	t.bonus = 0
	t.stars = 0
	t.coins = 0
}

// Submit offers the final score to the store for difficulty d and reports
// whether it set a new best. The store keeps the new best in memory even when
// persisting fails, so the error is informational.
func (t *ScoreTracker) Submit(store BestScores, d core.Difficulty) (bool, error) {
	if store == nil {
		return false, nil
	}
	return store.Submit(d, t.Score())
}
