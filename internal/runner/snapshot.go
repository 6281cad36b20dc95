package runner

import (
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// PlayerView is the read-only player state handed to the presentation layer.
type PlayerView struct {
	X, Y           float64
	State          PlayerState
	Hitbox         core.Box
	JumpsRemaining int
	Shielded       bool
	MagnetActive   bool
	MagnetTicks    int
	DiedAt         int
}

// Frame is the per-tick summary of a session for rendering.
// It shares no memory with the session.
type Frame struct {
	Tick         int
	Difficulty   core.Difficulty
	Player       PlayerView
	Obstacles    []Obstacle
	Collectibles []Collectible
	Score        int
	Distance     float64
	Speed        float64
	SpeedLevel   float64 // Progress from start to max speed, 0.0 to 1.0
	Alpha        float64 // Fraction of the next step already accumulated
	Paused       bool
}

// Frame captures the current session state.
func (s *Session) Frame() Frame {
	world := s.world.clone()
	p := s.player
	return Frame{
		Tick:       s.clock.Tick(),
		Difficulty: s.difficulty,
		Player: PlayerView{
			X:              p.X(),
			Y:              p.Y(),
			State:          p.State(),
			Hitbox:         p.Hitbox(),
			JumpsRemaining: p.JumpsRemaining(),
			Shielded:       p.Shielded(),
			MagnetActive:   p.MagnetActive(),
			MagnetTicks:    p.MagnetTicks(),
			DiedAt:         p.DiedAt(),
		},
		Obstacles:    world.Obstacles,
		Collectibles: world.Collectibles,
		Score:        s.score.Score(),
		Distance:     s.score.Distance(),
		Speed:        s.speed,
		SpeedLevel:   s.curve.Level(s.speed),
		Alpha:        s.clock.Alpha(),
		Paused:       s.clock.Paused(),
	}
}
