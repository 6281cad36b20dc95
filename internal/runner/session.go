package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// RunStats summarizes a run for high scores and run history.
type RunStats struct {
	Difficulty  core.Difficulty
	Seed        int64
	Score       int
	Distance    float64
	Stars       int
	Coins       int
	ShieldsUsed int
	Ticks       int
	KilledBy    string // Obstacle kind of the lethal hit, empty while alive
}

// Session owns one run: the player, live entities, score, speed and clock.
// It is driven by a single goroutine; nothing else may mutate it.
type Session struct {
	cfg        config.Config
	difficulty core.Difficulty
	seed       int64
	logger     *log.Logger

	clock    *Clock
	curve    config.SpeedCurve
	player   *Player
	spawner  *Spawner
	resolver CollisionResolver
	score    *ScoreTracker

	world       World
	speed       float64
	shieldsUsed int
	killedBy    string
	onSpawn     func(SpawnEvent)
}

// NewSession creates a run on difficulty d. The same seed and intents always
// produce the same run. A nil logger discards diagnostics.
func NewSession(cfg config.Config, d core.Difficulty, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	preset := cfg.Difficulties.For(d)
	curve := config.NewSpeedCurve(preset)

	return &Session{
		cfg:        cfg,
		difficulty: d,
		seed:       seed,
		logger:     logger.With("difficulty", d.String()),
		clock:      NewClock(cfg.Runtime.TickRate, time.Duration(cfg.Runtime.MaxFrameMs)*time.Millisecond),
		curve:      curve,
		player:     NewPlayer(cfg.Player, preset),
		spawner:    NewSpawner(cfg, seed),
		resolver:   NewCollisionResolver(cfg.Collectibles),
		score:      NewScoreTracker(cfg.Scoring.PointsPerDistance),
		speed:      curve.Start(),
	}
}

// OnSpawn registers a callback invoked for every obstacle placement.
func (s *Session) OnSpawn(fn func(SpawnEvent)) {
	s.onSpawn = fn
}

// JumpPressed forwards a jump to the player.
func (s *Session) JumpPressed() {
	s.player.JumpPressed()
}

// DuckHeld forwards the duck level to the player.
func (s *Session) DuckHeld(held bool) {
	s.player.DuckHeld(held)
}

// Pause freezes the clock; no entity moves and no score accrues.
func (s *Session) Pause() { s.clock.Pause() }

// Resume unfreezes the clock.
func (s *Session) Resume() { s.clock.Resume() }

// Paused reports whether the clock is frozen.
func (s *Session) Paused() bool { return s.clock.Paused() }

// Advance feeds wall-clock time to the clock and runs every fixed step that
// came due. It returns the number of steps run.
func (s *Session) Advance(elapsed time.Duration) int {
	steps := s.clock.Accumulate(elapsed)
	ran := 0
	for ; ran < steps && !s.Over(); ran++ {
		s.Step()
	}
	return ran
}

// Step runs exactly one tick: clock, spawner, player, collisions, score.
// While the player is dying, the world is frozen and only the tumble runs.
func (s *Session) Step() {
	if s.Over() {
		return
	}
	tick := s.clock.Advance()

	if !s.player.Alive() {
		s.player.Tick(1)
		if s.Over() {
			s.logger.Debug("run over", "tick", tick, "score", s.score.Score())
		}
		return
	}

	s.speed = s.curve.Next(s.speed, s.score.Score(), tick)

	s.runSubsystem("spawner", tick, func(w *World) error {
		events, err := s.spawner.Update(w, s.speed, s.score.Score())
		if err != nil {
			return err
		}
		for _, ev := range events {
			if ev.Gap < ev.Required {
				return fmt.Errorf("spawner: gap %.1f below required %.1f", ev.Gap, ev.Required)
			}
			if s.onSpawn != nil {
				s.onSpawn(ev)
			}
		}
		return nil
	})

	s.player.Tick(1)

	s.runSubsystem("collision", tick, func(w *World) error {
		res, err := s.resolver.Resolve(s.player, w, s.score, tick)
		if err != nil {
			return err
		}
		s.shieldsUsed += res.ShieldsUsed
		for _, c := range res.Collected {
			s.logger.Debug("collected", "tick", tick, "kind", c.Kind.String())
		}
		if res.ShieldsUsed > 0 {
			s.logger.Debug("shield absorbed hit", "tick", tick)
		}
		if res.Killed {
			s.killedBy = res.Hit.Kind.String()
			s.logger.Debug("lethal hit", "tick", tick, "obstacle", s.killedBy, "score", s.score.Score())
		}
		return nil
	})

	s.runSubsystem("score", tick, func(*World) error {
		if s.player.Alive() {
			s.score.AddDistance(s.speed)
		}
		return nil
	})
}

// runSubsystem runs fn against a copy of the world and commits it on success.
// On error or panic the subsystem's effects for this tick are discarded and a
// diagnostic is logged; the run continues.
func (s *Session) runSubsystem(name string, tick int, fn func(w *World) error) {
	world := s.world.clone()
	player := *s.player
	score := *s.score
	spawner := *s.spawner
	shieldsUsed := s.shieldsUsed

	rollback := func(reason any) {
		*s.player = player
		*s.score = score
		*s.spawner = spawner // Placement state only; the RNG keeps its position
		s.shieldsUsed = shieldsUsed
		s.logger.Error("subsystem skipped for tick", "subsystem", name, "tick", tick, "reason", reason)
	}

	defer func() {
		if r := recover(); r != nil {
			rollback(r)
		}
	}()

	if err := fn(&world); err != nil {
		rollback(err)
		return
	}
	s.world = world
}

// Over reports whether the run has finished (the player is dead).
func (s *Session) Over() bool {
	return s.player.State() == StateDead
}

// Dying reports whether the player has been hit and is tumbling.
func (s *Session) Dying() bool {
	return s.player.State() == StateDying
}

// Score returns the current score.
func (s *Session) Score() int { return s.score.Score() }

// Speed returns the current world speed.
func (s *Session) Speed() float64 { return s.speed }

// Tick returns the number of ticks simulated.
func (s *Session) Tick() int { return s.clock.Tick() }

// Difficulty returns the run's difficulty.
func (s *Session) Difficulty() core.Difficulty { return s.difficulty }

// Player returns the player. Callers must not mutate it outside the tick driver.
func (s *Session) Player() *Player { return s.player }

// World returns the live entities. The slices are owned by the session.
func (s *Session) World() *World { return &s.world }

// Stats returns the run summary.
func (s *Session) Stats() RunStats {
	return RunStats{
		Difficulty:  s.difficulty,
		Seed:        s.seed,
		Score:       s.score.Score(),
		Distance:    s.score.Distance(),
		Stars:       s.score.Stars(),
		Coins:       s.score.Coins(),
		ShieldsUsed: s.shieldsUsed,
		Ticks:       s.clock.Tick(),
		KilledBy:    s.killedBy,
	}
}

// SubmitScore offers the run's score to the store.
func (s *Session) SubmitScore(store BestScores) (bool, error) {
	return s.score.Submit(store, s.difficulty)
}
