package runner

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// scriptedRun plays a session with a fixed jump/duck pattern and returns
// every frame.
func scriptedRun(cfg config.Config, d core.Difficulty, seed int64, ticks int) (*Session, []Frame) {
	s := NewSession(cfg, d, seed, nil)
	frames := make([]Frame, 0, ticks)
	for i := 0; i < ticks && !s.Over(); i++ {
		if i%40 == 0 {
			s.JumpPressed()
		}
		if i%40 == 15 {
			s.JumpPressed()
		}
		s.DuckHeld(i%100 >= 80)
		s.Step()
		frames = append(frames, s.Frame())
	}
	return s, frames
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()

	s1, f1 := scriptedRun(cfg, core.DifficultyNormal, 4242, 3000)
	s2, f2 := scriptedRun(cfg, core.DifficultyNormal, 4242, 3000)

	if !reflect.DeepEqual(s1.Stats(), s2.Stats()) {
		t.Errorf("Determinism failed: stats differ.\nRun1=%+v\nRun2=%+v", s1.Stats(), s2.Stats())
	}
	if !reflect.DeepEqual(f1, f2) {
		t.Error("Determinism failed: frame sequences differ")
	}
}

func TestSessionInvariantsHoldEveryTick(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, d := range core.Difficulties {
		_, frames := scriptedRun(cfg, d, 77, 5000)
		prevScore, prevSpeed := 0, 0.0
		preset := cfg.Difficulties.For(d)

		for _, f := range frames {
			if f.Player.Y < 0 {
				t.Fatalf("%s tick %d: player y = %v below ground", d, f.Tick, f.Player.Y)
			}
			if f.Score < prevScore {
				t.Fatalf("%s tick %d: score decreased %d -> %d", d, f.Tick, prevScore, f.Score)
			}
			if f.Speed < prevSpeed || f.Speed < preset.StartSpeed || f.Speed > preset.MaxSpeed {
				t.Fatalf("%s tick %d: speed %v out of order or range", d, f.Tick, f.Speed)
			}
			prevScore, prevSpeed = f.Score, f.Speed
		}
	}
}

func TestSessionSpawnGapsThroughSession(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyHard, 31, nil)

	var events []SpawnEvent
	s.OnSpawn(func(ev SpawnEvent) { events = append(events, ev) })
	for i := 0; i < 6000; i++ {
		// A fresh shield every tick keeps the run alive through every hit.
		s.player.GrantShield()
		s.Step()
	}
	if !s.player.Alive() {
		t.Fatal("shielded player should survive")
	}

	if len(events) < 20 {
		t.Fatalf("only %d spawns", len(events))
	}
	for _, ev := range events {
		if ev.Gap < cfg.Spawner.ReactionTicks*ev.Speed {
			t.Errorf("gap %.1f below reaction distance at speed %.2f", ev.Gap, ev.Speed)
		}
	}
}

func TestSessionDiesWithoutInput(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyEasy, 1, nil)

	sawDying := false
	var scoreAtDeath int
	for i := 0; i < 20000 && !s.Over(); i++ {
		s.Step()
		if s.Dying() {
			if !sawDying {
				scoreAtDeath = s.Score()
			}
			sawDying = true
			if s.Score() != scoreAtDeath {
				t.Fatal("score must not change while dying")
			}
		}
	}

	if !s.Over() || !sawDying {
		t.Fatalf("expected the run to pass through dying and end, over=%v dying=%v", s.Over(), sawDying)
	}
	stats := s.Stats()
	if stats.KilledBy == "" {
		t.Error("KilledBy should name the lethal obstacle")
	}
	if stats.Score <= 0 {
		t.Errorf("Score = %d, expected a positive distance score", stats.Score)
	}

	tick := s.Tick()
	s.Step()
	if s.Tick() != tick {
		t.Error("a finished session should not advance")
	}
}

func TestSessionPauseFreezesClock(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyNormal, 9, nil)

	if ran := s.Advance(100 * time.Millisecond); ran != 6 {
		t.Fatalf("Advance(100ms) ran %d steps, expected 6", ran)
	}
	before := s.Frame()

	s.Pause()
	if ran := s.Advance(time.Second); ran != 0 {
		t.Errorf("paused Advance ran %d steps", ran)
	}
	after := s.Frame()
	if after.Tick != before.Tick || after.Score != before.Score || !reflect.DeepEqual(after.Obstacles, before.Obstacles) {
		t.Error("pause must freeze entities and score")
	}
	if !after.Paused {
		t.Error("frame should report paused")
	}

	s.Resume()
	if ran := s.Advance(50 * time.Millisecond); ran != 3 {
		t.Errorf("Advance after resume ran %d steps, expected 3", ran)
	}
}

func TestNewSessionStartsFresh(t *testing.T) {
	cfg := config.DefaultConfig()
	s, _ := scriptedRun(cfg, core.DifficultyEasy, 5, 500)
	if s.Score() == 0 {
		t.Fatal("scripted run should have scored")
	}

	fresh := NewSession(cfg, core.DifficultyEasy, 5, nil)
	if fresh.Score() != 0 || fresh.Tick() != 0 || len(fresh.World().Obstacles) != 0 {
		t.Error("a new session must start with zero score and an empty world")
	}
	if fresh.Speed() != cfg.Difficulties.Easy.StartSpeed {
		t.Errorf("Speed() = %v, expected start speed", fresh.Speed())
	}
}

func TestRunSubsystemRollsBackOnPanic(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyNormal, 3, nil)
	for i := 0; i < 100; i++ {
		s.Step()
	}
	world := s.World().clone()
	score := s.Score()

	s.runSubsystem("test", s.Tick(), func(w *World) error {
		w.Obstacles = nil
		s.score.AddBonus(CollectibleStar, 1000)
		panic("boom")
	})

	if !reflect.DeepEqual(s.World().Obstacles, world.Obstacles) {
		t.Error("world changed after a panicking subsystem")
	}
	if s.Score() != score {
		t.Errorf("score changed to %d after rollback, expected %d", s.Score(), score)
	}

	s.Step()
	if s.Tick() != 101 {
		t.Error("session should keep running after a skipped subsystem")
	}
}

func TestFrameIsACopy(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyNormal, 3, nil)
	for len(s.World().Obstacles) == 0 {
		s.Step()
	}

	f := s.Frame()
	f.Obstacles[0].Box.X = -1000
	if s.World().Obstacles[0].Box.X == -1000 {
		t.Error("mutating a frame must not touch the session")
	}
}

func TestRunSubsystemRestoresSpawnerOnError(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, core.DifficultyNormal, 5, nil)
	for i := 0; i < 100; i++ {
		s.Step()
	}
	lastRight, nextID, obstacles := s.spawner.lastRight, s.spawner.nextID, len(s.World().Obstacles)

	s.runSubsystem("spawner", s.Tick(), func(w *World) error {
		if _, err := s.spawner.Update(w, 2000, s.Score()); err != nil {
			return err
		}
		return errors.New("placement rejected")
	})

	if s.spawner.lastRight != lastRight {
		t.Errorf("spawner lastRight = %v after rollback, expected %v", s.spawner.lastRight, lastRight)
	}
	if s.spawner.nextID != nextID {
		t.Errorf("spawner nextID = %d after rollback, expected %d", s.spawner.nextID, nextID)
	}
	if got := len(s.World().Obstacles); got != obstacles {
		t.Errorf("world has %d obstacles after rollback, expected %d", got, obstacles)
	}

	for i := 0; i < 200 && !s.Over(); i++ {
		s.Step()
	}
	obs := s.World().Obstacles
	for i := 1; i < len(obs); i++ {
		if obs[i].Box.X < obs[i-1].Box.Right() {
			t.Fatalf("obstacle %d overlaps its predecessor after a rollback", obs[i].ID)
		}
	}
}
