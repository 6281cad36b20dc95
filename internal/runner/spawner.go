package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// maxSpawnsPerTick bounds the spawn loop; one spawn per tick is the norm.
const maxSpawnsPerTick = 4

// SpawnEvent describes one obstacle placement and the gap that preceded it.
type SpawnEvent struct {
	Obstacle Obstacle
	Gap      float64 // Distance from the previous obstacle's right edge
	Required float64 // Minimum gap demanded at the spawn-time speed
	Speed    float64 // World speed when the obstacle was placed
}

// Spawner schedules obstacles and collectibles ahead of the player.
// Spacing is gap-based: the distance between consecutive obstacles grows with
// world speed so the player always gets the same reaction time.
type Spawner struct {
	cfg       config.SpawnerConfig
	shapes    config.ObstacleShapes
	radius    float64
	spawnEdge float64
	viewport  float64
	rng       *rand.Rand

	lastRight float64 // Right edge of the newest obstacle, scrolled with the world
	lastKind  ObstacleKind
	hasLast   bool

	// The next obstacle is rolled ahead of time so its gap can be re-evaluated
	// against the current speed every tick.
	nextKind   ObstacleKind
	nextJitter float64
	pending    bool

	nextID int
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(cfg config.Config, seed int64) *Spawner {
	s := &Spawner{
		cfg:       cfg.Spawner,
		shapes:    cfg.Spawner.Obstacles,
		radius:    cfg.Collectibles.Radius,
		viewport:  cfg.Runtime.ViewportWidth,
		spawnEdge: cfg.Runtime.ViewportWidth + cfg.Spawner.SpawnMargin,
	}
	s.Reset(seed)
	return s
}

// Reset forgets all placement history and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.lastRight = s.viewport
	s.hasLast = false
	s.pending = false
	s.nextID = 0
}

// RequiredGap returns the minimum gap before an obstacle of kind next at the
// given speed. A low dragon after another low dragon or after a jump-only
// obstacle needs the longer recovery gap so the player can land and duck.
func (s *Spawner) RequiredGap(speed float64, prev ObstacleKind, hasPrev bool, next ObstacleKind) float64 {
	ticks := s.cfg.ReactionTicks
	if hasPrev && next == ObstacleDragonLow && (prev == ObstacleDragonLow || prev.JumpOnly()) {
		ticks = s.cfg.RecoveryTicks
	}
	return math.Max(s.cfg.MinGap, ticks*speed)
}

// Update scrolls the world by speed, culls entities behind the viewport
// origin and spawns whatever has come due. The world is left untouched when
// an error is returned.
func (s *Spawner) Update(w *World, speed float64, score int) ([]SpawnEvent, error) {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("spawner: invalid world speed %v", speed)
	}

	w.scroll(speed)
	w.cull()
	s.lastRight -= speed

	var events []SpawnEvent
	for i := 0; i < maxSpawnsPerTick; i++ {
		if !s.pending {
			s.roll(score)
		}
		required := s.RequiredGap(speed, s.lastKind, s.hasLast, s.nextKind)
		gap := required * (1 + s.nextJitter)
		if s.lastRight+gap > s.spawnEdge {
			break
		}
		events = append(events, s.place(w, gap, required, speed))
	}
	return events, nil
}

// roll picks the kind and gap jitter of the next obstacle.
func (s *Spawner) roll(score int) {
	s.nextKind = s.pickKind(score)
	s.nextJitter = s.rng.Float64() * s.cfg.GapJitter
	s.pending = true
}

// pickKind performs weighted selection. Dragons stay locked below the unlock score.
func (s *Spawner) pickKind(score int) ObstacleKind {
	weights := []struct {
		kind   ObstacleKind
		weight int
	}{
		{ObstacleRock, s.cfg.Weights.Rock},
		{ObstacleCrystal, s.cfg.Weights.Crystal},
		{ObstacleDragonHigh, s.cfg.Weights.DragonHigh},
		{ObstacleDragonLow, s.cfg.Weights.DragonLow},
	}

	total := 0
	for i := range weights {
		if weights[i].kind != ObstacleRock && weights[i].kind != ObstacleCrystal && score < s.cfg.DragonUnlockScore {
			weights[i].weight = 0
		}
		total += weights[i].weight
	}
	if total <= 0 {
		return ObstacleRock
	}

	n := s.rng.Intn(total)
	for _, w := range weights {
		if n < w.weight {
			return w.kind
		}
		n -= w.weight
	}
	return ObstacleRock
}

// place appends the pending obstacle gap units after the previous one and
// optionally drops a collectible into the gap.
func (s *Spawner) place(w *World, gap, required, speed float64) SpawnEvent {
	gapStart := s.lastRight
	x := s.lastRight + gap

	s.nextID++
	o := Obstacle{ID: s.nextID, Kind: s.nextKind, Lethal: true}
	switch o.Kind {
	case ObstacleRock:
		o.Variant = s.rng.Intn(3)
		size := []config.Size{s.shapes.RockSmall, s.shapes.RockMedium, s.shapes.RockLarge}[o.Variant]
		o.Box = core.NewBox(x, 0, size.Width, size.Height)
	case ObstacleCrystal:
		o.Box = core.NewBox(x, 0, s.shapes.Crystal.Width, s.shapes.Crystal.Height)
	case ObstacleDragonHigh:
		o.Box = core.NewBox(x, 0, s.shapes.DragonHigh.Width, s.shapes.DragonHigh.Height)
	case ObstacleDragonLow:
		band := s.shapes.DragonLow
		o.Box = core.NewBox(x, band.Bottom, band.Width, band.Height)
	}
	w.Obstacles = append(w.Obstacles, o)

	s.lastRight = o.Box.Right()
	s.lastKind = o.Kind
	s.hasLast = true
	s.pending = false

	s.scatter(w, gapStart, x)

	return SpawnEvent{Obstacle: o, Gap: gap, Required: required, Speed: speed}
}

// scatter may place one collectible strictly inside (from, to), keeping the
// configured margin from both obstacles so a pickup never overlaps a hazard.
func (s *Spawner) scatter(w *World, from, to float64) {
	if s.rng.Float64() >= s.cfg.CollectibleChance {
		return
	}
	kind := s.pickCollectible()

	inset := s.cfg.CollectibleMargin + s.radius
	room := (to - from) - 2*inset
	if room <= 0 {
		return
	}

	s.nextID++
	w.Collectibles = append(w.Collectibles, Collectible{
		ID:     s.nextID,
		Kind:   kind,
		X:      from + inset + s.rng.Float64()*room,
		Y:      s.cfg.CollectibleHeight[s.rng.Intn(len(s.cfg.CollectibleHeight))],
		Radius: s.radius,
	})
}

func (s *Spawner) pickCollectible() CollectibleKind {
	cw := s.cfg.CollectibleWeight
	weights := []int{cw.Coin, cw.Star, cw.Shield, cw.Magnet}
	kinds := []CollectibleKind{CollectibleCoin, CollectibleStar, CollectibleShield, CollectibleMagnet}

	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return CollectibleCoin
	}
	n := s.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return kinds[i]
		}
		n -= w
	}
	return CollectibleCoin
}
