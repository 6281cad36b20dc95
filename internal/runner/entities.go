package runner

import "github.com/vovakirdan/unicorn-dash/internal/core"

// ObstacleKind identifies a hazard type.
type ObstacleKind int

const (
	ObstacleRock       ObstacleKind = iota // Ground hazard, three sizes
	ObstacleCrystal                        // Tall ground hazard
	ObstacleDragonHigh                     // Dragon flying at ground level, jump over it
	ObstacleDragonLow                      // Dragon band above duck height, duck under it
)

// String returns the obstacle kind name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleRock:
		return "rock"
	case ObstacleCrystal:
		return "crystal"
	case ObstacleDragonHigh:
		return "dragon_high"
	case ObstacleDragonLow:
		return "dragon_low"
	default:
		return "unknown"
	}
}

// JumpOnly reports whether the obstacle can only be cleared by jumping.
func (k ObstacleKind) JumpOnly() bool {
	return k != ObstacleDragonLow
}

// Rock size variants.
const (
	RockSmall = iota
	RockMedium
	RockLarge
)

// Obstacle is a spawned hazard. Box is in world coordinates.
type Obstacle struct {
	ID      int
	Kind    ObstacleKind
	Variant int // Rock size; zero for other kinds
	Box     core.Box
	Lethal  bool
}

// CollectibleKind identifies a pickup type.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleStar
	CollectibleShield
	CollectibleMagnet
)

// String returns the collectible kind name.
func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectibleStar:
		return "star"
	case CollectibleShield:
		return "shield"
	case CollectibleMagnet:
		return "magnet"
	default:
		return "unknown"
	}
}

// Attractable reports whether the magnet pulls this kind.
func (k CollectibleKind) Attractable() bool {
	return k == CollectibleCoin || k == CollectibleStar
}

// Collectible is a pickup centered at (X, Y).
type Collectible struct {
	ID        int
	Kind      CollectibleKind
	X, Y      float64
	Radius    float64
	Collected bool
}

// Box returns the square hitbox enclosing the pickup.
func (c Collectible) Box() core.Box {
	return core.NewBox(c.X-c.Radius, c.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}

// World holds the live entities of a session, in spawn order.
type World struct {
	Obstacles    []Obstacle
	Collectibles []Collectible
}

// scroll moves every entity left by dx.
func (w *World) scroll(dx float64) {
	for i := range w.Obstacles {
		w.Obstacles[i].Box.X -= dx
	}
	for i := range w.Collectibles {
		w.Collectibles[i].X -= dx
	}
}

// cull drops entities whose right edge has passed x=0 and collected pickups.
func (w *World) cull() {
	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Box.Right() >= 0 {
			obstacles = append(obstacles, o)
		}
	}
	w.Obstacles = obstacles

	collectibles := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if !c.Collected && c.X+c.Radius >= 0 {
			collectibles = append(collectibles, c)
		}
	}
	w.Collectibles = collectibles
}

// clone returns a deep copy for snapshots.
func (w World) clone() World {
	return World{
		Obstacles:    append([]Obstacle(nil), w.Obstacles...),
		Collectibles: append([]Collectible(nil), w.Collectibles...),
	}
}
