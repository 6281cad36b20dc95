package runner

import (
	"fmt"

	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// CollisionResult reports what happened during one resolution pass.
type CollisionResult struct {
	Collected   []Collectible
	ShieldsUsed int
	Killed      bool
	Hit         Obstacle // Valid when Killed
}

// CollisionResolver tests the player's current hitbox against the world and
// applies pickups, shield hits and lethal hits.
type CollisionResolver struct {
	cfg config.CollectiblesConfig
}

// NewCollisionResolver creates a resolver with the given pickup settings.
func NewCollisionResolver(cfg config.CollectiblesConfig) CollisionResolver {
	return CollisionResolver{cfg: cfg}
}

// Resolve runs one pass in this order: magnet attraction, pickups, obstacles.
// Pickups come before obstacles so a shield grabbed on the same tick as a hit
// absorbs it. Bonuses are credited to score as they are collected.
func (r CollisionResolver) Resolve(p *Player, w *World, score *ScoreTracker, tick int) (CollisionResult, error) {
	var res CollisionResult
	if !p.Alive() {
		return res, nil
	}

	hitbox := p.Hitbox()
	if !hitbox.Finite() {
		return res, fmt.Errorf("collision: player hitbox is not finite: %+v", hitbox)
	}

	if p.MagnetActive() {
		r.attract(hitbox, w)
	}

	remaining := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if c.Collected || !hitbox.Intersects(c.Box()) {
			remaining = append(remaining, c)
			continue
		}
		c.Collected = true
		r.apply(p, score, c.Kind)
		res.Collected = append(res.Collected, c)
	}
	w.Collectibles = remaining

	obstacles := w.Obstacles[:0]
	for i, o := range w.Obstacles {
		if !o.Lethal || !hitbox.Intersects(o.Box) {
			obstacles = append(obstacles, o)
			continue
		}
		if p.ConsumeShield() {
			res.ShieldsUsed++
			continue
		}
		p.Die(tick)
		res.Killed = true
		res.Hit = o
		obstacles = append(obstacles, w.Obstacles[i:]...)
		break
	}
	w.Obstacles = obstacles

	return res, nil
}

// attract pulls every star and coin within the magnet radius a fixed fraction
// of the remaining distance toward the player.
func (r CollisionResolver) attract(hitbox core.Box, w *World) {
	px, py := hitbox.Center()
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Collected || !c.Kind.Attractable() {
			continue
		}
		if core.Distance(c.X, c.Y, px, py) > r.cfg.MagnetRadius {
			continue
		}
		c.X += (px - c.X) * r.cfg.MagnetPull
		c.Y += (py - c.Y) * r.cfg.MagnetPull
	}
}

func (r CollisionResolver) apply(p *Player, score *ScoreTracker, kind CollectibleKind) {
	if score == nil {
		score = &ScoreTracker{}
	}
	switch kind {
	case CollectibleStar:
		score.AddBonus(kind, r.cfg.StarBonus)
	case CollectibleCoin:
		score.AddBonus(kind, r.cfg.CoinBonus)
	case CollectibleShield:
		p.GrantShield()
	case CollectibleMagnet:
		p.GrantMagnet(r.cfg.MagnetTicks)
	}
}
