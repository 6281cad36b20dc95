package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// ErrConfigurationOutOfRange reports a preset or tuning value outside its
// defined bounds. It is fatal at startup.
var ErrConfigurationOutOfRange = errors.New("configuration out of range")

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), ErrConfigurationOutOfRange)
}

// Validate checks every value the simulation relies on. The returned error
// wraps ErrConfigurationOutOfRange.
func (c Config) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 240 {
		return outOfRange("runtime.tick_rate %d not in [1, 240]", c.Runtime.TickRate)
	}
	if c.Runtime.MaxFrameMs <= 0 {
		return outOfRange("runtime.max_frame_ms must be positive")
	}
	if c.Runtime.ViewportWidth <= c.Player.X+c.Player.DuckWidth {
		return outOfRange("runtime.viewport_width %.0f leaves no room ahead of the player", c.Runtime.ViewportWidth)
	}

	if err := c.Player.validate(); err != nil {
		return err
	}
	for _, d := range core.Difficulties {
		if err := c.Difficulties.For(d).validate(d.String()); err != nil {
			return err
		}
	}
	if err := c.validateSpawner(); err != nil {
		return err
	}
	if err := c.validateClearance(); err != nil {
		return err
	}

	col := c.Collectibles
	if col.Radius <= 0 {
		return outOfRange("collectibles.radius must be positive")
	}
	if col.StarBonus < 0 || col.CoinBonus < 0 {
		return outOfRange("collectibles bonuses must not be negative")
	}
	if col.MagnetRadius < 0 {
		return outOfRange("collectibles.magnet_radius must not be negative")
	}
	if col.MagnetPull <= 0 || col.MagnetPull > 1 {
		return outOfRange("collectibles.magnet_pull %.2f not in (0, 1]", col.MagnetPull)
	}
	if col.MagnetTicks < 0 {
		return outOfRange("collectibles.magnet_ticks must not be negative")
	}

	if c.Scoring.PointsPerDistance <= 0 {
		return outOfRange("scoring.points_per_distance must be positive")
	}
	return nil
}

// validateFinite rejects NaN and infinite float values.
func (c Config) validateFinite() error {
	fields := map[string]float64{
		"runtime.viewport_width":               c.Runtime.ViewportWidth,
		"player.x":                             c.Player.X,
		"player.width":                         c.Player.Width,
		"player.stand_height":                  c.Player.StandHeight,
		"player.duck_width":                    c.Player.DuckWidth,
		"player.duck_height":                   c.Player.DuckHeight,
		"player.max_fall_speed":                c.Player.MaxFallSpeed,
		"spawner.min_gap":                      c.Spawner.MinGap,
		"spawner.reaction_ticks":               c.Spawner.ReactionTicks,
		"spawner.recovery_ticks":               c.Spawner.RecoveryTicks,
		"spawner.gap_jitter":                   c.Spawner.GapJitter,
		"spawner.spawn_margin":                 c.Spawner.SpawnMargin,
		"spawner.collectible_chance":           c.Spawner.CollectibleChance,
		"spawner.collectible_margin":           c.Spawner.CollectibleMargin,
		"spawner.obstacles.rock_small.width":   c.Spawner.Obstacles.RockSmall.Width,
		"spawner.obstacles.rock_small.height":  c.Spawner.Obstacles.RockSmall.Height,
		"spawner.obstacles.rock_medium.width":  c.Spawner.Obstacles.RockMedium.Width,
		"spawner.obstacles.rock_medium.height": c.Spawner.Obstacles.RockMedium.Height,
		"spawner.obstacles.rock_large.width":   c.Spawner.Obstacles.RockLarge.Width,
		"spawner.obstacles.rock_large.height":  c.Spawner.Obstacles.RockLarge.Height,
		"spawner.obstacles.crystal.width":      c.Spawner.Obstacles.Crystal.Width,
		"spawner.obstacles.crystal.height":     c.Spawner.Obstacles.Crystal.Height,
		"spawner.obstacles.dragon_high.width":  c.Spawner.Obstacles.DragonHigh.Width,
		"spawner.obstacles.dragon_high.height": c.Spawner.Obstacles.DragonHigh.Height,
		"spawner.obstacles.dragon_low.width":   c.Spawner.Obstacles.DragonLow.Width,
		"spawner.obstacles.dragon_low.bottom":  c.Spawner.Obstacles.DragonLow.Bottom,
		"spawner.obstacles.dragon_low.height":  c.Spawner.Obstacles.DragonLow.Height,
		"collectibles.radius":                  c.Collectibles.Radius,
		"collectibles.magnet_radius":           c.Collectibles.MagnetRadius,
		"collectibles.magnet_pull":             c.Collectibles.MagnetPull,
		"scoring.points_per_distance":          c.Scoring.PointsPerDistance,
	}
	for _, d := range core.Difficulties {
		dc := c.Difficulties.For(d)
		fields["difficulties."+d.String()+".start_speed"] = dc.StartSpeed
		fields["difficulties."+d.String()+".max_speed"] = dc.MaxSpeed
		fields["difficulties."+d.String()+".progression.increment"] = dc.Progression.Increment
		fields["difficulties."+d.String()+".gravity"] = dc.Gravity
		fields["difficulties."+d.String()+".jump_impulse"] = dc.JumpImpulse
		fields["difficulties."+d.String()+".double_jump_impulse"] = dc.DoubleJumpImpulse
	}
	for i, h := range c.Spawner.CollectibleHeight {
		fields[fmt.Sprintf("spawner.collectible_heights[%d]", i)] = h
	}

	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return outOfRange("%s must be a finite number, got %v", name, v)
		}
	}
	return nil
}

func (p PlayerConfig) validate() error {
	if p.X < 0 {
		return outOfRange("player.x must not be negative")
	}
	if p.Width <= 0 || p.StandHeight <= 0 || p.DuckWidth <= 0 || p.DuckHeight <= 0 {
		return outOfRange("player hitbox dimensions must be positive")
	}
	if p.DuckHeight >= p.StandHeight {
		return outOfRange("player.duck_height %.0f must be below stand_height %.0f", p.DuckHeight, p.StandHeight)
	}
	if p.MaxFallSpeed <= 0 {
		return outOfRange("player.max_fall_speed must be positive")
	}
	if p.DyingTicks < 0 {
		return outOfRange("player.dying_ticks must not be negative")
	}
	return nil
}

func (d DifficultyConfig) validate(name string) error {
	if d.StartSpeed <= 0 {
		return outOfRange("difficulties.%s.start_speed must be positive", name)
	}
	if d.MaxSpeed < d.StartSpeed {
		return outOfRange("difficulties.%s.max_speed %.2f below start_speed %.2f", name, d.MaxSpeed, d.StartSpeed)
	}
	switch d.Progression.Type {
	case "score", "time", "none":
	default:
		return outOfRange("difficulties.%s.progression.type %q unknown", name, d.Progression.Type)
	}
	if d.Progression.Increment < 0 {
		return outOfRange("difficulties.%s.progression.increment must not be negative", name)
	}
	if d.Gravity <= 0 {
		return outOfRange("difficulties.%s.gravity must be positive", name)
	}
	if d.JumpImpulse <= 0 || d.DoubleJumpImpulse <= 0 {
		return outOfRange("difficulties.%s jump impulses must be positive", name)
	}
	return nil
}

func (c Config) validateSpawner() error {
	s := c.Spawner
	if s.MinGap <= 0 {
		return outOfRange("spawner.min_gap must be positive")
	}
	if s.ReactionTicks <= 0 {
		return outOfRange("spawner.reaction_ticks must be positive")
	}
	if s.RecoveryTicks < s.ReactionTicks {
		return outOfRange("spawner.recovery_ticks %.0f below reaction_ticks %.0f", s.RecoveryTicks, s.ReactionTicks)
	}
	if s.GapJitter < 0 {
		return outOfRange("spawner.gap_jitter must not be negative")
	}
	if s.SpawnMargin < 0 {
		return outOfRange("spawner.spawn_margin must not be negative")
	}
	w := s.Weights
	if w.Rock < 0 || w.Crystal < 0 || w.DragonHigh < 0 || w.DragonLow < 0 {
		return outOfRange("spawner.weights must not be negative")
	}
	if w.Rock+w.Crystal <= 0 {
		return outOfRange("spawner.weights need a positive rock or crystal weight")
	}
	for name, size := range map[string]Size{
		"rock_small":  s.Obstacles.RockSmall,
		"rock_medium": s.Obstacles.RockMedium,
		"rock_large":  s.Obstacles.RockLarge,
		"crystal":     s.Obstacles.Crystal,
		"dragon_high": s.Obstacles.DragonHigh,
	} {
		if size.Width <= 0 || size.Height <= 0 {
			return outOfRange("spawner.obstacles.%s dimensions must be positive", name)
		}
	}
	if s.Obstacles.DragonLow.Width <= 0 || s.Obstacles.DragonLow.Height <= 0 {
		return outOfRange("spawner.obstacles.dragon_low dimensions must be positive")
	}
	if s.CollectibleChance < 0 || s.CollectibleChance > 1 {
		return outOfRange("spawner.collectible_chance %.2f not in [0, 1]", s.CollectibleChance)
	}
	if s.CollectibleMargin < 0 {
		return outOfRange("spawner.collectible_margin must not be negative")
	}
	if len(s.CollectibleHeight) == 0 {
		return outOfRange("spawner.collectible_heights must not be empty")
	}
	for _, h := range s.CollectibleHeight {
		if h < 0 {
			return outOfRange("spawner.collectible_heights must not be negative")
		}
	}
	cw := s.CollectibleWeight
	if cw.Coin < 0 || cw.Star < 0 || cw.Shield < 0 || cw.Magnet < 0 {
		return outOfRange("spawner.collectible_weights must not be negative")
	}
	if cw.Coin+cw.Star+cw.Shield+cw.Magnet <= 0 {
		return outOfRange("spawner.collectible_weights must have a positive sum")
	}
	return nil
}

// validateClearance checks that every obstacle has exactly one way past it:
// ground hazards must be jumpable, and the low dragon band must admit a ducking
// player while being out of reach of a double jump.
func (c Config) validateClearance() error {
	p := c.Player
	low := c.Spawner.Obstacles.DragonLow
	if low.Bottom <= p.DuckHeight || low.Bottom >= p.StandHeight {
		return outOfRange("spawner.obstacles.dragon_low.bottom %.0f must lie between duck_height %.0f and stand_height %.0f",
			low.Bottom, p.DuckHeight, p.StandHeight)
	}

	o := c.Spawner.Obstacles
	var tallest float64
	for _, s := range []Size{o.RockSmall, o.RockMedium, o.RockLarge, o.Crystal, o.DragonHigh} {
		tallest = math.Max(tallest, s.Height)
	}

	for _, d := range core.Difficulties {
		dc := c.Difficulties.For(d)
		if apex := JumpApex(dc.JumpImpulse, dc.Gravity); apex <= tallest {
			return outOfRange("difficulties.%s: jump apex %.1f does not clear the tallest ground hazard %.0f", d, apex, tallest)
		}
		reach := DoubleJumpApex(dc) + p.StandHeight
		if low.Bottom+low.Height < reach {
			return outOfRange("difficulties.%s: dragon_low band top %.0f is within double-jump reach %.1f", d, low.Bottom+low.Height, reach)
		}
		if air := JumpAirtime(dc.JumpImpulse, dc.Gravity); c.Spawner.ReactionTicks < air {
			return outOfRange("difficulties.%s: spawner.reaction_ticks %.0f shorter than jump airtime %.1f", d, c.Spawner.ReactionTicks, air)
		}
		if air := DoubleJumpAirtime(dc); c.Spawner.RecoveryTicks < air {
			return outOfRange("difficulties.%s: spawner.recovery_ticks %.0f shorter than double-jump airtime %.1f", d, c.Spawner.RecoveryTicks, air)
		}
	}
	return nil
}

// JumpApex returns the peak height of a jump with the given impulse.
func JumpApex(impulse, gravity float64) float64 {
	return impulse * impulse / (2 * gravity)
}

// JumpAirtime returns the ticks a single jump spends off the ground.
func JumpAirtime(impulse, gravity float64) float64 {
	return 2 * impulse / gravity
}

// DoubleJumpApex returns an upper bound on the height reached with both jumps.
func DoubleJumpApex(d DifficultyConfig) float64 {
	return JumpApex(d.JumpImpulse, d.Gravity) + JumpApex(d.DoubleJumpImpulse, d.Gravity)
}

// DoubleJumpAirtime returns an upper bound, in ticks, on the time spent airborne
// when the second jump is taken at the apex of the first.
func DoubleJumpAirtime(d DifficultyConfig) float64 {
	fall := math.Sqrt(2*DoubleJumpApex(d)/d.Gravity)
	return (d.JumpImpulse+d.DoubleJumpImpulse)/d.Gravity + fall
}
