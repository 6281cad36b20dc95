// Package config provides YAML-based configuration loading, difficulty presets,
// and the world-speed curve for Unicorn Dash.
package config

import "github.com/vovakirdan/unicorn-dash/internal/core"

// Config contains every tunable of the simulation.
type Config struct {
	Runtime      RuntimeConfig      `yaml:"runtime"`
	Player       PlayerConfig       `yaml:"player"`
	Difficulties DifficultySet      `yaml:"difficulties"`
	Spawner      SpawnerConfig      `yaml:"spawner"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Scoring      ScoringConfig      `yaml:"scoring"`
}

// RuntimeConfig defines the fixed-step clock and the world viewport.
type RuntimeConfig struct {
	TickRate      int     `yaml:"tick_rate"`      // Fixed steps per second
	MaxFrameMs    int     `yaml:"max_frame_ms"`   // Longest wall-clock frame fed to the clock
	ViewportWidth float64 `yaml:"viewport_width"` // World units visible to the right of x=0
}

// PlayerConfig defines the lane position and hitboxes of the player.
type PlayerConfig struct {
	X            float64 `yaml:"x"`              // Hitbox left edge (lane origin)
	Width        float64 `yaml:"width"`          // Standing hitbox width
	StandHeight  float64 `yaml:"stand_height"`   // Standing hitbox height
	DuckWidth    float64 `yaml:"duck_width"`     // Ducking hitbox width
	DuckHeight   float64 `yaml:"duck_height"`    // Ducking hitbox height
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal downward velocity
	DyingTicks   int     `yaml:"dying_ticks"`    // Length of the death tumble
}

// DifficultySet holds one preset per difficulty.
type DifficultySet struct {
	Easy   DifficultyConfig `yaml:"easy"`
	Normal DifficultyConfig `yaml:"normal"`
	Hard   DifficultyConfig `yaml:"hard"`
}

// For returns the preset for d. Unknown values fall back to Normal.
func (s DifficultySet) For(d core.Difficulty) DifficultyConfig {
	switch d {
	case core.DifficultyEasy:
		return s.Easy
	case core.DifficultyHard:
		return s.Hard
	default:
		return s.Normal
	}
}

// DifficultyConfig defines speed range, speed curve and jump physics of a preset.
type DifficultyConfig struct {
	StartSpeed        float64           `yaml:"start_speed"`         // World units per tick at run start
	MaxSpeed          float64           `yaml:"max_speed"`           // Speed cap
	Progression       ProgressionConfig `yaml:"progression"`         // How speed grows
	Gravity           float64           `yaml:"gravity"`             // Downward acceleration per tick
	JumpImpulse       float64           `yaml:"jump_impulse"`        // Upward velocity of the first jump
	DoubleJumpImpulse float64           `yaml:"double_jump_impulse"` // Upward velocity of the mid-air jump
}

// ProgressionConfig defines how world speed increases over a run.
type ProgressionConfig struct {
	Type      string  `yaml:"type"`      // "score", "time", or "none"
	Increment float64 `yaml:"increment"` // Speed added per score point or per tick
}

// SpawnerConfig defines obstacle cadence, fairness gaps and selection weights.
type SpawnerConfig struct {
	MinGap            float64            `yaml:"min_gap"`             // Smallest gap regardless of speed
	ReactionTicks     float64            `yaml:"reaction_ticks"`      // Guaranteed reaction time between obstacles
	RecoveryTicks     float64            `yaml:"recovery_ticks"`      // Time to land and duck before a low dragon
	GapJitter         float64            `yaml:"gap_jitter"`          // Random extra gap as a fraction of the required gap
	SpawnMargin       float64            `yaml:"spawn_margin"`        // Distance past the viewport edge where entities appear
	DragonUnlockScore int                `yaml:"dragon_unlock_score"` // Dragons only spawn at or above this score
	Weights           ObstacleWeights    `yaml:"weights"`
	Obstacles         ObstacleShapes     `yaml:"obstacles"`
	CollectibleChance float64            `yaml:"collectible_chance"` // Chance that a gap receives a collectible
	CollectibleMargin float64            `yaml:"collectible_margin"` // Clearance kept between collectibles and obstacles
	CollectibleHeight []float64          `yaml:"collectible_heights"`
	CollectibleWeight CollectibleWeights `yaml:"collectible_weights"`
}

// ObstacleWeights are relative selection weights per obstacle kind.
type ObstacleWeights struct {
	Rock       int `yaml:"rock"`
	Crystal    int `yaml:"crystal"`
	DragonHigh int `yaml:"dragon_high"`
	DragonLow  int `yaml:"dragon_low"`
}

// Size is a width/height pair in world units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Band is an elevated obstacle: it starts at Bottom and extends Height upward.
type Band struct {
	Width  float64 `yaml:"width"`
	Bottom float64 `yaml:"bottom"`
	Height float64 `yaml:"height"`
}

// ObstacleShapes defines hitbox sizes for every obstacle kind.
type ObstacleShapes struct {
	RockSmall  Size `yaml:"rock_small"`
	RockMedium Size `yaml:"rock_medium"`
	RockLarge  Size `yaml:"rock_large"`
	Crystal    Size `yaml:"crystal"`
	DragonHigh Size `yaml:"dragon_high"`
	DragonLow  Band `yaml:"dragon_low"`
}

// CollectibleWeights are relative selection weights per collectible kind.
type CollectibleWeights struct {
	Coin   int `yaml:"coin"`
	Star   int `yaml:"star"`
	Shield int `yaml:"shield"`
	Magnet int `yaml:"magnet"`
}

// CollectiblesConfig defines pickup size, bonuses and the magnet power-up.
type CollectiblesConfig struct {
	Radius       float64 `yaml:"radius"`
	StarBonus    int     `yaml:"star_bonus"`
	CoinBonus    int     `yaml:"coin_bonus"`
	MagnetRadius float64 `yaml:"magnet_radius"`
	MagnetPull   float64 `yaml:"magnet_pull"` // Fraction of the remaining distance closed per tick
	MagnetTicks  int     `yaml:"magnet_ticks"`
}

// ScoringConfig defines how distance converts to score.
type ScoringConfig struct {
	PointsPerDistance float64 `yaml:"points_per_distance"`
}
