package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultConfig returns the built-in Unicorn Dash configuration.
// It mirrors defaults/dash.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			TickRate:      60,
			MaxFrameMs:    250,
			ViewportWidth: 900,
		},
		Player: PlayerConfig{
			X:            115,
			Width:        45,
			StandHeight:  45,
			DuckWidth:    55,
			DuckHeight:   24,
			MaxFallSpeed: 20,
			DyingTicks:   45,
		},
		Difficulties: DifficultySet{
			Easy: DifficultyConfig{
				StartSpeed:        7,
				MaxSpeed:          12,
				Progression:       ProgressionConfig{Type: "score", Increment: 0.0008},
				Gravity:           0.7,
				JumpImpulse:       16,
				DoubleJumpImpulse: 13,
			},
			Normal: DifficultyConfig{
				StartSpeed:        9,
				MaxSpeed:          16,
				Progression:       ProgressionConfig{Type: "score", Increment: 0.0012},
				Gravity:           0.85,
				JumpImpulse:       17,
				DoubleJumpImpulse: 14,
			},
			Hard: DifficultyConfig{
				StartSpeed:        12,
				MaxSpeed:          22,
				Progression:       ProgressionConfig{Type: "score", Increment: 0.002},
				Gravity:           1.0,
				JumpImpulse:       18,
				DoubleJumpImpulse: 15,
			},
		},
		Spawner: SpawnerConfig{
			MinGap:            220,
			ReactionTicks:     50,
			RecoveryTicks:     75,
			GapJitter:         0.6,
			SpawnMargin:       60,
			DragonUnlockScore: 300,
			Weights: ObstacleWeights{
				Rock:       50,
				Crystal:    20,
				DragonHigh: 15,
				DragonLow:  15,
			},
			Obstacles: ObstacleShapes{
				RockSmall:  Size{Width: 20, Height: 25},
				RockMedium: Size{Width: 30, Height: 40},
				RockLarge:  Size{Width: 45, Height: 55},
				Crystal:    Size{Width: 25, Height: 45},
				DragonHigh: Size{Width: 45, Height: 28},
				DragonLow:  Band{Width: 45, Bottom: 30, Height: 400},
			},
			CollectibleChance: 0.45,
			CollectibleMargin: 20,
			CollectibleHeight: []float64{14, 70, 130},
			CollectibleWeight: CollectibleWeights{
				Coin:   60,
				Star:   25,
				Shield: 8,
				Magnet: 7,
			},
		},
		Collectibles: CollectiblesConfig{
			Radius:       10,
			StarBonus:    50,
			CoinBonus:    25,
			MagnetRadius: 220,
			MagnetPull:   0.2,
			MagnetTicks:  480,
		},
		Scoring: ScoringConfig{
			PointsPerDistance: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDashYAML
}
