package config

import "math"

// SpeedCurve calculates world speed from score or survival time for one difficulty.
type SpeedCurve struct {
	cfg DifficultyConfig
}

// NewSpeedCurve creates a speed curve for the given preset.
func NewSpeedCurve(cfg DifficultyConfig) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// IsEnabled returns whether speed grows during a run.
func (c SpeedCurve) IsEnabled() bool {
	switch c.cfg.Progression.Type {
	case "score", "time":
		return c.cfg.Progression.Increment > 0
	default:
		return false
	}
}

// Start returns the speed at the beginning of a run.
func (c SpeedCurve) Start() float64 {
	return c.cfg.StartSpeed
}

// Max returns the speed cap.
func (c SpeedCurve) Max() float64 {
	return c.cfg.MaxSpeed
}

// Speed returns the curve value for the given score and elapsed ticks,
// clamped to [StartSpeed, MaxSpeed].
func (c SpeedCurve) Speed(score int, ticks int) float64 {
	if !c.IsEnabled() {
		return c.cfg.StartSpeed
	}

	var progress float64
	switch c.cfg.Progression.Type {
	case "score":
		progress = float64(score)
	case "time":
		progress = float64(ticks)
	}

	return clampF(c.cfg.StartSpeed+progress*c.cfg.Progression.Increment, c.cfg.StartSpeed, c.cfg.MaxSpeed)
}

// Next returns the speed for this tick given the previous one.
// The result never drops below prev, so world speed is monotonic within a run.
func (c SpeedCurve) Next(prev float64, score int, ticks int) float64 {
	return clampF(math.Max(prev, c.Speed(score, ticks)), c.cfg.StartSpeed, c.cfg.MaxSpeed)
}

// Level returns how far speed has progressed from start to max (0.0 to 1.0).
func (c SpeedCurve) Level(speed float64) float64 {
	span := c.cfg.MaxSpeed - c.cfg.StartSpeed
	if span <= 0 {
		return 1.0
	}
	return clampF((speed-c.cfg.StartSpeed)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
