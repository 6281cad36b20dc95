// Package runner implements the Unicorn Dash simulation: the fixed-step clock,
// the player physics and state machine, the obstacle spawner, collision and
// power-up resolution, scoring, and the Session that ties them together.
//
// World coordinates: x grows to the right, y is height above the ground (y=0).
// Speeds are world units per tick.
package runner

import "time"

// Clock advances simulation time in fixed steps, independent of how often
// the front end renders.
type Clock struct {
	step     time.Duration
	maxFrame time.Duration
	acc      time.Duration
	tick     int
	paused   bool
}

// NewClock creates a clock running tickRate steps per second. Frames longer
// than maxFrame are clamped so a stall never triggers a catch-up burst.
func NewClock(tickRate int, maxFrame time.Duration) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	step := time.Second / time.Duration(tickRate)
	if maxFrame < step {
		maxFrame = step
	}
	return &Clock{step: step, maxFrame: maxFrame}
}

// Accumulate adds wall-clock time and returns how many fixed steps are due.
// A paused clock ignores elapsed time entirely.
func (c *Clock) Accumulate(elapsed time.Duration) int {
	if c.paused || elapsed <= 0 {
		return 0
	}
	if elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.acc += elapsed

	steps := int(c.acc / c.step)
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// Advance moves the clock forward by one step and returns the new tick number.
func (c *Clock) Advance() int {
	c.tick++
	return c.tick
}

// Tick returns the number of steps taken so far.
func (c *Clock) Tick() int {
	return c.tick
}

// Step returns the fixed step duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// Alpha returns how far the accumulator is into the next step (0.0 to 1.0),
// for render interpolation.
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Pause freezes simulated time and drops any partial step.
func (c *Clock) Pause() {
	c.paused = true
	c.acc = 0
}

// Resume restarts simulated time.
func (c *Clock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}
