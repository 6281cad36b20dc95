package runner

import (
	"github.com/vovakirdan/unicorn-dash/internal/config"
	"github.com/vovakirdan/unicorn-dash/internal/core"
)

// PlayerState is the movement state of the player.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateDoubleJumping
	StateDucking
	StateDying
	StateDead
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateDoubleJumping:
		return "double_jumping"
	case StateDucking:
		return "ducking"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Airborne reports whether the state is one of the jump states.
func (s PlayerState) Airborne() bool {
	return s == StateJumping || s == StateDoubleJumping
}

// countdown is a per-tick timer that clears its effect at zero.
type countdown int

func (c *countdown) tick() {
	if *c > 0 {
		*c--
	}
}

func (c countdown) active() bool {
	return c > 0
}

// Player is the unicorn: a fixed lane position with vertical physics,
// a jump/duck state machine and power-up status.
type Player struct {
	body config.PlayerConfig
	phys config.DifficultyConfig

	y, vy          float64
	state          PlayerState
	jumpsRemaining int
	duckHeld       bool

	shielded bool
	magnet   countdown
	dying    countdown
	diedAt   int
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(body config.PlayerConfig, phys config.DifficultyConfig) *Player {
	return &Player{
		body:           body,
		phys:           phys,
		state:          StateRunning,
		jumpsRemaining: 2,
		diedAt:         -1,
	}
}

// JumpPressed starts a jump from the ground or a second jump in mid-air.
// It has no effect while ducking, dying, dead or once both jumps are spent.
func (p *Player) JumpPressed() {
	switch {
	case p.state == StateRunning && p.OnGround():
		p.vy = p.phys.JumpImpulse
		p.state = StateJumping
		p.jumpsRemaining = 1
	case p.state.Airborne() && p.jumpsRemaining > 0:
		p.vy = p.phys.DoubleJumpImpulse
		p.state = StateDoubleJumping
		p.jumpsRemaining = 0
	}
}

// DuckHeld sets whether duck is held. Ducking only happens on the ground;
// a duck held in mid-air takes effect on landing. Release is immediate.
func (p *Player) DuckHeld(held bool) {
	if !p.Alive() {
		return
	}
	p.duckHeld = held
	switch {
	case held && p.state == StateRunning && p.OnGround():
		p.state = StateDucking
	case !held && p.state == StateDucking:
		p.state = StateRunning
	}
}

// Tick integrates one step of vertical motion and counts down timers.
// dt is the step length in ticks; the fixed loop passes 1.
func (p *Player) Tick(dt float64) {
	switch p.state {
	case StateDead:
		return
	case StateDying:
		p.fall(dt)
		p.dying.tick()
		if !p.dying.active() {
			p.state = StateDead
		}
		return
	}

	if p.state.Airborne() {
		if landed := p.fall(dt); landed {
			p.jumpsRemaining = 2
			if p.duckHeld {
				p.state = StateDucking
			} else {
				p.state = StateRunning
			}
		}
	}

	p.magnet.tick()
}

// fall applies gravity and reports whether the player touched the ground.
func (p *Player) fall(dt float64) bool {
	if p.OnGround() && p.vy <= 0 {
		p.vy = 0
		return false
	}
	p.vy -= p.phys.Gravity * dt
	if p.vy < -p.body.MaxFallSpeed {
		p.vy = -p.body.MaxFallSpeed
	}
	p.y += p.vy * dt
	if p.y <= 0 {
		p.y = 0
		p.vy = 0
		return true
	}
	return false
}

// Hitbox returns the current collision box: the ducking profile while
// ducking, the standing profile otherwise.
func (p *Player) Hitbox() core.Box {
	if p.state == StateDucking {
		return core.NewBox(p.body.X, p.y, p.body.DuckWidth, p.body.DuckHeight)
	}
	return core.NewBox(p.body.X, p.y, p.body.Width, p.body.StandHeight)
}

// GrantShield activates the shield until it absorbs a hit.
func (p *Player) GrantShield() {
	p.shielded = true
}

// ConsumeShield removes the shield and reports whether one was active.
func (p *Player) ConsumeShield() bool {
	had := p.shielded
	p.shielded = false
	return had
}

// GrantMagnet activates the magnet for the given number of ticks.
// Picking up a magnet while one is active restarts the timer.
func (p *Player) GrantMagnet(ticks int) {
	p.magnet = countdown(ticks)
}

// Die starts the dying tumble. It is a no-op unless the player is alive.
func (p *Player) Die(tick int) {
	if !p.Alive() {
		return
	}
	p.diedAt = tick
	p.shielded = false
	p.magnet = 0
	p.dying = countdown(p.body.DyingTicks)
	if !p.dying.active() {
		p.state = StateDead
		return
	}
	p.state = StateDying
}

// Alive reports whether the player can still act.
func (p *Player) Alive() bool {
	return p.state != StateDying && p.state != StateDead
}

// OnGround reports whether the player is standing on the ground.
func (p *Player) OnGround() bool {
	return p.y <= 0
}

// X returns the lane origin.
func (p *Player) X() float64 { return p.body.X }

// Y returns the height of the hitbox bottom above the ground.
func (p *Player) Y() float64 { return p.y }

func (p *Player) VelocityY() float64 { return p.vy }

func (p *Player) State() PlayerState { return p.state }

func (p *Player) JumpsRemaining() int { return p.jumpsRemaining }

func (p *Player) Shielded() bool { return p.shielded }

func (p *Player) MagnetActive() bool { return p.magnet.active() }

func (p *Player) MagnetTicks() int { return int(p.magnet) }

// DiedAt returns the tick of the lethal hit, or -1 while alive.
func (p *Player) DiedAt() int { return p.diedAt }
