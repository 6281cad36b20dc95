package runner

import (
	"testing"

	"github.com/vovakirdan/unicorn-dash/internal/config"
)

func newTestPlayer() *Player {
	cfg := config.DefaultConfig()
	return NewPlayer(cfg.Player, cfg.Difficulties.Easy)
}

// tickUntilLanded ticks until the player is back on the ground.
func tickUntilLanded(t *testing.T, p *Player) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		p.Tick(1)
		if p.OnGround() && !p.State().Airborne() {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestPlayerDoubleJump(t *testing.T) {
	p := newTestPlayer()

	if p.JumpsRemaining() != 2 {
		t.Fatalf("JumpsRemaining() = %d at start, expected 2", p.JumpsRemaining())
	}

	p.JumpPressed()
	if p.State() != StateJumping || p.JumpsRemaining() != 1 {
		t.Fatalf("after first jump: state=%s jumps=%d, expected jumping/1", p.State(), p.JumpsRemaining())
	}

	for i := 0; i < 5; i++ {
		p.Tick(1)
	}
	if p.OnGround() {
		t.Fatal("player should be airborne after jumping")
	}

	p.JumpPressed()
	if p.State() != StateDoubleJumping || p.JumpsRemaining() != 0 {
		t.Fatalf("after second jump: state=%s jumps=%d, expected double_jumping/0", p.State(), p.JumpsRemaining())
	}

	p.Tick(1)
	vy := p.VelocityY()
	p.JumpPressed()
	if p.VelocityY() != vy || p.JumpsRemaining() != 0 || p.State() != StateDoubleJumping {
		t.Error("third jump before landing should have no effect")
	}

	tickUntilLanded(t, p)
	if p.State() != StateRunning || p.JumpsRemaining() != 2 {
		t.Errorf("after landing: state=%s jumps=%d, expected running/2", p.State(), p.JumpsRemaining())
	}
}

func TestPlayerJumpsResetOnlyOnLanding(t *testing.T) {
	p := newTestPlayer()
	p.JumpPressed()

	for !p.OnGround() || p.State().Airborne() {
		if p.JumpsRemaining() != 1 {
			t.Fatalf("jumpsRemaining changed mid-air to %d", p.JumpsRemaining())
		}
		p.Tick(1)
	}
	if p.JumpsRemaining() != 2 {
		t.Errorf("JumpsRemaining() = %d after landing, expected 2", p.JumpsRemaining())
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 600; i++ {
		if i%37 == 0 {
			p.JumpPressed()
		}
		if i%37 == 12 {
			p.JumpPressed()
		}
		p.DuckHeld(i%90 > 70)
		p.Tick(1)
		if p.Y() < 0 {
			t.Fatalf("tick %d: y = %v, fell through the ground", i, p.Y())
		}
	}
}

func TestPlayerDuckGroundOnly(t *testing.T) {
	p := newTestPlayer()

	p.DuckHeld(true)
	if p.State() != StateDucking {
		t.Fatalf("State() = %s, expected ducking on the ground", p.State())
	}
	standing := newTestPlayer().Hitbox()
	if p.Hitbox().H >= standing.H {
		t.Errorf("ducking hitbox height %v should be below standing %v", p.Hitbox().H, standing.H)
	}

	p.JumpPressed()
	if p.State() != StateDucking || !p.OnGround() {
		t.Error("jump should have no effect while ducking")
	}

	p.DuckHeld(false)
	if p.State() != StateRunning || p.Hitbox() != standing {
		t.Error("releasing duck should restore the standing state and hitbox instantly")
	}
}

func TestPlayerDuckHeldMidAirAppliesOnLanding(t *testing.T) {
	p := newTestPlayer()
	p.JumpPressed()
	p.Tick(1)

	p.DuckHeld(true)
	if p.State() != StateJumping {
		t.Fatalf("State() = %s, duck must not take effect mid-air", p.State())
	}

	tickUntilLanded(t, p)
	if p.State() != StateDucking {
		t.Errorf("State() = %s after landing with duck held, expected ducking", p.State())
	}
}

func TestPlayerMagnetCountdown(t *testing.T) {
	p := newTestPlayer()
	p.GrantMagnet(3)

	for i := 0; i < 2; i++ {
		p.Tick(1)
		if !p.MagnetActive() {
			t.Fatalf("magnet cleared early at tick %d", i+1)
		}
	}
	p.Tick(1)
	if p.MagnetActive() {
		t.Error("magnet should clear when its countdown reaches zero")
	}
}

func TestPlayerShieldNotTimeLimited(t *testing.T) {
	p := newTestPlayer()
	p.GrantShield()

	for i := 0; i < 10000; i++ {
		p.Tick(1)
	}
	if !p.Shielded() {
		t.Fatal("shield should last until consumed")
	}
	if !p.ConsumeShield() || p.Shielded() {
		t.Error("ConsumeShield should report and clear the shield")
	}
	if p.ConsumeShield() {
		t.Error("ConsumeShield on an unshielded player should report false")
	}
}

func TestPlayerDyingThenDead(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player, cfg.Difficulties.Normal)

	p.JumpPressed()
	for i := 0; i < 5; i++ {
		p.Tick(1)
	}
	p.Die(42)

	if p.State() != StateDying || p.DiedAt() != 42 {
		t.Fatalf("after Die: state=%s diedAt=%d, expected dying/42", p.State(), p.DiedAt())
	}

	p.JumpPressed()
	p.DuckHeld(true)
	if p.State() != StateDying {
		t.Error("intents must be ignored while dying")
	}

	for i := 0; i < cfg.Player.DyingTicks-1; i++ {
		p.Tick(1)
		if p.State() != StateDying {
			t.Fatalf("left dying state early at tick %d", i+1)
		}
		if p.Y() < 0 {
			t.Fatalf("dying player fell through the ground: y=%v", p.Y())
		}
	}
	p.Tick(1)
	if p.State() != StateDead {
		t.Errorf("State() = %s after the tumble, expected dead", p.State())
	}

	p.Die(99)
	if p.DiedAt() != 42 {
		t.Error("Die on a dead player should be a no-op")
	}
}
