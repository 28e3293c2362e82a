package component

import "testing"

type fakeBody struct {
	vx, vy   float64
	grounded bool
}

func (f *fakeBody) ctx(dt, moveX float64, jumpPressed bool) *MoverContext {
	return &MoverContext{
		Dt:          dt,
		MoveX:       moveX,
		JumpPressed: jumpPressed,
		ProbeGround: func() bool { return f.grounded },
		GetVelocity: func() (float64, float64) { return f.vx, f.vy },
		SetVelocity: func(x, y float64) { f.vx, f.vy = x, y },
	}
}

func testMover() *Mover {
	return NewMover(MoverConfig{
		MoveSpeed:     200,
		JumpSpeed:     500,
		MaxJumps:      2,
		MaxHealth:     100,
		InvincibleFor: 1.0,
		GroundProbe:   6,
	})
}

func TestMoverJumpCount(t *testing.T) {
	m := testMover()
	body := &fakeBody{grounded: true}

	// Settle grounded.
	m.Tick(body.ctx(1.0/60, 0, false))
	if !m.Grounded || m.JumpsLeft != 2 {
		t.Fatalf("grounded=%v jumpsLeft=%d, want true 2", m.Grounded, m.JumpsLeft)
	}

	// First jump leaves the ground.
	m.Tick(body.ctx(1.0/60, 0, true))
	if m.JumpsLeft != 1 {
		t.Fatalf("jumpsLeft=%d after first jump, want 1", m.JumpsLeft)
	}
	if body.vy != -500 {
		t.Fatalf("vy=%v after jump, want -500", body.vy)
	}

	// Second jump mid-air overwrites residual velocity.
	body.grounded = false
	body.vy = 300
	m.Tick(body.ctx(1.0/60, 0, true))
	if m.JumpsLeft != 0 {
		t.Fatalf("jumpsLeft=%d after double jump, want 0", m.JumpsLeft)
	}
	if body.vy != -500 {
		t.Fatalf("vy=%v, double jump must overwrite, want -500", body.vy)
	}

	// Third press is rejected.
	body.vy = 100
	m.Tick(body.ctx(1.0/60, 0, true))
	if m.JumpsLeft != 0 || body.vy != 100 {
		t.Fatalf("third jump must be rejected: jumpsLeft=%d vy=%v", m.JumpsLeft, body.vy)
	}
}

func TestMoverJumpsResetOnlyOnLandingEdge(t *testing.T) {
	m := testMover()
	body := &fakeBody{grounded: true}

	m.Tick(body.ctx(1.0/60, 0, false))
	m.Tick(body.ctx(1.0/60, 0, true)) // jump, now airborne
	body.grounded = false
	for i := 0; i < 10; i++ {
		m.Tick(body.ctx(1.0/60, 0, false))
	}
	if m.JumpsLeft != 1 {
		t.Fatalf("airborne ticks must not restore jumps, jumpsLeft=%d", m.JumpsLeft)
	}

	body.grounded = true
	m.Tick(body.ctx(1.0/60, 0, false))
	if m.JumpsLeft != 2 {
		t.Fatalf("landing edge must restore jumps, jumpsLeft=%d", m.JumpsLeft)
	}

	// Repeated grounded ticks after a jump consume normally.
	m.Tick(body.ctx(1.0/60, 0, true))
	m.Tick(body.ctx(1.0/60, 0, false))
	if m.JumpsLeft != 1 {
		t.Fatalf("staying grounded must not re-grant jumps, jumpsLeft=%d", m.JumpsLeft)
	}
}

func TestMoverHorizontalAndFacing(t *testing.T) {
	m := testMover()
	body := &fakeBody{grounded: true}

	m.Tick(body.ctx(1.0/60, -1, false))
	if body.vx != -200 {
		t.Fatalf("vx=%v, want -200", body.vx)
	}
	if !m.FacingLeft {
		t.Fatal("facing must flip left")
	}

	// Zero input stops but keeps facing.
	m.Tick(body.ctx(1.0/60, 0, false))
	if body.vx != 0 || !m.FacingLeft {
		t.Fatalf("vx=%v facingLeft=%v, want 0 true", body.vx, m.FacingLeft)
	}
}

func TestMoverDamageAndInvincibility(t *testing.T) {
	m := testMover()

	applied, died := m.TakeDamage(30)
	if !applied || died {
		t.Fatalf("first hit: applied=%v died=%v", applied, died)
	}
	if m.Health != 70 || !m.IsInvincible() {
		t.Fatalf("health=%d invincible=%v", m.Health, m.IsInvincible())
	}

	// Hits inside the window are rejected and do not restart it.
	before := m.Invincible
	if applied, _ := m.TakeDamage(30); applied {
		t.Fatal("hit during invincibility must be a no-op")
	}
	if m.Invincible != before {
		t.Fatal("rejected hit must not restart the window")
	}

	// Window expires over ticks.
	body := &fakeBody{grounded: true}
	for i := 0; i < 61; i++ {
		m.Tick(body.ctx(1.0/60, 0, false))
	}
	if m.IsInvincible() {
		t.Fatalf("window must expire, remaining=%v", m.Invincible)
	}

	if applied, _ := m.TakeDamage(30); !applied {
		t.Fatal("hit after window must land")
	}
}

func TestMoverDeathIsTerminal(t *testing.T) {
	m := testMover()
	m.Invincible = 0

	m.Health = 10
	applied, died := m.TakeDamage(25)
	if !applied || !died {
		t.Fatalf("lethal hit: applied=%v died=%v", applied, died)
	}
	if m.Health != 0 || !m.Dead {
		t.Fatalf("health=%d dead=%v", m.Health, m.Dead)
	}

	if applied, _ := m.TakeDamage(5); applied {
		t.Fatal("dead mover must reject damage")
	}
	m.Heal(50)
	if m.Health != 0 {
		t.Fatal("dead mover must reject healing")
	}

	// Input is ignored after death.
	body := &fakeBody{grounded: true, vx: 0}
	m.Tick(body.ctx(1.0/60, 1, true))
	if body.vx != 0 {
		t.Fatalf("dead mover must not steer, vx=%v", body.vx)
	}
}
