package component

import "math"

// facingDeadzone is the input magnitude below which facing does not flip.
const facingDeadzone = 0.01

// MoverConfig is the tuning block for a Mover, loaded from the player prefab.
type MoverConfig struct {
	MoveSpeed     float64
	JumpSpeed     float64
	MaxJumps      int
	MaxHealth     int
	InvincibleFor float64 // seconds of invincibility after a hit
	GroundProbe   float64 // downward ground-check distance
}

// Mover owns grounded detection, horizontal velocity, jump count, and
// health/invincibility timing for an actor. All timed behavior advances in
// Tick; nothing blocks.
//
// Lifecycle: Alive (grounded or airborne) until health reaches zero, then
// Dead. Dead is terminal; Tick ignores input from then on.
type Mover struct {
	Config MoverConfig

	Grounded     bool
	JumpsLeft    int
	Health       int
	Invincible   float64 // seconds remaining, 0 when vulnerable
	FacingLeft   bool
	Dead         bool
	wasGrounded  bool
	groundedInit bool
}

// MoverContext carries the per-tick collaborators a Mover needs. Callbacks
// keep the state machine decoupled from the physics space, the same way the
// player states receive closures instead of world references.
type MoverContext struct {
	Dt          float64
	MoveX       float64
	JumpPressed bool

	// ProbeGround casts the downward ground probe. Polled every tick; it is
	// the sole source of truth for landing detection. SensorGrounded is the
	// redundant collision-callback signal, consulted only when the probe
	// misses (fast falls can tunnel past a short probe in one step).
	ProbeGround    func() bool
	SensorGrounded func() bool

	GetVelocity func() (x, y float64)
	SetVelocity func(x, y float64)

	OnLanded func()
	OnJumped func()
}

// NewMover creates a Mover with full health and jumps.
func NewMover(cfg MoverConfig) *Mover {
	if cfg.MaxJumps <= 0 {
		cfg.MaxJumps = 1
	}
	if cfg.MaxHealth <= 0 {
		cfg.MaxHealth = 1
	}
	return &Mover{
		Config:    cfg,
		JumpsLeft: cfg.MaxJumps,
		Health:    cfg.MaxHealth,
	}
}

// Tick advances the movement state machine one simulation step. Order within
// the tick is fixed: ground detection first, then jump handling, then
// horizontal movement, so jump decisions always see this tick's grounded
// result.
func (m *Mover) Tick(ctx *MoverContext) {
	if m == nil || ctx == nil {
		return
	}

	m.tickInvincibility(ctx.Dt)

	if m.Dead {
		return
	}

	grounded := false
	if ctx.ProbeGround != nil {
		grounded = ctx.ProbeGround()
	}
	if !grounded && ctx.SensorGrounded != nil {
		grounded = ctx.SensorGrounded()
	}
	m.Grounded = grounded

	// Landing edge: jumps reset only on the false->true transition, never
	// while airborne and never on repeated grounded ticks.
	if grounded && m.groundedInit && !m.wasGrounded {
		m.JumpsLeft = m.Config.MaxJumps
		if ctx.OnLanded != nil {
			ctx.OnLanded()
		}
	}
	if !m.groundedInit {
		m.groundedInit = true
		if grounded {
			m.JumpsLeft = m.Config.MaxJumps
		}
	}
	m.wasGrounded = grounded

	if ctx.GetVelocity == nil || ctx.SetVelocity == nil {
		return
	}

	vx, vy := ctx.GetVelocity()

	if ctx.JumpPressed && m.JumpsLeft > 0 {
		m.JumpsLeft--
		// Overwrite rather than add, so a double jump fully resets upward
		// speed instead of stacking on residual velocity.
		vy = -m.Config.JumpSpeed
		if ctx.OnJumped != nil {
			ctx.OnJumped()
		}
	}

	vx = ctx.MoveX * m.Config.MoveSpeed
	ctx.SetVelocity(vx, vy)

	if math.Abs(ctx.MoveX) > facingDeadzone {
		m.FacingLeft = ctx.MoveX < 0
	}
}

func (m *Mover) tickInvincibility(dt float64) {
	if m.Invincible <= 0 {
		return
	}
	m.Invincible -= dt
	if m.Invincible < 0 {
		m.Invincible = 0
	}
}

// IsInvincible reports whether damage is currently rejected.
func (m *Mover) IsInvincible() bool {
	return m != nil && m.Invincible > 0
}

// TakeDamage applies amount and starts the invincibility window. It is a
// no-op while the window is open: the timer is never restarted by repeated
// hazard contact, so one hit lands per window. Returns true if damage was
// applied; died reports whether this hit was fatal.
func (m *Mover) TakeDamage(amount int) (applied, died bool) {
	if m == nil || m.Dead || amount <= 0 {
		return false, false
	}
	if m.IsInvincible() {
		return false, false
	}
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}
	m.Invincible = m.Config.InvincibleFor
	if m.Health == 0 {
		m.Dead = true
		return true, true
	}
	return true, false
}

// Heal restores health up to the configured maximum.
func (m *Mover) Heal(amount int) {
	if m == nil || m.Dead || amount <= 0 {
		return
	}
	m.Health += amount
	if m.Health > m.Config.MaxHealth {
		m.Health = m.Config.MaxHealth
	}
}
