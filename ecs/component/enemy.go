package component

import "math"

// EnemyState is one of the live AI states, plus the terminal Dead.
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyChase
	EnemyAttack
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// patrolArriveDistance is how close to the patrol target counts as arrival.
const patrolArriveDistance = 0.5

// EnemyBrain is a patrol/chase/attack state machine. The live state is a
// pure function of distance-to-target re-evaluated every tick; there is no
// hysteresis band. Death is a one-way transition driven by TakeDamage,
// independent of the three live states.
type EnemyBrain struct {
	Health         int
	MoveSpeed      float64
	DetectionRange float64
	AttackRange    float64

	PatrolOrigin   float64
	PatrolDistance float64
	WaitSeconds    float64

	// Ranged enemies fire one projectile per cooldown while attacking.
	Ranged          bool
	FireCooldown    float64
	ProjectileSpeed float64
	Damage          int

	DeathDelay float64 // corpse linger before removal
	ScoreValue int

	State        EnemyState
	FacingLeft   bool
	patrolTarget float64
	patrolInit   bool
	waitFor      float64
	sinceShot    float64
}

// EnemyContext carries per-tick collaborators for an EnemyBrain.
type EnemyContext struct {
	Dt float64

	SelfX, SelfY     float64
	TargetFound      bool
	TargetX, TargetY float64

	GetVelocity func() (x, y float64)
	SetVelocity func(x, y float64)
	Spawner     ProjectileSpawner
}

// Decide maps a distance to the live state for this brain's thresholds.
// Pure; Tick uses it every step.
func (b *EnemyBrain) Decide(distance float64) EnemyState {
	if distance <= b.AttackRange {
		return EnemyAttack
	}
	if distance <= b.DetectionRange {
		return EnemyChase
	}
	return EnemyPatrol
}

// Tick advances the AI one simulation step.
func (b *EnemyBrain) Tick(ctx *EnemyContext) {
	if b == nil || ctx == nil || b.State == EnemyDead {
		return
	}
	if !b.patrolInit {
		b.patrolInit = true
		b.patrolTarget = b.PatrolOrigin + b.PatrolDistance
	}

	if ctx.TargetFound {
		dist := math.Hypot(ctx.TargetX-ctx.SelfX, ctx.TargetY-ctx.SelfY)
		b.State = b.Decide(dist)
	} else {
		b.State = EnemyPatrol
	}

	switch b.State {
	case EnemyPatrol:
		b.patrol(ctx)
	case EnemyChase:
		b.chase(ctx)
	case EnemyAttack:
		b.attack(ctx)
	}
}

func (b *EnemyBrain) patrol(ctx *EnemyContext) {
	if ctx.GetVelocity == nil || ctx.SetVelocity == nil {
		return
	}
	_, vy := ctx.GetVelocity()

	if b.waitFor > 0 {
		b.waitFor -= ctx.Dt
		ctx.SetVelocity(0, vy)
		if b.waitFor <= 0 {
			b.waitFor = 0
			b.reverse()
		}
		return
	}

	dx := b.patrolTarget - ctx.SelfX
	if math.Abs(dx) <= patrolArriveDistance {
		b.waitFor = b.WaitSeconds
		if b.waitFor <= 0 {
			b.reverse()
		}
		ctx.SetVelocity(0, vy)
		return
	}

	dir := 1.0
	if dx < 0 {
		dir = -1
	}
	b.FacingLeft = dir < 0
	ctx.SetVelocity(dir*b.MoveSpeed, vy)
}

func (b *EnemyBrain) reverse() {
	if b.patrolTarget > b.PatrolOrigin {
		b.patrolTarget = b.PatrolOrigin - b.PatrolDistance
	} else {
		b.patrolTarget = b.PatrolOrigin + b.PatrolDistance
	}
}

func (b *EnemyBrain) chase(ctx *EnemyContext) {
	if ctx.GetVelocity == nil || ctx.SetVelocity == nil {
		return
	}
	_, vy := ctx.GetVelocity()
	dx := ctx.TargetX - ctx.SelfX
	dir := 0.0
	if math.Abs(dx) > 0.001 {
		dir = 1
		if dx < 0 {
			dir = -1
		}
		b.FacingLeft = dir < 0
	}
	ctx.SetVelocity(dir*b.MoveSpeed, vy)
}

func (b *EnemyBrain) attack(ctx *EnemyContext) {
	if ctx.GetVelocity != nil && ctx.SetVelocity != nil {
		_, vy := ctx.GetVelocity()
		ctx.SetVelocity(0, vy)
	}
	b.FacingLeft = ctx.TargetX < ctx.SelfX

	if !b.Ranged {
		// Melee variants deal damage through body contact; nothing to do.
		return
	}
	b.sinceShot += ctx.Dt
	if b.sinceShot < b.FireCooldown || ctx.Spawner == nil {
		return
	}
	b.sinceShot = 0
	dirX := 1.0
	if b.FacingLeft {
		dirX = -1
	}
	ctx.Spawner.Spawn(SpawnRequest{
		X: ctx.SelfX, Y: ctx.SelfY,
		DirX: dirX, DirY: 0,
		Speed:       b.ProjectileSpeed,
		Damage:      b.Damage,
		LifeSeconds: 2,
		Owner:       "enemy",
	})
}

// TakeDamage applies amount and reports whether this hit was fatal. Dead
// brains reject further damage.
func (b *EnemyBrain) TakeDamage(amount int) (applied, died bool) {
	if b == nil || b.State == EnemyDead || amount <= 0 {
		return false, false
	}
	b.Health -= amount
	if b.Health > 0 {
		return true, false
	}
	b.Health = 0
	b.State = EnemyDead
	return true, true
}
