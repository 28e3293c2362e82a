package component

import (
	"math"
	"testing"
)

func testBrain() *EnemyBrain {
	return &EnemyBrain{
		Health:         30,
		MoveSpeed:      100,
		DetectionRange: 5,
		AttackRange:    1.5,
		PatrolOrigin:   0,
		PatrolDistance: 3,
		WaitSeconds:    0.5,
		Damage:         10,
	}
}

func TestEnemyDecideThresholds(t *testing.T) {
	b := testBrain()
	cases := []struct {
		name     string
		distance float64
		want     EnemyState
	}{
		{"on_top", 0.5, EnemyAttack},
		{"attack_boundary", 1.5, EnemyAttack},
		{"just_past_attack", 1.51, EnemyChase},
		{"chase_boundary", 5, EnemyChase},
		{"just_past_detection", 5.01, EnemyPatrol},
		{"far", 100, EnemyPatrol},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := b.Decide(c.distance); got != c.want {
				t.Fatalf("Decide(%v)=%s, want %s", c.distance, got, c.want)
			}
		})
	}
}

type fakeEnemyBody struct {
	x, y   float64
	vx, vy float64
	spawns []SpawnRequest
}

func (f *fakeEnemyBody) Spawn(req SpawnRequest) {
	f.spawns = append(f.spawns, req)
}

func (f *fakeEnemyBody) ctx(dt float64, targetFound bool, tx, ty float64) *EnemyContext {
	return &EnemyContext{
		Dt:          dt,
		SelfX:       f.x,
		SelfY:       f.y,
		TargetFound: targetFound,
		TargetX:     tx,
		TargetY:     ty,
		GetVelocity: func() (float64, float64) { return f.vx, f.vy },
		SetVelocity: func(x, y float64) { f.vx, f.vy = x, y },
		Spawner:     f,
	}
}

func TestEnemyPatrolBouncesWithWait(t *testing.T) {
	b := testBrain()
	body := &fakeEnemyBody{}

	// Walks toward origin + distance.
	b.Tick(body.ctx(1.0/60, false, 0, 0))
	if body.vx != 100 {
		t.Fatalf("vx=%v, want 100 toward patrol target", body.vx)
	}

	// At the target it waits, then reverses.
	body.x = 3
	b.Tick(body.ctx(1.0/60, false, 0, 0))
	if body.vx != 0 {
		t.Fatalf("vx=%v at patrol target, want 0 during wait", body.vx)
	}
	for i := 0; i < 31; i++ {
		b.Tick(body.ctx(1.0/60, false, 0, 0))
	}
	b.Tick(body.ctx(1.0/60, false, 0, 0))
	if body.vx != -100 {
		t.Fatalf("vx=%v after wait, want -100 back toward origin", body.vx)
	}
}

func TestEnemyChaseMovesTowardTarget(t *testing.T) {
	b := testBrain()
	body := &fakeEnemyBody{x: 0}

	b.Tick(body.ctx(1.0/60, true, 4, 0))
	if b.State != EnemyChase {
		t.Fatalf("state=%s, want chase", b.State)
	}
	if body.vx != 100 || b.FacingLeft {
		t.Fatalf("vx=%v facingLeft=%v, want 100 false", body.vx, b.FacingLeft)
	}

	b.Tick(body.ctx(1.0/60, true, -4, 0))
	if body.vx != -100 || !b.FacingLeft {
		t.Fatalf("vx=%v facingLeft=%v, want -100 true", body.vx, b.FacingLeft)
	}
}

func TestEnemyAttackHaltsAndRangedFires(t *testing.T) {
	b := testBrain()
	b.Ranged = true
	b.FireCooldown = 0.5
	b.ProjectileSpeed = 400
	body := &fakeEnemyBody{vx: 100}

	b.Tick(body.ctx(1.0/60, true, 1, 0))
	if b.State != EnemyAttack {
		t.Fatalf("state=%s, want attack", b.State)
	}
	if body.vx != 0 {
		t.Fatalf("vx=%v in attack, want 0", body.vx)
	}
	if len(body.spawns) != 0 {
		t.Fatal("must not fire before the cooldown elapses")
	}

	ticks := int(math.Ceil(0.5 / (1.0 / 60)))
	for i := 0; i < ticks; i++ {
		b.Tick(body.ctx(1.0/60, true, 1, 0))
	}
	if len(body.spawns) != 1 {
		t.Fatalf("spawns=%d after cooldown, want 1", len(body.spawns))
	}
	req := body.spawns[0]
	if req.Owner != "enemy" || req.DirX != 1 || req.Damage != 10 {
		t.Fatalf("spawn=%+v", req)
	}
}

func TestEnemyMeleeNeverFires(t *testing.T) {
	b := testBrain()
	body := &fakeEnemyBody{}
	for i := 0; i < 120; i++ {
		b.Tick(body.ctx(1.0/60, true, 1, 0))
	}
	if len(body.spawns) != 0 {
		t.Fatalf("melee enemy fired %d projectiles", len(body.spawns))
	}
}

func TestEnemyDeathIsOneWay(t *testing.T) {
	b := testBrain()
	if applied, died := b.TakeDamage(10); !applied || died {
		t.Fatalf("applied=%v died=%v", applied, died)
	}
	if applied, died := b.TakeDamage(20); !applied || !died {
		t.Fatalf("lethal: applied=%v died=%v", applied, died)
	}
	if b.State != EnemyDead || b.Health != 0 {
		t.Fatalf("state=%s health=%d", b.State, b.Health)
	}

	if applied, _ := b.TakeDamage(10); applied {
		t.Fatal("dead brain must reject damage")
	}

	// Proximity no longer changes state.
	body := &fakeEnemyBody{}
	b.Tick(body.ctx(1.0/60, true, 0.1, 0))
	if b.State != EnemyDead {
		t.Fatalf("state=%s after tick, dead is terminal", b.State)
	}
}
