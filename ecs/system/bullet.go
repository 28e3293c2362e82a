package system

import (
	"image/color"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

const (
	bulletSize   = 6.0
	ownerPlayer  = "player"
	ownerEnemy   = "enemy"
	boundsMargin = 64.0
)

// BulletSystem owns projectiles end to end: it implements the spawner
// interface handed to arsenals and enemy brains, integrates bullet motion
// outside the physics space, and resolves wall and body hits.
type BulletSystem struct {
	dt             float64
	world          *ecs.World
	levelW, levelH float64
}

func NewBulletSystem(dt float64, w *ecs.World, levelW, levelH float64) *BulletSystem {
	return &BulletSystem{dt: dt, world: w, levelW: levelW, levelH: levelH}
}

// Spawn creates a bullet entity for the request. Fire-and-forget; the caller
// never learns the entity id.
func (s *BulletSystem) Spawn(req component.SpawnRequest) {
	if s == nil || s.world == nil {
		return
	}
	e := s.world.CreateEntity()
	s.world.Transforms.Set(e.ID, &component.Transform{X: req.X, Y: req.Y})
	s.world.Bullets.Set(e.ID, &component.Bullet{
		Damage:      req.Damage,
		LifeSeconds: req.LifeSeconds,
		Owner:       req.Owner,
		VX:          req.DirX * req.Speed,
		VY:          req.DirY * req.Speed,
	})

	clr := color.NRGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}
	if req.Owner == ownerEnemy {
		clr = color.NRGBA{R: 0xff, G: 0x66, B: 0x44, A: 0xff}
	}
	s.world.Boxes.Set(e.ID, &component.Box{
		Width:  bulletSize,
		Height: bulletSize,
		Color:  clr,
		Layer:  2,
	})
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ids := append([]int(nil), w.Bullets.Entities()...)
	for _, id := range ids {
		b := w.Bullets.Get(id)
		t := w.Transforms.Get(id)
		if b == nil || t == nil {
			w.DestroyEntity(id)
			continue
		}

		b.Age += s.dt
		if b.Expired() {
			w.DestroyEntity(id)
			continue
		}

		nx := t.X + b.VX*s.dt
		ny := t.Y + b.VY*s.dt

		if w.Physics != nil && w.Physics.SegmentHitsSolid(t.X, t.Y, nx, ny) {
			w.DestroyEntity(id)
			continue
		}

		t.X, t.Y = nx, ny

		if t.X < -boundsMargin || t.X > s.levelW+boundsMargin ||
			t.Y < -boundsMargin || t.Y > s.levelH+boundsMargin {
			w.DestroyEntity(id)
			continue
		}

		if s.resolveHit(w, id, b, t) {
			w.DestroyEntity(id)
		}
	}
}

// resolveHit checks the bullet against opposing hurtboxes and applies damage
// on overlap. Returns true when the bullet was consumed.
func (s *BulletSystem) resolveHit(w *ecs.World, _ int, b *component.Bullet, t *component.Transform) bool {
	bulletRect := common.Rect{
		X:      t.X - bulletSize/2,
		Y:      t.Y - bulletSize/2,
		Width:  bulletSize,
		Height: bulletSize,
	}

	hit := false
	switch b.Owner {
	case ownerPlayer:
		w.Enemies.ForEach(func(eid int, brain *component.EnemyBrain) {
			if hit || brain.State == component.EnemyDead {
				return
			}
			if !s.overlaps(w, eid, bulletRect) {
				return
			}
			applied, died := brain.TakeDamage(b.Damage)
			if !applied {
				return
			}
			hit = true
			w.Bus.Publish(ecs.Event{Kind: ecs.EventEnemyHit, Entity: eid})
			if flash := w.Flashes.Get(eid); flash != nil {
				flash.Start()
			}
			if died {
				w.Bus.Publish(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: eid})
			}
		})
	case ownerEnemy:
		pid := w.Player()
		if pid == 0 || !s.overlaps(w, pid, bulletRect) {
			return false
		}
		mover := w.Movers.Get(pid)
		if mover == nil {
			return false
		}
		applied, died := mover.TakeDamage(b.Damage)
		// An invincible player still absorbs the bullet.
		hit = true
		if applied {
			w.Bus.Publish(ecs.Event{Kind: ecs.EventDamaged, Entity: pid})
		}
		if died {
			w.Bus.Publish(ecs.Event{Kind: ecs.EventDied, Entity: pid})
		}
	}
	return hit
}

func (s *BulletSystem) overlaps(w *ecs.World, id int, r common.Rect) bool {
	t := w.Transforms.Get(id)
	c := w.Colliders.Get(id)
	if t == nil || c == nil {
		return false
	}
	body := common.Rect{
		X:      t.X - c.Width/2,
		Y:      t.Y - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
	return body.Overlaps(r)
}
