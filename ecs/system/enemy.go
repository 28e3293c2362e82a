package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// EnemySystem ticks every enemy brain against the player's position, turns
// deaths into fading corpses, and advances hit-flash timers.
type EnemySystem struct {
	dt          float64
	spawner     component.ProjectileSpawner
	deadHandled map[int]bool
}

func NewEnemySystem(dt float64, spawner component.ProjectileSpawner) *EnemySystem {
	return &EnemySystem{
		dt:          dt,
		spawner:     spawner,
		deadHandled: make(map[int]bool),
	}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pid := w.Player()
	var targetX, targetY float64
	targetFound := false
	if pid != 0 {
		if mover := w.Movers.Get(pid); mover != nil && !mover.Dead {
			if t := w.Transforms.Get(pid); t != nil {
				targetX, targetY = t.X, t.Y
				targetFound = true
			}
		}
	}

	w.Enemies.ForEach(func(id int, brain *component.EnemyBrain) {
		if brain.State == component.EnemyDead {
			s.handleDeath(w, id, brain)
			return
		}

		t := w.Transforms.Get(id)
		if t == nil {
			return
		}

		brain.Tick(&component.EnemyContext{
			Dt:          s.dt,
			SelfX:       t.X,
			SelfY:       t.Y,
			TargetFound: targetFound,
			TargetX:     targetX,
			TargetY:     targetY,
			GetVelocity: func() (float64, float64) {
				return w.Physics.Velocity(id)
			},
			SetVelocity: func(x, y float64) {
				w.Physics.SetVelocity(id, x, y)
			},
			Spawner: s.spawner,
		})
	})

	// Hit flashes. Idle flashes stay in the store so a later hit can
	// restart them.
	w.Flashes.ForEach(func(_ int, flash *component.WhiteFlash) {
		if flash.Frames > 0 && flash.Tick() {
			flash.On = false
		}
	})

	// Corpse fade and removal.
	for _, id := range append([]int(nil), w.Corpses.Entities()...) {
		corpse := w.Corpses.Get(id)
		if corpse == nil {
			continue
		}
		alpha, done := corpse.Tick(s.dt)
		if box := w.Boxes.Get(id); box != nil {
			box.Fade = alpha
		}
		if done {
			delete(s.deadHandled, id)
			w.DestroyEntity(id)
		}
	}
}

func (s *EnemySystem) handleDeath(w *ecs.World, id int, brain *component.EnemyBrain) {
	if s.deadHandled[id] {
		return
	}
	s.deadHandled[id] = true
	if w.Physics != nil {
		w.Physics.RemoveBody(id)
	}
	w.Flashes.Remove(id)
	w.Corpses.Set(id, component.NewCorpse(brain.DeathDelay))
}
