package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// ContactSystem converts the contact records collected during the physics
// step into damage: hazard tiles and enemy bodies both hurt the player. The
// invincibility window inside the Mover decides whether touch actually
// lands, so standing in a hazard takes one hit per window, not one per tick.
type ContactSystem struct {
	hazardDamage int
}

func NewContactSystem(hazardDamage int) *ContactSystem {
	return &ContactSystem{hazardDamage: hazardDamage}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil || w.Physics == nil {
		return
	}

	pid := w.Player()
	if pid == 0 {
		return
	}
	mover := w.Movers.Get(pid)
	if mover == nil || mover.Dead {
		return
	}

	if w.Physics.HazardContact(pid) {
		s.hurt(w, pid, mover, s.hazardDamage)
	}

	for _, eid := range w.Physics.DrainEnemyTouches(pid) {
		brain := w.Enemies.Get(eid)
		if brain == nil || brain.State == component.EnemyDead {
			continue
		}
		if s.hurt(w, pid, mover, brain.Damage) {
			break
		}
	}
}

func (s *ContactSystem) hurt(w *ecs.World, pid int, mover *component.Mover, amount int) bool {
	applied, died := mover.TakeDamage(amount)
	if !applied {
		return false
	}
	w.Bus.Publish(ecs.Event{Kind: ecs.EventDamaged, Entity: pid})
	if died {
		w.Bus.Publish(ecs.Event{Kind: ecs.EventDied, Entity: pid})
	}
	return true
}
