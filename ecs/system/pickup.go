package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// PickupSystem applies pickups the player overlapped during the physics
// step and removes them from the level.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil || w.Physics == nil {
		return
	}

	pid := w.Player()
	if pid == 0 {
		return
	}

	for _, itemID := range w.Physics.DrainPickupTouches(pid) {
		pickup := w.Pickups.Get(itemID)
		if pickup == nil {
			continue
		}
		if !s.apply(w, pid, pickup) {
			continue
		}
		w.Bus.Publish(ecs.Event{
			Kind:   ecs.EventPickupCollected,
			Entity: pid,
			Data:   *pickup,
		})
		w.DestroyEntity(itemID)
	}
}

// apply returns false when the pickup had no effect, in which case it stays
// in the level (topping up a full magazine, healing at full health).
func (s *PickupSystem) apply(w *ecs.World, pid int, pickup *component.Pickup) bool {
	switch pickup.Kind {
	case component.PickupAmmo:
		arsenal := w.Arsenals.Get(pid)
		return arsenal != nil && arsenal.AddAmmo(pickup.Amount)
	case component.PickupHealth:
		mover := w.Movers.Get(pid)
		if mover == nil || mover.Dead || mover.Health >= mover.Config.MaxHealth {
			return false
		}
		mover.Heal(pickup.Amount)
		return true
	case component.PickupWeapon:
		arsenal := w.Arsenals.Get(pid)
		return arsenal != nil && arsenal.Unlock(pickup.Weapon)
	case component.PickupCoin:
		return true
	}
	return false
}
