package system

import (
	"log"

	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

const muzzleOffset = 18.0

// WeaponSystem feeds input into each arsenal and bridges arsenal callbacks
// onto the event bus.
type WeaponSystem struct {
	dt      float64
	spawner component.ProjectileSpawner
	wired   map[int]bool
}

func NewWeaponSystem(dt float64, spawner component.ProjectileSpawner) *WeaponSystem {
	return &WeaponSystem{
		dt:      dt,
		spawner: spawner,
		wired:   make(map[int]bool),
	}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	w.Arsenals.ForEach(func(id int, arsenal *component.Arsenal) {
		if !s.wired[id] {
			s.wire(w, id, arsenal)
			s.wired[id] = true
		}

		arsenal.Tick(s.dt)

		in := w.Inputs.Get(id)
		if in == nil {
			return
		}
		if mover := w.Movers.Get(id); mover != nil && mover.Dead {
			return
		}

		if in.WeaponSlot >= 0 {
			arsenal.SwitchTo(in.WeaponSlot)
		}
		if in.NextWeapon {
			arsenal.NextWeapon()
		}
		if in.PrevWeapon {
			arsenal.PrevWeapon()
		}
		if in.ReloadPressed {
			arsenal.Reload()
		}

		weapon := arsenal.CurrentWeapon()
		if weapon == nil {
			return
		}
		wantFire := in.FirePressed
		if weapon.Automatic {
			wantFire = in.Fire
		}
		if !wantFire {
			return
		}

		x, y, facingLeft := s.muzzle(w, id)
		arsenal.Shoot(x, y, facingLeft, s.spawner, "player")
	})
}

// muzzle computes the projectile origin just outside the shooter's collider.
// A missing transform is tolerated with a logged fallback at the physics body
// position so a misbuilt entity still fires.
func (s *WeaponSystem) muzzle(w *ecs.World, id int) (x, y float64, facingLeft bool) {
	if mover := w.Movers.Get(id); mover != nil {
		facingLeft = mover.FacingLeft
	}

	t := w.Transforms.Get(id)
	if t == nil {
		log.Printf("weapon: entity=%d has no transform, firing from body position", id)
		if w.Physics != nil {
			x, y, _ = w.Physics.BodyPosition(id)
		}
	} else {
		x, y = t.X, t.Y
	}

	offset := muzzleOffset
	if c := w.Colliders.Get(id); c != nil {
		offset = c.Width/2 + 6
	}
	if facingLeft {
		x -= offset
	} else {
		x += offset
	}
	return x, y, facingLeft
}

func (s *WeaponSystem) wire(w *ecs.World, id int, arsenal *component.Arsenal) {
	arsenal.Events = component.ArsenalEvents{
		OnWeaponChanged: func(weapon *component.Weapon) {
			w.Bus.Publish(ecs.Event{
				Kind:   ecs.EventWeaponChanged,
				Entity: id,
				Data:   ecs.WeaponPayload{Kind: string(weapon.Kind), Name: weapon.Name},
			})
		},
		OnAmmoChanged: func(current, max int) {
			w.Bus.Publish(ecs.Event{
				Kind:   ecs.EventAmmoChanged,
				Entity: id,
				Data:   ecs.AmmoPayload{Current: current, Max: max},
			})
		},
		OnReloadStarted: func() {
			w.Bus.Publish(ecs.Event{Kind: ecs.EventReloadStarted, Entity: id})
		},
		OnReloadCompleted: func() {
			w.Bus.Publish(ecs.Event{Kind: ecs.EventReloadCompleted, Entity: id})
		},
		OnEmptyFire: func() {
			w.Bus.Publish(ecs.Event{Kind: ecs.EventEmptyFire, Entity: id})
		},
		OnShotFired: func(weapon *component.Weapon) {
			w.Bus.Publish(ecs.Event{
				Kind:   ecs.EventShotFired,
				Entity: id,
				Data:   ecs.WeaponPayload{Kind: string(weapon.Kind), Name: weapon.Name},
			})
		},
	}
}
