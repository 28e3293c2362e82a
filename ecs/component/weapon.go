package component

import "math"

// WeaponKind names a weapon archetype. Kinds select the firing pattern;
// everything else is data on the Weapon entry.
type WeaponKind string

const (
	WeaponPistol     WeaponKind = "pistol"
	WeaponShotgun    WeaponKind = "shotgun"
	WeaponMachineGun WeaponKind = "machinegun"
	WeaponSniper     WeaponKind = "sniper"
)

// Weapon is one slot in an arsenal. Created once at load with a full
// magazine; never destroyed during a session. Unlocking only toggles
// availability.
type Weapon struct {
	Kind            WeaponKind
	Name            string
	MaxAmmo         int
	Ammo            int
	FireRate        float64 // minimum seconds between accepted shots
	ReloadSeconds   float64
	Damage          int
	ProjectileSpeed float64
	LifeSeconds     float64 // projectile lifetime
	Automatic       bool
	PelletCount     int     // shotgun burst size, 0 for single shot
	SpreadDegrees   float64 // total fan width for pellet bursts
	Unlocked        bool
}

// SpawnRequest asks the projectile collaborator for one projectile with the
// given kinematics. The arsenal never learns whether the spawn succeeded.
type SpawnRequest struct {
	X, Y        float64
	DirX, DirY  float64
	Speed       float64
	Damage      int
	LifeSeconds float64
	Owner       string // faction tag, excludes self-hits
}

// ProjectileSpawner creates projectiles on behalf of a weapon.
type ProjectileSpawner interface {
	Spawn(req SpawnRequest)
}

// ArsenalEvents are fire-and-forget observers bracketing arsenal state
// changes. Any of them may be nil.
type ArsenalEvents struct {
	OnWeaponChanged   func(w *Weapon)
	OnAmmoChanged     func(current, max int)
	OnReloadStarted   func()
	OnReloadCompleted func()
	OnEmptyFire       func()
	OnShotFired       func(w *Weapon)
}

// Arsenal is the weapon system state machine for one actor: active weapon,
// ammo, reload timing, and fire-rate gating. The reload slot is global to
// the arsenal, not per weapon; switching weapons cancels an in-flight reload
// with no partial refill.
type Arsenal struct {
	Weapons []Weapon
	Current int

	SinceLastShot float64
	Reloading     bool
	ReloadElapsed float64

	Events ArsenalEvents
}

// NewArsenal builds an arsenal from the given weapon list, filling every
// magazine. The first unlocked weapon becomes current.
func NewArsenal(weapons []Weapon) *Arsenal {
	a := &Arsenal{
		Weapons:       append([]Weapon(nil), weapons...),
		SinceLastShot: math.MaxFloat64,
	}
	for i := range a.Weapons {
		a.Weapons[i].Ammo = a.Weapons[i].MaxAmmo
	}
	for i := range a.Weapons {
		if a.Weapons[i].Unlocked {
			a.Current = i
			break
		}
	}
	return a
}

// CurrentWeapon returns the active weapon, or nil for an empty arsenal.
func (a *Arsenal) CurrentWeapon() *Weapon {
	if a == nil || a.Current < 0 || a.Current >= len(a.Weapons) {
		return nil
	}
	return &a.Weapons[a.Current]
}

// Tick advances the fire-rate clock and the in-flight reload. A completing
// reload refills the magazine atomically.
func (a *Arsenal) Tick(dt float64) {
	if a == nil || dt <= 0 {
		return
	}
	if a.SinceLastShot < math.MaxFloat64 {
		a.SinceLastShot += dt
	}
	if !a.Reloading {
		return
	}
	w := a.CurrentWeapon()
	if w == nil {
		a.Reloading = false
		return
	}
	a.ReloadElapsed += dt
	if a.ReloadElapsed < w.ReloadSeconds {
		return
	}
	w.Ammo = w.MaxAmmo
	a.Reloading = false
	a.ReloadElapsed = 0
	if a.Events.OnReloadCompleted != nil {
		a.Events.OnReloadCompleted()
	}
	if a.Events.OnAmmoChanged != nil {
		a.Events.OnAmmoChanged(w.Ammo, w.MaxAmmo)
	}
}

// CanFire reports whether a shot would be accepted this tick: not reloading
// and the fire-rate gate has elapsed. Re-evaluated every tick, never cached.
func (a *Arsenal) CanFire() bool {
	w := a.CurrentWeapon()
	if w == nil || a.Reloading {
		return false
	}
	return a.SinceLastShot >= w.FireRate
}

// Shoot attempts one shot from (x, y) toward the facing direction. An empty
// magazine signals OnEmptyFire and leaves ammo and timing untouched.
// Otherwise one ammo unit is spent and the weapon's pattern dispatches one or
// more spawn requests: single shots fire along the horizontal axis, pellet
// bursts fan pellet i at (i - n/2) * (spread/n) degrees off facing. All
// pellets of a burst share the single deducted ammo unit.
func (a *Arsenal) Shoot(x, y float64, facingLeft bool, sp ProjectileSpawner, owner string) bool {
	if a == nil || !a.CanFire() {
		return false
	}
	w := a.CurrentWeapon()
	if w.Ammo <= 0 {
		if a.Events.OnEmptyFire != nil {
			a.Events.OnEmptyFire()
		}
		return false
	}

	w.Ammo--
	a.SinceLastShot = 0

	if sp != nil {
		baseX := 1.0
		if facingLeft {
			baseX = -1.0
		}
		pellets := w.PelletCount
		if pellets <= 1 {
			sp.Spawn(SpawnRequest{
				X: x, Y: y,
				DirX: baseX, DirY: 0,
				Speed:       w.ProjectileSpeed,
				Damage:      w.Damage,
				LifeSeconds: w.LifeSeconds,
				Owner:       owner,
			})
		} else {
			step := w.SpreadDegrees / float64(pellets)
			for i := 0; i < pellets; i++ {
				deg := float64(i-pellets/2) * step
				rad := deg * math.Pi / 180
				sin, cos := math.Sincos(rad)
				sp.Spawn(SpawnRequest{
					X: x, Y: y,
					DirX:        baseX * cos,
					DirY:        baseX * sin,
					Speed:       w.ProjectileSpeed,
					Damage:      w.Damage,
					LifeSeconds: w.LifeSeconds,
					Owner:       owner,
				})
			}
		}
	}

	if a.Events.OnShotFired != nil {
		a.Events.OnShotFired(w)
	}
	if a.Events.OnAmmoChanged != nil {
		a.Events.OnAmmoChanged(w.Ammo, w.MaxAmmo)
	}
	return true
}

// SwitchTo activates the weapon at index. Out-of-range indexes, locked
// entries, and the already-active index are silent no-ops. Switching cancels
// an in-flight reload (timer discarded, no partial refill) and refills the
// newly active weapon's magazine.
func (a *Arsenal) SwitchTo(index int) bool {
	if a == nil || index < 0 || index >= len(a.Weapons) || index == a.Current {
		return false
	}
	if !a.Weapons[index].Unlocked {
		return false
	}
	a.Reloading = false
	a.ReloadElapsed = 0
	a.Current = index
	w := a.CurrentWeapon()
	w.Ammo = w.MaxAmmo
	if a.Events.OnWeaponChanged != nil {
		a.Events.OnWeaponChanged(w)
	}
	if a.Events.OnAmmoChanged != nil {
		a.Events.OnAmmoChanged(w.Ammo, w.MaxAmmo)
	}
	return true
}

// NextWeapon cycles forward to the next unlocked weapon.
func (a *Arsenal) NextWeapon() bool {
	return a.cycle(1)
}

// PrevWeapon cycles backward to the previous unlocked weapon.
func (a *Arsenal) PrevWeapon() bool {
	return a.cycle(-1)
}

func (a *Arsenal) cycle(dir int) bool {
	if a == nil || len(a.Weapons) == 0 {
		return false
	}
	n := len(a.Weapons)
	for step := 1; step < n; step++ {
		i := ((a.Current+dir*step)%n + n) % n
		if a.Weapons[i].Unlocked {
			return a.SwitchTo(i)
		}
	}
	return false
}

// Reload starts refilling the current magazine. Already reloading or a full
// magazine is a silent no-op. Completion after ReloadSeconds refills
// atomically; there is no partial refill.
func (a *Arsenal) Reload() bool {
	w := a.CurrentWeapon()
	if w == nil || a.Reloading || w.Ammo == w.MaxAmmo {
		return false
	}
	a.Reloading = true
	a.ReloadElapsed = 0
	if a.Events.OnReloadStarted != nil {
		a.Events.OnReloadStarted()
	}
	return true
}

// AddAmmo tops up the current magazine, clamped to capacity.
func (a *Arsenal) AddAmmo(amount int) bool {
	w := a.CurrentWeapon()
	if w == nil || amount <= 0 || w.Ammo >= w.MaxAmmo {
		return false
	}
	w.Ammo += amount
	if w.Ammo > w.MaxAmmo {
		w.Ammo = w.MaxAmmo
	}
	if a.Events.OnAmmoChanged != nil {
		a.Events.OnAmmoChanged(w.Ammo, w.MaxAmmo)
	}
	return true
}

// Unlock makes the matching weapon available. It does not switch to it.
func (a *Arsenal) Unlock(kind WeaponKind) bool {
	if a == nil {
		return false
	}
	for i := range a.Weapons {
		if a.Weapons[i].Kind == kind && !a.Weapons[i].Unlocked {
			a.Weapons[i].Unlocked = true
			return true
		}
	}
	return false
}

// ReloadProgress reports the fraction of the in-flight reload completed,
// 0 when idle.
func (a *Arsenal) ReloadProgress() float64 {
	w := a.CurrentWeapon()
	if a == nil || w == nil || !a.Reloading || w.ReloadSeconds <= 0 {
		return 0
	}
	p := a.ReloadElapsed / w.ReloadSeconds
	if p > 1 {
		p = 1
	}
	return p
}
