package component

import (
	"math"
	"testing"
)

type recordingSpawner struct {
	requests []SpawnRequest
}

func (r *recordingSpawner) Spawn(req SpawnRequest) {
	r.requests = append(r.requests, req)
}

func testWeapons() []Weapon {
	return []Weapon{
		{Kind: WeaponPistol, Name: "Pistol", MaxAmmo: 8, FireRate: 0.25, ReloadSeconds: 1.0, Damage: 10, ProjectileSpeed: 900, LifeSeconds: 1, Unlocked: true},
		{Kind: WeaponShotgun, Name: "Shotgun", MaxAmmo: 6, FireRate: 0.8, ReloadSeconds: 1.8, Damage: 6, ProjectileSpeed: 750, LifeSeconds: 0.5, PelletCount: 5, SpreadDegrees: 30, Unlocked: true},
		{Kind: WeaponSniper, Name: "Sniper", MaxAmmo: 4, FireRate: 1.2, ReloadSeconds: 2.2, Damage: 45, ProjectileSpeed: 1600, LifeSeconds: 2},
	}
}

func TestArsenalShootSpendsAmmoAndGates(t *testing.T) {
	a := NewArsenal(testWeapons())
	sp := &recordingSpawner{}

	if !a.Shoot(0, 0, false, sp, "player") {
		t.Fatal("first shot must be accepted")
	}
	if got := a.CurrentWeapon().Ammo; got != 7 {
		t.Fatalf("ammo=%d, want 7", got)
	}
	if len(sp.requests) != 1 {
		t.Fatalf("spawns=%d, want 1", len(sp.requests))
	}

	// Fire rate gate rejects an immediate second shot.
	if a.Shoot(0, 0, false, sp, "player") {
		t.Fatal("shot inside fire-rate window must be rejected")
	}
	a.Tick(0.25)
	if !a.Shoot(0, 0, false, sp, "player") {
		t.Fatal("shot after fire-rate window must be accepted")
	}
}

func TestArsenalEmptyFire(t *testing.T) {
	a := NewArsenal(testWeapons())
	sp := &recordingSpawner{}
	empties := 0
	a.Events.OnEmptyFire = func() { empties++ }

	a.CurrentWeapon().Ammo = 0
	since := a.SinceLastShot
	if a.Shoot(0, 0, false, sp, "player") {
		t.Fatal("empty magazine must not fire")
	}
	if empties != 1 {
		t.Fatalf("empty-fire events=%d, want 1", empties)
	}
	if len(sp.requests) != 0 {
		t.Fatal("empty fire must not spawn")
	}
	if a.CurrentWeapon().Ammo != 0 || a.SinceLastShot != since {
		t.Fatal("empty fire must not change ammo or timing")
	}
}

func TestArsenalReloadCompletes(t *testing.T) {
	a := NewArsenal(testWeapons())
	a.CurrentWeapon().Ammo = 2

	if !a.Reload() {
		t.Fatal("reload must start")
	}
	if a.Reload() {
		t.Fatal("reload while reloading must be a no-op")
	}

	// 59 ticks of 1/60 at ReloadSeconds=1.0 is not enough.
	for i := 0; i < 59; i++ {
		a.Tick(1.0 / 60)
	}
	if !a.Reloading {
		t.Fatal("reload must still be in flight")
	}
	if a.CurrentWeapon().Ammo != 2 {
		t.Fatal("no partial refill during reload")
	}

	a.Tick(1.0 / 60)
	if a.Reloading {
		t.Fatal("reload must complete")
	}
	if got := a.CurrentWeapon().Ammo; got != 8 {
		t.Fatalf("ammo=%d after reload, want full 8", got)
	}
}

func TestArsenalReloadNoopWhenFull(t *testing.T) {
	a := NewArsenal(testWeapons())
	if a.Reload() {
		t.Fatal("reload at full magazine must be a no-op")
	}
}

func TestArsenalSwitchCancelsReload(t *testing.T) {
	a := NewArsenal(testWeapons())
	a.CurrentWeapon().Ammo = 1
	a.Reload()
	a.Tick(0.5)

	if !a.SwitchTo(1) {
		t.Fatal("switch to unlocked weapon must succeed")
	}
	if a.Reloading {
		t.Fatal("switch must cancel the in-flight reload")
	}
	if a.Weapons[0].Ammo != 1 {
		t.Fatalf("cancelled reload must not refill, ammo=%d", a.Weapons[0].Ammo)
	}
	if a.CurrentWeapon().Kind != WeaponShotgun {
		t.Fatalf("current=%s, want shotgun", a.CurrentWeapon().Kind)
	}

	// Reload on the new weapon restarts cleanly.
	a.CurrentWeapon().Ammo = 3
	if !a.Reload() {
		t.Fatal("reload after switch must start fresh")
	}
	if a.ReloadElapsed != 0 {
		t.Fatal("new reload must start from zero")
	}
}

func TestArsenalSwitchRules(t *testing.T) {
	a := NewArsenal(testWeapons())

	if a.SwitchTo(2) {
		t.Fatal("switch to locked weapon must be a no-op")
	}
	if a.SwitchTo(5) || a.SwitchTo(-1) {
		t.Fatal("out-of-range switch must be a no-op")
	}
	if a.SwitchTo(0) {
		t.Fatal("switch to the active index must be a no-op")
	}

	// Cycling skips the locked sniper in both directions.
	if !a.NextWeapon() || a.Current != 1 {
		t.Fatalf("next from 0 must land on 1, got %d", a.Current)
	}
	if !a.NextWeapon() || a.Current != 0 {
		t.Fatalf("next from 1 must skip locked and wrap to 0, got %d", a.Current)
	}
	if !a.PrevWeapon() || a.Current != 1 {
		t.Fatalf("prev from 0 must skip locked and land on 1, got %d", a.Current)
	}

	a.Unlock(WeaponSniper)
	if !a.SwitchTo(2) {
		t.Fatal("switch after unlock must succeed")
	}
}

func TestArsenalShotgunSpread(t *testing.T) {
	a := NewArsenal(testWeapons())
	a.SwitchTo(1)
	sp := &recordingSpawner{}

	if !a.Shoot(10, 20, false, sp, "player") {
		t.Fatal("shotgun must fire")
	}
	if len(sp.requests) != 5 {
		t.Fatalf("pellets=%d, want 5", len(sp.requests))
	}
	if got := a.CurrentWeapon().Ammo; got != 5 {
		t.Fatalf("ammo=%d, burst must cost one unit, want 5", got)
	}

	wantDegrees := []float64{-12, -6, 0, 6, 12}
	for i, req := range sp.requests {
		got := math.Atan2(req.DirY, req.DirX) * 180 / math.Pi
		if math.Abs(got-wantDegrees[i]) > 1e-9 {
			t.Fatalf("pellet %d at %.4f degrees, want %.1f", i, got, wantDegrees[i])
		}
	}

	// Facing left mirrors the fan.
	a.Tick(1)
	sp.requests = nil
	a.Shoot(10, 20, true, sp, "player")
	if len(sp.requests) != 5 {
		t.Fatalf("pellets=%d, want 5", len(sp.requests))
	}
	center := sp.requests[2]
	if center.DirX != -1 || center.DirY != 0 {
		t.Fatalf("center pellet dir=(%v,%v), want (-1,0)", center.DirX, center.DirY)
	}
}

func TestArsenalAddAmmoClamps(t *testing.T) {
	a := NewArsenal(testWeapons())
	a.CurrentWeapon().Ammo = 6

	if !a.AddAmmo(10) {
		t.Fatal("top-up below capacity must apply")
	}
	if got := a.CurrentWeapon().Ammo; got != 8 {
		t.Fatalf("ammo=%d, want clamped 8", got)
	}
	if a.AddAmmo(1) {
		t.Fatal("top-up at capacity must be a no-op")
	}
}

func TestArsenalSwitchRefillsNewWeapon(t *testing.T) {
	a := NewArsenal(testWeapons())
	a.Weapons[1].Ammo = 1

	a.SwitchTo(1)
	if got := a.CurrentWeapon().Ammo; got != 6 {
		t.Fatalf("ammo=%d after switch, want refilled 6", got)
	}
}
