package component

// PickupKind selects what collecting a pickup does.
type PickupKind string

const (
	PickupAmmo   PickupKind = "ammo"
	PickupHealth PickupKind = "health"
	PickupCoin   PickupKind = "coin"
	PickupWeapon PickupKind = "weapon"
)

// Pickup is a collectible lying in the level.
type Pickup struct {
	Kind   PickupKind
	Amount int
	// Weapon names the weapon kind unlocked by PickupWeapon.
	Weapon WeaponKind
}
