package component

// ColliderRole selects the collision category a body participates in.
type ColliderRole int

const (
	RoleDynamic ColliderRole = iota
	RolePlayer
	RoleEnemy
	RoleBullet
)

// Collider describes an entity's physics box.
type Collider struct {
	Width, Height float64
	Role          ColliderRole
	Sensor        bool
	FixedRotation bool
}
