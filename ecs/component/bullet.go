package component

// Bullet is projectile state. A bullet is removed on lifetime expiry,
// leaving the level bounds, or its first qualifying hit.
type Bullet struct {
	Damage      int
	LifeSeconds float64
	Age         float64
	Owner       string // faction tag; hits against the owner are ignored
	VX, VY      float64
}

// Expired reports whether the bullet outlived its lifetime.
func (b *Bullet) Expired() bool {
	return b != nil && b.LifeSeconds > 0 && b.Age >= b.LifeSeconds
}
