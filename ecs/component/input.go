package component

// Input stores per-frame input state for an entity. Pressed fields are edge
// signals (true only on the frame the control went down); the bare fields are
// level signals (held).
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool
	Duck        bool

	Fire        bool
	FirePressed bool

	ReloadPressed bool
	NextWeapon    bool
	PrevWeapon    bool
	// WeaponSlot is a direct weapon selection index, -1 when none.
	WeaponSlot int
}
