package component

// Camera smooth-follows a target entity, clamped to the level bounds.
type Camera struct {
	X, Y       float64
	Smoothness float64 // 0 snaps, higher values trail further behind
	Zoom       float64
}
