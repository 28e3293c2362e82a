package component

// Transform is an entity's world-space center position.
type Transform struct {
	X, Y float64
}
