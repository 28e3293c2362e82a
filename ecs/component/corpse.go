package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Corpse fades a dead entity out over a short delay before removal, so the
// death is visible instead of the body vanishing on the killing frame.
type Corpse struct {
	tween *gween.Tween
}

func NewCorpse(seconds float64) *Corpse {
	if seconds <= 0 {
		seconds = 0.5
	}
	return &Corpse{tween: gween.New(1, 0, float32(seconds), ease.Linear)}
}

// Tick advances the fade and returns the current alpha and whether the
// corpse is ready for removal.
func (c *Corpse) Tick(dt float64) (alpha float64, done bool) {
	if c == nil || c.tween == nil {
		return 0, true
	}
	v, finished := c.tween.Update(float32(dt))
	return float64(v), finished
}
