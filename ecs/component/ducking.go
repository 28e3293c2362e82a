package component

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ducking is the crouch sub-state of an actor. Height interpolates linearly
// between NormalHeight and DuckHeight over DuckSeconds, one sample per tick.
// Airborne actors are forced upright every tick regardless of held input.
type Ducking struct {
	NormalHeight float64
	DuckHeight   float64
	DuckSeconds  float64

	Ducking       bool
	CurrentHeight float64

	tween *gween.Tween
}

// NewDucking creates an upright Ducking state.
func NewDucking(normalHeight, duckHeight, duckSeconds float64) *Ducking {
	return &Ducking{
		NormalHeight:  normalHeight,
		DuckHeight:    duckHeight,
		DuckSeconds:   duckSeconds,
		CurrentHeight: normalHeight,
	}
}

// Set requests a duck state change. Idempotent: re-requesting the current
// state does not restart the interpolation. Returns true when the state
// actually changed.
func (d *Ducking) Set(ducking bool) bool {
	if d == nil || d.Ducking == ducking {
		return false
	}
	d.Ducking = ducking
	target := d.NormalHeight
	if ducking {
		target = d.DuckHeight
	}
	dur := float32(d.DuckSeconds)
	if dur <= 0 {
		d.CurrentHeight = target
		d.tween = nil
		return true
	}
	d.tween = gween.New(float32(d.CurrentHeight), float32(target), dur, ease.Linear)
	return true
}

// Tick advances the height interpolation and enforces the airborne
// stand-up rule.
func (d *Ducking) Tick(dt float64, grounded bool) {
	if d == nil {
		return
	}
	if !grounded && d.Ducking {
		d.Set(false)
	}
	if d.tween == nil {
		return
	}
	v, done := d.tween.Update(float32(dt))
	d.CurrentHeight = float64(v)
	if done {
		d.tween = nil
	}
}

// FullyDucked reports whether the height has settled at DuckHeight.
func (d *Ducking) FullyDucked() bool {
	return d != nil && d.Ducking && d.tween == nil
}

// CanFitThroughGap reports whether the actor currently fits under gapHeight.
func (d *Ducking) CanFitThroughGap(gapHeight float64) bool {
	return d != nil && d.CurrentHeight <= gapHeight
}
