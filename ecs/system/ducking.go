package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// DuckingSystem feeds crouch input into the duck state machine and keeps the
// physics shape and drawn box in sync with the interpolated height.
type DuckingSystem struct {
	dt float64
}

func NewDuckingSystem(dt float64) *DuckingSystem {
	return &DuckingSystem{dt: dt}
}

func (d *DuckingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	w.Duckers.ForEach(func(id int, ducker *component.Ducking) {
		mover := w.Movers.Get(id)
		grounded := mover != nil && mover.Grounded

		in := w.Inputs.Get(id)
		if in != nil && grounded && (mover == nil || !mover.Dead) {
			ducker.Set(in.Duck)
		}

		ducker.Tick(d.dt, grounded)

		if w.Physics != nil {
			w.Physics.SetBodyHeight(id, ducker.CurrentHeight)
		}
		if box := w.Boxes.Get(id); box != nil {
			box.Height = ducker.CurrentHeight
		}
	})
}
