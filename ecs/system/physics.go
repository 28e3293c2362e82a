package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// PhysicsSystem steps the space and copies body positions back onto the
// transforms the rest of the tick reads.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	return &PhysicsSystem{dt: dt}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || w.Physics == nil {
		return
	}

	w.Physics.Step(s.dt)

	w.Transforms.ForEach(func(id int, t *component.Transform) {
		if x, y, ok := w.Physics.BodyPosition(id); ok {
			t.X, t.Y = x, y
		}
	})
}
