package system

import (
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
)

// MovementSystem drives every Mover: it assembles the per-tick context from
// the physics space and the entity's input, runs the movement state machine,
// and forwards landed/jumped edges onto the bus.
type MovementSystem struct {
	dt            float64
	duckSpeedMult float64
}

func NewMovementSystem(dt, duckSpeedMult float64) *MovementSystem {
	if duckSpeedMult <= 0 || duckSpeedMult > 1 {
		duckSpeedMult = 1
	}
	return &MovementSystem{dt: dt, duckSpeedMult: duckSpeedMult}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil || w.Physics == nil {
		return
	}

	w.Movers.ForEach(func(id int, mover *component.Mover) {
		in := w.Inputs.Get(id)
		if in == nil {
			return
		}

		moveX := in.MoveX
		if d := w.Duckers.Get(id); d != nil && d.Ducking {
			moveX *= m.duckSpeedMult
		}
		if mover.Dead {
			moveX = 0
		}

		ctx := &component.MoverContext{
			Dt:          m.dt,
			MoveX:       moveX,
			JumpPressed: in.JumpPressed,
			ProbeGround: func() bool {
				return w.Physics.ProbeGround(id, mover.Config.GroundProbe)
			},
			SensorGrounded: func() bool {
				return w.Physics.SensorGrounded(id)
			},
			GetVelocity: func() (float64, float64) {
				return w.Physics.Velocity(id)
			},
			SetVelocity: func(x, y float64) {
				w.Physics.SetVelocity(id, x, y)
			},
			OnLanded: func() {
				w.Bus.Publish(ecs.Event{Kind: ecs.EventLanded, Entity: id})
			},
			OnJumped: func() {
				w.Bus.Publish(ecs.Event{Kind: ecs.EventJumped, Entity: id})
			},
		}
		mover.Tick(ctx)

		if mover.Dead {
			// Corpses stop steering but still fall.
			_, vy := w.Physics.Velocity(id)
			w.Physics.SetVelocity(id, 0, vy)
		}
	})
}
