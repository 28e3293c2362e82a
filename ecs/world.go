package ecs

import (
	"github.com/milk9111/pondshot/ecs/component"
)

// System is a per-tick update pass over the world.
type System interface {
	Update(w *World)
}

// World owns entities, component stores, the event bus, and the physics
// space. Systems run in registration order every tick.
type World struct {
	entities entityStore
	systems  []System

	Bus     *Bus
	Physics *PhysicsWorld

	Transforms *Store[component.Transform]
	Colliders  *Store[component.Collider]
	Inputs     *Store[component.Input]
	Movers     *Store[component.Mover]
	Duckers    *Store[component.Ducking]
	Arsenals   *Store[component.Arsenal]
	Enemies    *Store[component.EnemyBrain]
	Bullets    *Store[component.Bullet]
	Pickups    *Store[component.Pickup]
	Cameras    *Store[component.Camera]
	Flashes    *Store[component.WhiteFlash]
	Boxes      *Store[component.Box]
	Corpses    *Store[component.Corpse]

	removers []func(int) bool
}

func NewWorld() *World {
	w := &World{
		Bus:        NewBus(),
		Transforms: NewStore[component.Transform](),
		Colliders:  NewStore[component.Collider](),
		Inputs:     NewStore[component.Input](),
		Movers:     NewStore[component.Mover](),
		Duckers:    NewStore[component.Ducking](),
		Arsenals:   NewStore[component.Arsenal](),
		Enemies:    NewStore[component.EnemyBrain](),
		Bullets:    NewStore[component.Bullet](),
		Pickups:    NewStore[component.Pickup](),
		Cameras:    NewStore[component.Camera](),
		Flashes:    NewStore[component.WhiteFlash](),
		Boxes:      NewStore[component.Box](),
		Corpses:    NewStore[component.Corpse](),
	}
	w.removers = []func(int) bool{
		w.Transforms.Remove,
		w.Colliders.Remove,
		w.Inputs.Remove,
		w.Movers.Remove,
		w.Duckers.Remove,
		w.Arsenals.Remove,
		w.Enemies.Remove,
		w.Bullets.Remove,
		w.Pickups.Remove,
		w.Cameras.Remove,
		w.Flashes.Remove,
		w.Boxes.Remove,
		w.Corpses.Remove,
	}
	return w
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity, all its components, and its physics body.
func (w *World) DestroyEntity(id int) {
	if w == nil || !w.entities.isAlive(id) {
		return
	}
	if w.Physics != nil {
		w.Physics.RemoveBody(id)
	}
	for _, remove := range w.removers {
		remove(id)
	}
	w.entities.destroy(id)
}

func (w *World) IsAlive(id int) bool {
	return w != nil && w.entities.isAlive(id)
}

func (w *World) AddSystem(s System) {
	if s != nil {
		w.systems = append(w.systems, s)
	}
}

// Update runs one fixed tick through every registered system.
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Player returns the entity id carrying the Mover singleton, or 0.
func (w *World) Player() int {
	id, _, ok := w.Movers.First()
	if !ok {
		return 0
	}
	return id
}
