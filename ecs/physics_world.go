package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs/component"
	"github.com/milk9111/pondshot/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeHazard
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeGroundSensor
	collisionTypePickup
)

const (
	categorySolid uint = 1 << iota
	categoryHazard
	categoryActor
	categoryPickup
)

// PhysicsWorld owns the Chipmunk space: static level geometry, one dynamic
// body per actor, and the collision handlers that feed contact signals back
// to the simulation systems. It is the movement core's physics collaborator:
// a segment-cast query service plus a velocity actuator.
type PhysicsWorld struct {
	space *cp.Space

	bodies       map[int]*cp.Body
	shapes       map[int]*cp.Shape
	groundShapes map[int]*cp.Shape
	colliders    map[int]component.Collider

	// transient contact state, cleared at the start of every Step
	sensorGrounded map[int]bool

	hazardContacts map[int]bool
	enemyTouches   map[int][]int // player id -> enemy ids in contact
	pickupTouches  map[int][]int // player id -> pickup ids overlapped
}

// NewPhysicsWorld creates a space with level gravity and builds the static
// collision shapes for lvl.
func NewPhysicsWorld(lvl *levels.Level) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	pw := &PhysicsWorld{
		space:          space,
		bodies:         make(map[int]*cp.Body),
		shapes:         make(map[int]*cp.Shape),
		groundShapes:   make(map[int]*cp.Shape),
		colliders:      make(map[int]component.Collider),
		sensorGrounded: make(map[int]bool),
		hazardContacts: make(map[int]bool),
		enemyTouches:   make(map[int][]int),
		pickupTouches:  make(map[int][]int),
	}
	pw.buildStaticShapes(lvl)
	pw.setupHandlers()
	return pw
}

type shapeTag struct {
	entity int
	role   component.ColliderRole
}

func newActorShape(body *cp.Body, width, height float64, role component.ColliderRole) *cp.Shape {
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetElasticity(0)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: categoryActor,
		Mask:       cp.ALL_CATEGORIES,
	})
	switch role {
	case component.RolePlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case component.RoleEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}
	return shape
}

// AddBody creates a dynamic body and box shape for an entity. Player and
// enemy bodies also get a thin ground-sensor shape under their feet; its
// collision callback is the redundant landing signal backing up the probe.
func (pw *PhysicsWorld) AddBody(id int, t *component.Transform, c *component.Collider) {
	if pw == nil || pw.space == nil || id <= 0 || t == nil || c == nil {
		return
	}
	if _, ok := pw.bodies[id]; ok {
		return
	}

	mass := 1.0
	moment := cp.MomentForBox(mass, c.Width, c.Height)
	if c.FixedRotation {
		moment = math.Inf(1)
	}
	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	shape := newActorShape(body, c.Width, c.Height, c.Role)
	shape.SetSensor(c.Sensor)
	shape.UserData = shapeTag{entity: id, role: c.Role}

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.bodies[id] = body
	pw.shapes[id] = shape
	pw.colliders[id] = *c

	if c.Role == component.RolePlayer || c.Role == component.RoleEnemy {
		bb := cp.BB{
			L: -c.Width * 0.45,
			B: c.Height / 2,
			R: c.Width * 0.45,
			T: c.Height/2 + 2,
		}
		ground := cp.NewBox2(body, bb, 0)
		ground.SetSensor(true)
		ground.SetCollisionType(collisionTypeGroundSensor)
		ground.UserData = shapeTag{entity: id, role: c.Role}
		pw.space.AddShape(ground)
		pw.groundShapes[id] = ground
	}
}

// AddStaticSensor registers a static sensor box (pickups) for an entity.
func (pw *PhysicsWorld) AddStaticSensor(id int, t *component.Transform, w, h float64) {
	if pw == nil || pw.space == nil || id <= 0 || t == nil {
		return
	}
	bb := cp.BB{L: t.X - w/2, B: t.Y - h/2, R: t.X + w/2, T: t.Y + h/2}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypePickup)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: categoryPickup,
		Mask:       categoryActor,
	})
	shape.UserData = shapeTag{entity: id}
	pw.shapes[id] = shape
	pw.space.AddShape(shape)
}

// RemoveBody removes an entity's shapes and body from the space.
func (pw *PhysicsWorld) RemoveBody(id int) {
	if pw == nil || pw.space == nil {
		return
	}
	if ground, ok := pw.groundShapes[id]; ok {
		pw.space.RemoveShape(ground)
		delete(pw.groundShapes, id)
	}
	if shape, ok := pw.shapes[id]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapes, id)
	}
	if body, ok := pw.bodies[id]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, id)
	}
	delete(pw.colliders, id)
	delete(pw.sensorGrounded, id)
	delete(pw.hazardContacts, id)
}

// SetBodyHeight swaps an actor's box shape for one of the same width and a
// new height, keeping the feet planted. Used by the duck interpolation.
func (pw *PhysicsWorld) SetBodyHeight(id int, height float64) {
	body, ok := pw.bodies[id]
	if !ok || height <= 0 {
		return
	}
	c, ok := pw.colliders[id]
	if !ok || math.Abs(c.Height-height) < 1e-9 {
		return
	}
	old, ok := pw.shapes[id]
	if !ok {
		return
	}

	// Keep the bottom edge fixed so shrinking doesn't levitate the actor.
	pos := body.Position()
	bottom := pos.Y + c.Height/2
	body.SetPosition(cp.Vector{X: pos.X, Y: bottom - height/2})

	pw.space.RemoveShape(old)
	shape := newActorShape(body, c.Width, height, c.Role)
	shape.UserData = old.UserData
	pw.space.AddShape(shape)
	pw.shapes[id] = shape

	c.Height = height
	pw.colliders[id] = c
}

// BodyPosition returns the body center for an entity.
func (pw *PhysicsWorld) BodyPosition(id int) (x, y float64, ok bool) {
	body, found := pw.bodies[id]
	if !found {
		return 0, 0, false
	}
	pos := body.Position()
	return pos.X, pos.Y, true
}

// SetBodyPosition teleports a body (spawn placement).
func (pw *PhysicsWorld) SetBodyPosition(id int, x, y float64) {
	if body, ok := pw.bodies[id]; ok {
		body.SetPosition(cp.Vector{X: x, Y: y})
	}
}

// Velocity reads an entity's linear velocity.
func (pw *PhysicsWorld) Velocity(id int) (x, y float64) {
	body, ok := pw.bodies[id]
	if !ok {
		return 0, 0
	}
	v := body.Velocity()
	return v.X, v.Y
}

// SetVelocity writes an entity's linear velocity.
func (pw *PhysicsWorld) SetVelocity(id int, x, y float64) {
	if body, ok := pw.bodies[id]; ok {
		body.SetVelocity(x, y)
	}
}

// ProbeGround casts a short segment straight down from the entity's feet and
// reports whether it hit solid geometry. Polled every tick by the movement
// core; this is the primary landing signal.
func (pw *PhysicsWorld) ProbeGround(id int, distance float64) bool {
	body, ok := pw.bodies[id]
	if !ok || distance <= 0 {
		return false
	}
	c := pw.colliders[id]
	pos := body.Position()
	start := cp.Vector{X: pos.X, Y: pos.Y + c.Height/2 - 1}
	end := cp.Vector{X: start.X, Y: start.Y + distance + 1}
	info := pw.space.SegmentQueryFirst(start, end, 0, cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       categorySolid,
	})
	return info.Shape != nil
}

// SegmentHitsSolid reports whether the segment from (x0,y0) to (x1,y1)
// crosses solid geometry. Bullets use this for wall hits.
func (pw *PhysicsWorld) SegmentHitsSolid(x0, y0, x1, y1 float64) bool {
	if pw == nil || pw.space == nil {
		return false
	}
	info := pw.space.SegmentQueryFirst(
		cp.Vector{X: x0, Y: y0},
		cp.Vector{X: x1, Y: y1},
		0,
		cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: categorySolid},
	)
	return info.Shape != nil
}

// SensorGrounded reports the ground-sensor contact recorded during the last
// Step. Secondary signal only; the probe is authoritative.
func (pw *PhysicsWorld) SensorGrounded(id int) bool {
	return pw != nil && pw.sensorGrounded[id]
}

// HazardContact reports and clears the hazard-touch flag for an entity.
func (pw *PhysicsWorld) HazardContact(id int) bool {
	if pw == nil || !pw.hazardContacts[id] {
		return false
	}
	delete(pw.hazardContacts, id)
	return true
}

// DrainEnemyTouches returns enemy ids contacting the player this step.
func (pw *PhysicsWorld) DrainEnemyTouches(playerID int) []int {
	if pw == nil {
		return nil
	}
	out := pw.enemyTouches[playerID]
	delete(pw.enemyTouches, playerID)
	return out
}

// DrainPickupTouches returns pickup ids overlapped by the player this step.
func (pw *PhysicsWorld) DrainPickupTouches(playerID int) []int {
	if pw == nil {
		return nil
	}
	out := pw.pickupTouches[playerID]
	delete(pw.pickupTouches, playerID)
	return out
}

// Step advances the simulation one fixed timestep.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	clear(pw.sensorGrounded)
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) buildStaticShapes(lvl *levels.Level) {
	if lvl == nil {
		return
	}

	addBox := func(x, y, w int, kind int) {
		x0 := float64(x * common.TileSize)
		y0 := float64(y * common.TileSize)
		bb := cp.BB{
			L: x0,
			B: y0,
			R: x0 + float64(w*common.TileSize),
			T: y0 + common.TileSize,
		}
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		if kind == levels.TileHazard {
			shape.SetSensor(true)
			shape.SetCollisionType(collisionTypeHazard)
			shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryHazard, Mask: categoryActor})
		} else {
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categorySolid, Mask: cp.ALL_CATEGORIES})
		}
		pw.space.AddShape(shape)
	}

	// Merge horizontal runs of identical tiles into single boxes.
	for y := 0; y < lvl.Height; y++ {
		x := 0
		for x < lvl.Width {
			kind := lvl.TileAt(x, y)
			if kind == levels.TileEmpty {
				x++
				continue
			}
			run := 1
			for x+run < lvl.Width && lvl.TileAt(x+run, y) == kind {
				run++
			}
			addBox(x, y, run, kind)
			x += run
		}
	}

	// Boundary walls keep everything inside the level.
	worldW := float64(lvl.Width * common.TileSize)
	worldH := float64(lvl.Height * common.TileSize)
	segments := [][2]cp.Vector{
		{{X: 0, Y: 0}, {X: worldW, Y: 0}},
		{{X: 0, Y: worldH}, {X: worldW, Y: worldH}},
		{{X: 0, Y: 0}, {X: 0, Y: worldH}},
		{{X: worldW, Y: 0}, {X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg[0], seg[1], 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categorySolid, Mask: cp.ALL_CATEGORIES})
		pw.space.AddShape(shape)
	}
}

func tagOf(shape *cp.Shape) (shapeTag, bool) {
	tag, ok := shape.UserData.(shapeTag)
	return tag, ok
}

func (pw *PhysicsWorld) setupHandlers() {
	ground := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	ground.UserData = pw
	ground.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok {
			return true
		}
		a, b := arb.Shapes()
		for _, s := range []*cp.Shape{a, b} {
			if tag, ok := tagOf(s); ok && tag.entity > 0 {
				world.sensorGrounded[tag.entity] = true
			}
		}
		return true
	}

	hazard := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazard.UserData = pw
	hazard.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok {
			return true
		}
		a, b := arb.Shapes()
		for _, s := range []*cp.Shape{a, b} {
			if tag, ok := tagOf(s); ok && tag.role == component.RolePlayer {
				world.hazardContacts[tag.entity] = true
			}
		}
		return true
	}

	touch := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	touch.UserData = pw
	touch.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok {
			return false
		}
		a, b := arb.Shapes()
		var player, enemy int
		for _, s := range []*cp.Shape{a, b} {
			if tag, ok := tagOf(s); ok {
				switch tag.role {
				case component.RolePlayer:
					player = tag.entity
				case component.RoleEnemy:
					enemy = tag.entity
				}
			}
		}
		if player > 0 && enemy > 0 {
			world.enemyTouches[player] = append(world.enemyTouches[player], enemy)
		}
		// Bodies pass through each other; contact damage is the only effect.
		return false
	}

	pickup := pw.space.NewCollisionHandler(collisionTypePlayer, collisionTypePickup)
	pickup.UserData = pw
	pickup.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok {
			return true
		}
		a, b := arb.Shapes()
		var player, item int
		for _, s := range []*cp.Shape{a, b} {
			if tag, ok := tagOf(s); ok {
				if tag.role == component.RolePlayer {
					player = tag.entity
				} else {
					item = tag.entity
				}
			}
		}
		if player > 0 && item > 0 {
			world.pickupTouches[player] = append(world.pickupTouches[player], item)
		}
		return true
	}
}
