package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
	"github.com/milk9111/pondshot/ecs/system"
	"github.com/milk9111/pondshot/levels"
	"github.com/milk9111/pondshot/prefabs"
	"github.com/milk9111/pondshot/save"
)

const hazardDamage = 20

// session is one run of a level: the world, its systems, and the draw
// passes. Restarting or hot-reloading prefabs builds a fresh session.
type session struct {
	world     *ecs.World
	level     *levels.Level
	renderer  *system.Renderer
	particles *system.ParticleSystem
	hud       *system.HUD
	score     *system.ScoreSystem

	playerID int
}

func newSession(levelName string, dev bool, sv *save.Manager, audioSys *system.AudioSystem) (*session, error) {
	lvl, err := levels.LoadLevelFromFS(levelName, dev)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	weaponsSpec, err := prefabs.LoadWeaponsSpec()
	if err != nil {
		return nil, err
	}
	enemiesSpec, err := prefabs.LoadEnemiesSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	balance := tuneBalance(sv.Difficulty())

	w := ecs.NewWorld()
	w.Physics = ecs.NewPhysicsWorld(lvl)

	s := &session{
		world: w,
		level: lvl,
	}

	s.playerID = spawnPlayer(w, lvl, playerSpec, weaponsSpec, balance)
	spawnLevelEntities(w, lvl, enemiesSpec, balance)
	spawnCamera(w, cameraSpec)

	levelW := float64(lvl.Width * common.TileSize)
	levelH := float64(lvl.Height * common.TileSize)
	dt := common.TickSeconds

	bullets := system.NewBulletSystem(dt, w, levelW, levelH)
	s.score = system.NewScoreSystem(balance.ScoreMultiplier, sv)
	s.particles = system.NewParticleSystem(dt, time.Now().UnixNano())

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewMovementSystem(dt, playerSpec.DuckSpeedMult))
	w.AddSystem(system.NewWeaponSystem(dt, bullets))
	w.AddSystem(system.NewDuckingSystem(dt))
	w.AddSystem(system.NewEnemySystem(dt, bullets))
	w.AddSystem(bullets)
	w.AddSystem(system.NewPhysicsSystem(dt))
	w.AddSystem(system.NewContactSystem(hazardDamage))
	w.AddSystem(system.NewPickupSystem())
	w.AddSystem(system.NewCameraSystem(levelW, levelH))
	w.AddSystem(s.score)
	if audioSys != nil {
		w.AddSystem(audioSys)
	}
	w.AddSystem(s.particles)

	// Death stops the body outright instead of letting it slide.
	w.Bus.Subscribe(ecs.EventDied, func(ev ecs.Event) {
		w.Physics.SetVelocity(ev.Entity, 0, 0)
	})

	s.renderer = system.NewRenderer(lvl)
	s.hud = system.NewHUD(s.score)
	return s, nil
}

// tuneBalance runs the tengo tuning script; a broken script logs and falls
// back to neutral multipliers.
func tuneBalance(difficulty float64) prefabs.Balance {
	script, err := prefabs.LoadBalanceScript()
	if err != nil {
		log.Printf("balance: %v", err)
		return prefabs.Balance{EnemyHealthScale: 1, EnemySpeedScale: 1, WeaponDamageScale: 1, ScoreMultiplier: 1}
	}
	balance, err := script.Eval(difficulty)
	if err != nil {
		log.Printf("balance: %v", err)
	}
	return balance
}

func tileCenter(tx, ty int) (float64, float64) {
	return (float64(tx) + 0.5) * common.TileSize, (float64(ty) + 0.5) * common.TileSize
}

func spawnPlayer(w *ecs.World, lvl *levels.Level, spec *prefabs.PlayerSpec, weapons *prefabs.WeaponsSpec, balance prefabs.Balance) int {
	e := w.CreateEntity()
	id := e.ID

	x, y := tileCenter(lvl.SpawnX, lvl.SpawnY)
	t := &component.Transform{X: x, Y: y}
	c := &component.Collider{
		Width:         spec.Collider.Width,
		Height:        spec.Collider.Height,
		Role:          component.RolePlayer,
		FixedRotation: true,
	}

	w.Transforms.Set(id, t)
	w.Colliders.Set(id, c)
	w.Inputs.Set(id, &component.Input{WeaponSlot: -1})
	w.Movers.Set(id, component.NewMover(component.MoverConfig{
		MoveSpeed:     spec.MoveSpeed,
		JumpSpeed:     spec.JumpSpeed,
		MaxJumps:      spec.MaxJumps,
		MaxHealth:     int(spec.Health),
		InvincibleFor: spec.InvincibleFor,
		GroundProbe:   spec.GroundProbe,
	}))
	w.Duckers.Set(id, component.NewDucking(spec.Collider.Height, spec.DuckHeight, spec.DuckSeconds))
	w.Arsenals.Set(id, component.NewArsenal(buildWeapons(weapons, balance)))

	clr := color.NRGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}
	if spec.Color != nil {
		clr = spec.Color.NRGBA
	}
	w.Boxes.Set(id, &component.Box{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Color:  clr,
		Layer:  1,
	})

	w.Physics.AddBody(id, t, c)
	return id
}

func buildWeapons(spec *prefabs.WeaponsSpec, balance prefabs.Balance) []component.Weapon {
	out := make([]component.Weapon, 0, len(spec.Weapons))
	for _, ws := range spec.Weapons {
		out = append(out, component.Weapon{
			Kind:            component.WeaponKind(ws.Kind),
			Name:            ws.Name,
			MaxAmmo:         ws.MaxAmmo,
			FireRate:        ws.FireRate,
			ReloadSeconds:   ws.ReloadSeconds,
			Damage:          int(math.Round(ws.Damage * balance.WeaponDamageScale)),
			ProjectileSpeed: ws.ProjectileSpeed,
			LifeSeconds:     ws.LifeSeconds,
			Automatic:       ws.Automatic,
			PelletCount:     ws.PelletCount,
			SpreadDegrees:   ws.SpreadDegrees,
			Unlocked:        ws.Unlocked,
		})
	}
	return out
}

func spawnLevelEntities(w *ecs.World, lvl *levels.Level, enemies *prefabs.EnemiesSpec, balance prefabs.Balance) {
	for _, ent := range lvl.Entities {
		switch ent.Type {
		case "enemy":
			kind := ent.StringProp("kind", "walker")
			spec, ok := enemies.Enemies[kind]
			if !ok {
				log.Printf("spawn: unknown enemy kind %q, skipping", kind)
				continue
			}
			spawnEnemy(w, ent.X, ent.Y, spec, balance)
		case "pickup":
			spawnPickup(w, ent)
		default:
			log.Printf("spawn: unknown entity type %q, skipping", ent.Type)
		}
	}
}

func spawnEnemy(w *ecs.World, tx, ty int, spec prefabs.EnemySpec, balance prefabs.Balance) {
	e := w.CreateEntity()
	id := e.ID

	x, y := tileCenter(tx, ty)
	t := &component.Transform{X: x, Y: y}
	c := &component.Collider{
		Width:         spec.Collider.Width,
		Height:        spec.Collider.Height,
		Role:          component.RoleEnemy,
		FixedRotation: true,
	}

	w.Transforms.Set(id, t)
	w.Colliders.Set(id, c)
	w.Enemies.Set(id, &component.EnemyBrain{
		Health:          int(math.Round(spec.Health * balance.EnemyHealthScale)),
		MoveSpeed:       spec.MoveSpeed * balance.EnemySpeedScale,
		DetectionRange:  spec.DetectionRange,
		AttackRange:     spec.AttackRange,
		PatrolOrigin:    x,
		PatrolDistance:  spec.PatrolDistance,
		WaitSeconds:     spec.WaitSeconds,
		Ranged:          spec.Ranged,
		FireCooldown:    spec.FireCooldown,
		ProjectileSpeed: spec.ProjectileSpeed,
		Damage:          int(spec.Damage),
		DeathDelay:      spec.DeathDelay,
		ScoreValue:      spec.ScoreValue,
	})

	clr := color.NRGBA{R: 0xc0, G: 0x3b, B: 0x3b, A: 0xff}
	if spec.Color != nil {
		clr = spec.Color.NRGBA
	}
	w.Boxes.Set(id, &component.Box{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Color:  clr,
		Layer:  1,
	})
	w.Flashes.Set(id, &component.WhiteFlash{})

	w.Physics.AddBody(id, t, c)
}

func spawnPickup(w *ecs.World, ent levels.Entity) {
	e := w.CreateEntity()
	id := e.ID

	x, y := tileCenter(ent.X, ent.Y)
	t := &component.Transform{X: x, Y: y}
	kind := component.PickupKind(ent.StringProp("kind", "coin"))

	w.Transforms.Set(id, t)
	w.Pickups.Set(id, &component.Pickup{
		Kind:   kind,
		Amount: int(ent.FloatProp("amount", 0)),
		Weapon: component.WeaponKind(ent.StringProp("weapon", "")),
	})

	clr := color.NRGBA{R: 0xe8, G: 0xc5, B: 0x4a, A: 0xff}
	switch kind {
	case component.PickupHealth:
		clr = color.NRGBA{R: 0x3f, G: 0xc4, B: 0x5e, A: 0xff}
	case component.PickupAmmo:
		clr = color.NRGBA{R: 0x8a, G: 0x9a, B: 0xb0, A: 0xff}
	case component.PickupWeapon:
		clr = color.NRGBA{R: 0x6a, G: 0xd8, B: 0xff, A: 0xff}
	}
	w.Boxes.Set(id, &component.Box{Width: 18, Height: 18, Color: clr, Layer: 0})

	w.Physics.AddStaticSensor(id, t, 18, 18)
}

func spawnCamera(w *ecs.World, spec *prefabs.CameraSpec) {
	e := w.CreateEntity()
	w.Cameras.Set(e.ID, &component.Camera{
		Smoothness: spec.Smoothness,
		Zoom:       spec.Zoom,
	})
}
