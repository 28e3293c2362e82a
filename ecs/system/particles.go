package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
)

const maxParticles = 512

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
	ttl    float64
	size   float64
	clr    color.NRGBA
	alive  bool
}

// ParticleSystem runs cosmetic burst effects off bus events. Particles live
// in a fixed pool; bursts past capacity recycle the oldest slots.
type ParticleSystem struct {
	dt         float64
	pool       [maxParticles]particle
	next       int
	rng        *rand.Rand
	subscribed bool
}

func NewParticleSystem(dt float64, seed int64) *ParticleSystem {
	return &ParticleSystem{
		dt:  dt,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !s.subscribed {
		s.subscribe(w)
		s.subscribed = true
	}

	for i := range s.pool {
		p := &s.pool[i]
		if !p.alive {
			continue
		}
		p.life += s.dt
		if p.life >= p.ttl {
			p.alive = false
			continue
		}
		p.vy += common.Gravity * 0.25 * s.dt
		p.x += p.vx * s.dt
		p.y += p.vy * s.dt
	}
}

func (s *ParticleSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	var camX, camY float64
	if _, cam, ok := w.Cameras.First(); ok {
		camX, camY = cam.X, cam.Y
	}

	for i := range s.pool {
		p := &s.pool[i]
		if !p.alive {
			continue
		}
		clr := p.clr
		clr.A = uint8(float64(clr.A) * (1 - p.life/p.ttl))
		vector.DrawFilledRect(
			screen,
			float32(p.x-p.size/2-camX),
			float32(p.y-p.size/2-camY),
			float32(p.size),
			float32(p.size),
			clr,
			false,
		)
	}
}

func (s *ParticleSystem) subscribe(w *ecs.World) {
	at := func(id int) (float64, float64, bool) {
		t := w.Transforms.Get(id)
		if t == nil {
			return 0, 0, false
		}
		return t.X, t.Y, true
	}

	w.Bus.Subscribe(ecs.EventShotFired, func(ev ecs.Event) {
		if x, y, ok := at(ev.Entity); ok {
			s.burst(x, y, 4, 90, color.NRGBA{R: 0xff, G: 0xd8, B: 0x70, A: 0xff})
		}
	})
	w.Bus.Subscribe(ecs.EventLanded, func(ev ecs.Event) {
		if x, y, ok := at(ev.Entity); ok {
			s.burst(x, y+16, 6, 60, color.NRGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff})
		}
	})
	w.Bus.Subscribe(ecs.EventEnemyKilled, func(ev ecs.Event) {
		if x, y, ok := at(ev.Entity); ok {
			s.burst(x, y, 14, 160, color.NRGBA{R: 0xd8, G: 0x3a, B: 0x2a, A: 0xff})
		}
	})
	w.Bus.Subscribe(ecs.EventPickupCollected, func(ev ecs.Event) {
		if x, y, ok := at(ev.Entity); ok {
			s.burst(x, y, 8, 120, color.NRGBA{R: 0x6a, G: 0xd8, B: 0xff, A: 0xff})
		}
	})
}

func (s *ParticleSystem) burst(x, y float64, count int, speed float64, clr color.NRGBA) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		mag := speed * (0.4 + 0.6*s.rng.Float64())
		p := &s.pool[s.next]
		s.next = (s.next + 1) % maxParticles
		*p = particle{
			x: x, y: y,
			vx:    math.Cos(angle) * mag,
			vy:    math.Sin(angle)*mag - speed*0.3,
			ttl:   0.3 + 0.4*s.rng.Float64(),
			size:  2 + 2*s.rng.Float64(),
			clr:   clr,
			alive: true,
		}
	}
}
