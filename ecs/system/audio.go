package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/pondshot/ecs"
)

const sampleRate = 44100

// AudioSystem plays short synthesized blips for gameplay events. All sound
// is square-wave PCM generated at startup; there are no audio assets.
type AudioSystem struct {
	ctx   *audio.Context
	clips map[ecs.EventKind][]byte
	muted bool

	// The system outlives sessions, so it resubscribes whenever the
	// world's bus changes.
	bus *ecs.Bus
}

func NewAudioSystem(muted bool) *AudioSystem {
	s := &AudioSystem{
		ctx:   audio.NewContext(sampleRate),
		muted: muted,
		clips: map[ecs.EventKind][]byte{
			ecs.EventJumped:          squareWave(320, 0.08, 0.25),
			ecs.EventLanded:          squareWave(140, 0.05, 0.2),
			ecs.EventShotFired:       squareWave(880, 0.05, 0.3),
			ecs.EventEmptyFire:       squareWave(180, 0.1, 0.25),
			ecs.EventReloadStarted:   squareWave(260, 0.07, 0.2),
			ecs.EventReloadCompleted: squareWave(520, 0.07, 0.25),
			ecs.EventWeaponChanged:   squareWave(420, 0.06, 0.2),
			ecs.EventDamaged:         squareWave(110, 0.15, 0.35),
			ecs.EventEnemyHit:        squareWave(600, 0.04, 0.2),
			ecs.EventEnemyKilled:     squareWave(240, 0.2, 0.3),
			ecs.EventPickupCollected: squareWave(700, 0.09, 0.25),
			ecs.EventDied:            squareWave(80, 0.5, 0.4),
		},
	}
	return s
}

func (s *AudioSystem) SetMuted(muted bool) {
	s.muted = muted
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil || w.Bus == s.bus {
		return
	}
	s.bus = w.Bus

	w.Bus.SubscribeAll(func(ev ecs.Event) {
		if s.muted {
			return
		}
		clip, ok := s.clips[ev.Kind]
		if !ok {
			return
		}
		player := s.ctx.NewPlayerFromBytes(clip)
		player.Play()
	})
}

// squareWave renders a 16-bit stereo square wave with a linear decay
// envelope so blips do not click at the tail.
func squareWave(freq float64, seconds, volume float64) []byte {
	n := int(float64(sampleRate) * seconds)
	out := make([]byte, n*4)
	period := float64(sampleRate) / freq
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := volume * env
		sample := v
		if math.Mod(float64(i), period) >= period/2 {
			sample = -v
		}
		s16 := int16(sample * math.MaxInt16)
		lo := byte(s16)
		hi := byte(s16 >> 8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
