package system

import (
	"math"

	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
	"github.com/milk9111/pondshot/save"
)

// ScoreSystem accumulates the run score from kill and coin events and writes
// the high score through the save manager as soon as it is beaten.
type ScoreSystem struct {
	score      int
	multiplier float64
	save       *save.Manager
	subscribed bool
}

func NewScoreSystem(multiplier float64, sv *save.Manager) *ScoreSystem {
	if multiplier <= 0 {
		multiplier = 1
	}
	return &ScoreSystem{multiplier: multiplier, save: sv}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil || s.subscribed {
		return
	}
	s.subscribed = true

	w.Bus.Subscribe(ecs.EventEnemyKilled, func(ev ecs.Event) {
		if brain := w.Enemies.Get(ev.Entity); brain != nil {
			s.add(w, brain.ScoreValue)
		}
	})
	w.Bus.Subscribe(ecs.EventPickupCollected, func(ev ecs.Event) {
		pickup, ok := ev.Data.(component.Pickup)
		if ok && pickup.Kind == component.PickupCoin {
			s.add(w, pickup.Amount)
		}
	})
}

func (s *ScoreSystem) add(w *ecs.World, base int) {
	if base <= 0 {
		return
	}
	s.score += int(math.Round(float64(base) * s.multiplier))
	// The high score is durable the moment it is beaten, not at run end.
	s.save.RecordScore(s.score)
	w.Bus.Publish(ecs.Event{
		Kind: ecs.EventScoreChanged,
		Data: ecs.ScorePayload{Score: s.score},
	})
}

func (s *ScoreSystem) Score() int {
	return s.score
}

func (s *ScoreSystem) HighScore() int {
	hs := s.save.HighScore()
	if s.score > hs {
		return s.score
	}
	return hs
}
