// Package save persists the high score and options through gdata, which
// picks a platform-appropriate data directory.
package save

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const saveItem = "save"

type SaveData struct {
	HighScore  int     `json:"highScore"`
	Difficulty float64 `json:"difficulty"`
	Muted      bool    `json:"muted"`
}

// Manager wraps a gdata manager. A nil Manager (or one whose Open failed)
// degrades to in-memory state so the game keeps running without a disk.
type Manager struct {
	m    *gdata.Manager
	data SaveData
}

func Open(appName string) *Manager {
	mgr := &Manager{data: SaveData{Difficulty: 1}}

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("save: could not open data store: %v", err)
		return mgr
	}
	mgr.m = m

	raw, err := m.LoadItem(saveItem)
	if err != nil {
		log.Printf("save: could not load save data: %v", err)
		return mgr
	}
	if raw == nil {
		return mgr
	}
	if err := json.Unmarshal(raw, &mgr.data); err != nil {
		log.Printf("save: could not parse save data: %v", err)
	}
	if mgr.data.Difficulty <= 0 {
		mgr.data.Difficulty = 1
	}
	return mgr
}

func (s *Manager) HighScore() int {
	if s == nil {
		return 0
	}
	return s.data.HighScore
}

func (s *Manager) Difficulty() float64 {
	if s == nil {
		return 1
	}
	return s.data.Difficulty
}

// RecordScore persists score as the new high score if it beats the old one.
// Returns true when the high score changed.
func (s *Manager) RecordScore(score int) bool {
	if s == nil || score <= s.data.HighScore {
		return false
	}
	s.data.HighScore = score
	s.flush()
	return true
}

func (s *Manager) Muted() bool {
	return s != nil && s.data.Muted
}

func (s *Manager) SetMuted(muted bool) {
	if s == nil || s.data.Muted == muted {
		return
	}
	s.data.Muted = muted
	s.flush()
}

func (s *Manager) SetDifficulty(d float64) {
	if s == nil || d <= 0 {
		return
	}
	s.data.Difficulty = d
	s.flush()
}

func (s *Manager) flush() {
	if s.m == nil {
		return
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		log.Printf("save: could not serialize save data: %v", err)
		return
	}
	if err := s.m.SaveItem(saveItem, raw); err != nil {
		log.Printf("save: could not write save data: %v", err)
	}
}
