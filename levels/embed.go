package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.json
var LevelsFS embed.FS

// Tile kinds stored in the flat tile array.
const (
	TileEmpty = iota
	TileSolid
	TileHazard
)

// Level is a tile map stored as JSON. Tiles is row-major, Width*Height long.
type Level struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []int  `json:"tiles"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x"`
	SpawnY int `json:"spawn_y"`

	Entities []Entity `json:"entities,omitempty"`
}

// Entity is a placed object: an enemy or a pickup.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// TileAt returns the tile kind at tile coordinates, or TileEmpty out of bounds.
func (l *Level) TileAt(x, y int) int {
	if l == nil || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return TileEmpty
	}
	i := y*l.Width + x
	if i >= len(l.Tiles) {
		return TileEmpty
	}
	return l.Tiles[i]
}

// StringProp reads a string property off a placed entity.
func (e Entity) StringProp(key, fallback string) string {
	if v, ok := e.Props[key].(string); ok {
		return v
	}
	return fallback
}

// FloatProp reads a numeric property off a placed entity.
func (e Entity) FloatProp(key string, fallback float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return fallback
}

// LoadLevelFromFS loads a level by name from the embedded filesystem. In dev
// mode a file on disk under levels/ shadows the embedded copy.
func LoadLevelFromFS(name string, dev bool) (*Level, error) {
	var data []byte
	var err error
	if dev {
		data, err = os.ReadFile("levels/" + name)
	}
	if data == nil {
		data, err = fs.ReadFile(LevelsFS, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Tiles) != lvl.Width*lvl.Height {
		return nil, fmt.Errorf("level %s: want %d tiles, got %d", name, lvl.Width*lvl.Height, len(lvl.Tiles))
	}
	return &lvl, nil
}
