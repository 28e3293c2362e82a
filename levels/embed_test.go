package levels

import "testing"

func TestLoadPondLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("pond.json", false)
	if err != nil {
		t.Fatalf("LoadLevelFromFS: %v", err)
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		t.Fatalf("dimensions %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Tiles) != lvl.Width*lvl.Height {
		t.Fatalf("tiles=%d, want %d", len(lvl.Tiles), lvl.Width*lvl.Height)
	}

	// The spawn tile must be clear with ground somewhere below it.
	if lvl.TileAt(lvl.SpawnX, lvl.SpawnY) != TileEmpty {
		t.Fatal("spawn tile must be empty")
	}
	grounded := false
	for y := lvl.SpawnY + 1; y < lvl.Height; y++ {
		if lvl.TileAt(lvl.SpawnX, y) == TileSolid {
			grounded = true
			break
		}
	}
	if !grounded {
		t.Fatal("spawn column needs solid ground below")
	}

	counts := map[int]int{}
	for _, tile := range lvl.Tiles {
		counts[tile]++
	}
	if counts[TileSolid] == 0 || counts[TileHazard] == 0 {
		t.Fatalf("level needs solids and hazards: %v", counts)
	}

	enemies, pickups := 0, 0
	for _, ent := range lvl.Entities {
		switch ent.Type {
		case "enemy":
			enemies++
		case "pickup":
			pickups++
		}
	}
	if enemies == 0 || pickups == 0 {
		t.Fatalf("enemies=%d pickups=%d", enemies, pickups)
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	lvl := &Level{Width: 2, Height: 2, Tiles: []int{1, 1, 1, 1}}

	cases := []struct {
		name string
		x, y int
	}{
		{"negative_x", -1, 0},
		{"negative_y", 0, -1},
		{"past_width", 2, 0},
		{"past_height", 0, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := lvl.TileAt(c.x, c.y); got != TileEmpty {
				t.Fatalf("TileAt(%d,%d)=%d, want empty", c.x, c.y, got)
			}
		})
	}
}

func TestEntityProps(t *testing.T) {
	e := Entity{Props: map[string]interface{}{
		"kind":   "walker",
		"amount": 12.0,
	}}

	if got := e.StringProp("kind", "x"); got != "walker" {
		t.Fatalf("kind=%q", got)
	}
	if got := e.StringProp("missing", "fallback"); got != "fallback" {
		t.Fatalf("missing=%q", got)
	}
	if got := e.FloatProp("amount", 0); got != 12 {
		t.Fatalf("amount=%v", got)
	}
	if got := e.FloatProp("missing", 5); got != 5 {
		t.Fatalf("missing=%v", got)
	}
}
