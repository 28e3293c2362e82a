package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/component"
	"github.com/milk9111/pondshot/levels"
)

var (
	solidColor  = color.NRGBA{R: 0x2e, G: 0x4a, B: 0x66, A: 0xff}
	hazardColor = color.NRGBA{R: 0xd8, G: 0x3a, B: 0x2a, A: 0xff}
	skyColor    = color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}
	flashColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer draws the level tiles and every boxed entity as colored rects,
// offset by the camera. It is a draw pass, not a ticked system.
type Renderer struct {
	level *levels.Level
}

func NewRenderer(level *levels.Level) *Renderer {
	return &Renderer{level: level}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	screen.Fill(skyColor)

	var camX, camY float64
	if _, cam, ok := w.Cameras.First(); ok {
		camX, camY = cam.X, cam.Y
	}

	r.drawTiles(screen, camX, camY)
	r.drawBoxes(w, screen, camX, camY)
}

func (r *Renderer) drawTiles(screen *ebiten.Image, camX, camY float64) {
	if r.level == nil {
		return
	}

	// Only the visible tile window.
	x0 := int(camX) / common.TileSize
	y0 := int(camY) / common.TileSize
	x1 := x0 + common.BaseWidth/common.TileSize + 2
	y1 := y0 + common.BaseHeight/common.TileSize + 2

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			kind := r.level.TileAt(x, y)
			if kind == levels.TileEmpty {
				continue
			}
			clr := solidColor
			if kind == levels.TileHazard {
				clr = hazardColor
			}
			vector.DrawFilledRect(
				screen,
				float32(float64(x*common.TileSize)-camX),
				float32(float64(y*common.TileSize)-camY),
				float32(common.TileSize),
				float32(common.TileSize),
				clr,
				false,
			)
		}
	}
}

func (r *Renderer) drawBoxes(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	type drawable struct {
		id  int
		box *component.Box
		t   *component.Transform
	}

	items := make([]drawable, 0, w.Boxes.Len())
	w.Boxes.ForEach(func(id int, box *component.Box) {
		if t := w.Transforms.Get(id); t != nil {
			items = append(items, drawable{id: id, box: box, t: t})
		}
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Layer < items[j].box.Layer
	})

	for _, it := range items {
		clr := it.box.Color

		if flash := w.Flashes.Get(it.id); flash != nil && flash.On {
			clr = flashColor
		}
		// The player blinks through the invincibility window.
		if mover := w.Movers.Get(it.id); mover != nil && mover.IsInvincible() {
			if int(mover.Invincible/0.1)%2 == 0 {
				continue
			}
		}
		if it.box.Fade > 0 && it.box.Fade < 1 {
			clr.A = uint8(float64(clr.A) * it.box.Fade)
		}

		vector.DrawFilledRect(
			screen,
			float32(it.t.X-it.box.Width/2-camX),
			float32(it.t.Y-it.box.Height/2-camY),
			float32(it.box.Width),
			float32(it.box.Height),
			clr,
			false,
		)
	}
}
