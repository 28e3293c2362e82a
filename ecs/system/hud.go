package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/pondshot/ecs"
)

const (
	hudMargin     = 12.0
	healthBarW    = 220.0
	healthBarH    = 14.0
	reloadBarH    = 6.0
	hudLineHeight = 16.0
)

var (
	hudBack    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x90}
	healthFill = color.NRGBA{R: 0x3f, G: 0xc4, B: 0x5e, A: 0xff}
	healthLow  = color.NRGBA{R: 0xd8, G: 0x3a, B: 0x2a, A: 0xff}
	reloadFill = color.NRGBA{R: 0xe8, G: 0xc5, B: 0x4a, A: 0xff}
	hudText    = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// HUD draws health, ammo, reload progress, and score as a screen-space
// overlay after the world render.
type HUD struct {
	face  ebtext.Face
	score *ScoreSystem
}

func NewHUD(score *ScoreSystem) *HUD {
	return &HUD{
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
		score: score,
	}
}

func (h *HUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	pid := w.Player()
	mover := w.Movers.Get(pid)
	if mover == nil {
		return
	}

	// Health bar.
	vector.DrawFilledRect(screen, hudMargin, hudMargin, healthBarW, healthBarH, hudBack, false)
	frac := float64(mover.Health) / float64(mover.Config.MaxHealth)
	fill := healthFill
	if frac <= 0.25 {
		fill = healthLow
	}
	vector.DrawFilledRect(screen, hudMargin, hudMargin, float32(healthBarW*frac), healthBarH, fill, false)

	y := hudMargin + float64(healthBarH) + 8

	// Weapon line with reload bar underneath while reloading.
	if arsenal := w.Arsenals.Get(pid); arsenal != nil {
		if weapon := arsenal.CurrentWeapon(); weapon != nil {
			line := fmt.Sprintf("%s  %d/%d", weapon.Name, weapon.Ammo, weapon.MaxAmmo)
			if arsenal.Reloading {
				line = weapon.Name + "  reloading"
			}
			h.text(screen, line, hudMargin, y)
			y += hudLineHeight
		}
		if p := arsenal.ReloadProgress(); p > 0 {
			vector.DrawFilledRect(screen, hudMargin, float32(y), healthBarW, reloadBarH, hudBack, false)
			vector.DrawFilledRect(screen, hudMargin, float32(y), float32(healthBarW*p), reloadBarH, reloadFill, false)
			y += reloadBarH + 6
		}
	}

	if h.score != nil {
		h.text(screen, fmt.Sprintf("score %d", h.score.Score()), hudMargin, y)
		y += hudLineHeight
		h.text(screen, fmt.Sprintf("best  %d", h.score.HighScore()), hudMargin, y)
	}
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudText)
	ebtext.Draw(screen, s, h.face, op)
}
