package system

import (
	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
)

// CameraSystem eases the camera toward the player and clamps the viewport
// to the level bounds.
type CameraSystem struct {
	levelW, levelH float64
}

func NewCameraSystem(levelW, levelH float64) *CameraSystem {
	return &CameraSystem{levelW: levelW, levelH: levelH}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, cam, ok := w.Cameras.First()
	if !ok {
		return
	}

	pid := w.Player()
	target := w.Transforms.Get(pid)
	if target == nil {
		return
	}

	tx := target.X - common.BaseWidth/2
	ty := target.Y - common.BaseHeight/2

	if cam.Smoothness <= 0 {
		cam.X, cam.Y = tx, ty
	} else {
		// Exponential trail; Smoothness is the fraction of the gap closed
		// per tick at 60hz.
		cam.X = common.Lerp(cam.X, tx, cam.Smoothness)
		cam.Y = common.Lerp(cam.Y, ty, cam.Smoothness)
	}

	maxX := s.levelW - common.BaseWidth
	maxY := s.levelH - common.BaseHeight
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	cam.X = common.Clamp(cam.X, 0, maxX)
	cam.Y = common.Clamp(cam.Y, 0, maxY)
}
