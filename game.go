package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/pondshot/common"
	"github.com/milk9111/pondshot/ecs"
	"github.com/milk9111/pondshot/ecs/system"
	"github.com/milk9111/pondshot/prefabs"
	"github.com/milk9111/pondshot/save"
)

const gameOverDelay = 90 // ticks between death and the game-over screen

type Game struct {
	frames int

	levelName string
	dev       bool
	debug     bool

	session *session
	sv      *save.Manager
	audio   *system.AudioSystem

	paused     bool
	gameOver   bool
	deathTicks int

	pauseUI         *ebitenui.UI
	gameOverUI      *ebitenui.UI
	onGameOverShown func()

	watcher *prefabs.Watcher
}

func NewGame(levelName string, dev, debug bool) *Game {
	if levelName == "" {
		levelName = "pond.json"
	}

	sv := save.Open("pondshot")
	g := &Game{
		levelName: levelName,
		dev:       dev,
		debug:     debug,
		sv:        sv,
		audio:     system.NewAudioSystem(sv.Muted()),
	}

	if err := g.restart(); err != nil {
		log.Fatalf("start session: %v", err)
	}

	g.pauseUI = NewPauseUI(g)
	g.gameOverUI = NewGameOverUI(g)

	if dev {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

// restart builds a fresh session against the current prefabs and level.
func (g *Game) restart() error {
	s, err := newSession(g.levelName, g.dev, g.sv, g.audio)
	if err != nil {
		return err
	}

	g.session = s
	g.gameOver = false
	g.deathTicks = 0

	s.world.Bus.Subscribe(ecs.EventDied, func(ev ecs.Event) {
		if ev.Entity == s.playerID {
			g.deathTicks = 1
		}
	})
	return nil
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()

	if g.gameOver {
		g.gameOverUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		muted := !g.sv.Muted()
		g.sv.SetMuted(muted)
		g.audio.SetMuted(muted)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.session.world.Update()

	if g.deathTicks > 0 {
		g.deathTicks++
		if g.deathTicks >= gameOverDelay {
			g.gameOver = true
			if g.onGameOverShown != nil {
				g.onGameOverShown()
			}
		}
	}

	return nil
}

// drainWatcher rebuilds the session when a prefab, script, or level file
// changes on disk. The run restarts; score does not carry over.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Changed()
	if err != nil {
		log.Printf("watch: %v", err)
	}
	if len(changed) == 0 {
		return
	}
	for _, name := range changed {
		log.Printf("reload: %s", name)
	}
	if err := g.restart(); err != nil {
		log.Printf("reload failed: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	s.renderer.Draw(s.world, screen)
	s.particles.Draw(s.world, screen)
	s.hud.Draw(s.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	if g.gameOver {
		g.gameOverUI.Draw(screen)
	} else if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
