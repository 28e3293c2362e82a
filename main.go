package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show frame and tick counters")
	dev := flag.Bool("dev", false, "watch prefabs and levels for edits and hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	name := *levelName
	if name != "" && !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("pondshot")

	game := NewGame(name, *dev, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
