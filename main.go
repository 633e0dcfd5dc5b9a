package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/storage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "reload the test map whenever the editor writes it")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	gen := flag.String("gen", "", "tengo generator: bundled name or path to a .tengo file")
	seed := flag.Int64("seed", 1, "seed passed to the generator")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Game.Debug = true
	}
	if *watch {
		cfg.Game.Watch = true
	}
	if *levelName != "" {
		cfg.Game.Level = *levelName
	}

	var store storage.Store
	if s, err := cfg.OpenStore(); err != nil {
		log.Printf("storage unavailable: %v", err)
	} else {
		store = s
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, store, mapSource{Level: cfg.Game.Level, Generator: *gen, Seed: *seed})
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
