package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	file := flag.String("file", "", "map file to show (.json or .yaml)")
	level := flag.String("level", "", "embedded level to show")
	slot := flag.String("slot", "", "saved map to show (defaults to the test map)")
	watch := flag.Bool("watch", false, "redraw when the shown slot changes on disk")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	var store storage.Store
	if s, err := cfg.OpenStore(); err != nil {
		log.Printf("storage unavailable: %v", err)
	} else {
		store = s
		defer store.Close()
	}

	src := mapSource{File: *file, Level: *level, Slot: *slot}
	m, err := src.load(store)
	if err != nil {
		log.Printf("failed to load %s: %v; showing default map", src, err)
		m = levels.DefaultMap()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	if *watch {
		if w := watchSlot(store, src, screen); w != nil {
			defer w.Close()
		}
	}

	run(screen, NewViewer(screen, m, src.String()), store, src)
}

// watchSlot forwards changes of the shown slot to the event loop as
// interrupt events.
func watchSlot(store storage.Store, src mapSource, screen tcell.Screen) *storage.Watcher {
	fs, ok := store.(*storage.FileStore)
	if !ok || src.key() == "" {
		log.Printf("watch needs a slot on the file storage driver")
		return nil
	}
	w, err := storage.NewWatcher(fs.Dir())
	if err != nil {
		log.Printf("failed to watch %s: %v", fs.Dir(), err)
		return nil
	}
	go func() {
		for key := range w.Events {
			if key == src.key() {
				_ = screen.PostEvent(tcell.NewEventInterrupt(key))
			}
		}
	}()
	return w
}

func run(screen tcell.Screen, v *Viewer, store storage.Store, src mapSource) {
	reload := func() {
		m, err := src.load(store)
		if err != nil {
			v.SetMap(v.m, "reload failed: "+err.Error())
			return
		}
		v.SetMap(m, src.String())
	}

	v.Draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.resize()
			v.Draw()
		case *tcell.EventInterrupt:
			reload()
			v.Draw()
		case *tcell.EventKey:
			switch v.command(ev.Key(), ev.Rune()) {
			case actionQuit:
				return
			case actionReload:
				reload()
				v.Draw()
			case actionRedraw:
				v.Draw()
			}
		}
	}
}
