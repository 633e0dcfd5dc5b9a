package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
	"github.com/milk9111/topdown/storage"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	levelName := flag.String("level", "", "level name to start from (basename, .json optional)")
	slot := flag.String("slot", "", "saved map to open")
	exportPath := flag.String("export", "", "export target for Ctrl+E (.json or .yaml)")
	importPath := flag.String("import", "", "import source for Ctrl+O (.json or .yaml)")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	ec := cfg.Editor
	if *exportPath != "" {
		ec.Export = *exportPath
	}
	if *importPath != "" {
		ec.Import = *importPath
	}

	var store storage.Store
	if s, err := cfg.OpenStore(); err != nil {
		log.Printf("storage unavailable: %v", err)
	} else {
		store = s
		defer store.Close()
	}

	m, err := levels.NewMap(ec.MapName, ec.MapWidth, ec.MapHeight, ec.TileSize)
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		if lm, err := levels.LoadLevelFromFS(*levelName); err != nil {
			log.Printf("failed to load level %s: %v", *levelName, err)
		} else {
			m = lm
		}
	}

	session := editor.NewSession(m, ec.History)
	session.AutoLayer = ec.AutoLayer

	ws := NewWorkspace(session, store)
	ws.ExportPath = ec.Export
	ws.ImportPath = ec.Import
	ws.NewWidth, ws.NewHeight, ws.NewTileSize = ec.MapWidth, ec.MapHeight, ec.TileSize
	if *slot != "" {
		if err := ws.LoadSlot(*slot); err != nil {
			log.Printf("failed to open map %s: %v", *slot, err)
		}
	}

	surface := obj.NewImageSurface(assets.LoadOptional(cfg.Assets.Tileset), nil)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title + " editor")

	game := NewEditorGame(ws, surface, newSystemClipboard(), cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
