package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

const defaultLevel = "courtyard"

// mapSource names where the game should take its first map from.
type mapSource struct {
	Level     string
	Generator string
	Seed      int64
}

// loadStartMap tries, in order, the generator, the named level, the editor
// handoff slot and the bundled default level. It never fails: the last
// resort is levels.DefaultMap.
func loadStartMap(store storage.Store, src mapSource) (*levels.Map, string) {
	if src.Generator != "" {
		m, err := generateMap(src.Generator, src.Seed)
		if err == nil {
			return m, "generator " + src.Generator
		}
		log.Printf("failed to generate map %s: %v", src.Generator, err)
	}
	if src.Level != "" {
		m, err := levels.LoadLevelFromFS(src.Level)
		if err == nil {
			return m, "level " + src.Level
		}
		log.Printf("failed to load level %s: %v", src.Level, err)
	}
	if store != nil {
		m, err := storage.LoadMap(store, storage.HandoffKey)
		if err == nil {
			return m, "test map"
		}
		log.Printf("no test map: %v", err)
	}
	m, err := levels.LoadLevelFromFS(defaultLevel)
	if err == nil {
		return m, "level " + defaultLevel
	}
	log.Printf("failed to load level %s: %v", defaultLevel, err)
	return levels.DefaultMap(), "default map"
}

// generateMap runs a generator script from disk, or a bundled one when no
// such file exists.
func generateMap(name string, seed int64) (*levels.Map, error) {
	g := levels.Generator{
		Width:    common.DefaultMapWidth,
		Height:   common.DefaultMapHeight,
		TileSize: common.TileSize,
		Seed:     seed,
	}
	if strings.HasSuffix(name, ".tengo") {
		if src, err := os.ReadFile(name); err == nil {
			g.Name = strings.TrimSuffix(filepath.Base(name), ".tengo")
			return levels.GenerateScript(src, g)
		}
	}
	m, err := levels.GenerateEmbedded(name, g)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", name, err)
	}
	return m, nil
}
