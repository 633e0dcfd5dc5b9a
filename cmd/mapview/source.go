package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

// mapSource names where the viewer reads its map from. The first non-empty
// of File, Level and Slot wins; with none set the test map is shown.
type mapSource struct {
	File  string
	Level string
	Slot  string
}

// key returns the store key the source reads, or "" for files and levels.
func (src mapSource) key() string {
	if src.File != "" || src.Level != "" {
		return ""
	}
	if src.Slot != "" {
		return storage.SlotKey(src.Slot)
	}
	return storage.HandoffKey
}

func (src mapSource) String() string {
	switch {
	case src.File != "":
		return "file " + src.File
	case src.Level != "":
		return "level " + src.Level
	case src.Slot != "":
		return "slot " + src.Slot
	}
	return "test map"
}

func (src mapSource) load(store storage.Store) (*levels.Map, error) {
	switch {
	case src.File != "":
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("read map: %w", err)
		}
		return levels.Unmarshal(data, levels.FormatForPath(src.File))
	case src.Level != "":
		return levels.LoadLevelFromFS(src.Level)
	}
	if store == nil {
		return nil, errors.New("no storage configured")
	}
	return storage.LoadMap(store, src.key())
}
