package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

// Workspace connects an editing session to the slot store and the import
// and export files.
type Workspace struct {
	Session *editor.Session
	Store   storage.Store

	ExportPath string
	ImportPath string

	NewWidth    int
	NewHeight   int
	NewTileSize int

	now func() time.Time
}

func NewWorkspace(s *editor.Session, store storage.Store) *Workspace {
	return &Workspace{Session: s, Store: store, now: time.Now}
}

func (w *Workspace) requireStore() error {
	if w.Store == nil {
		return errors.New("no storage configured")
	}
	return nil
}

// Save writes the map to its named slot and to the test map slot. The
// session map keeps its name and timestamp when the slot write fails.
func (w *Workspace) Save(name string) error {
	if err := w.requireStore(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = w.Session.Map.Name
	}
	now := w.now()
	saved := w.Session.Map.Clone()
	saved.Name = name
	saved.Touch(now)
	if err := storage.SaveMap(w.Store, storage.SlotKey(name), saved); err != nil {
		return err
	}
	w.Session.Map.Name = name
	w.Session.MarkSaved(now)
	return storage.SaveMap(w.Store, storage.HandoffKey, saved)
}

// LoadSlot replaces the session map with the named slot. The session is
// left untouched on error.
func (w *Workspace) LoadSlot(name string) error {
	if err := w.requireStore(); err != nil {
		return err
	}
	m, err := storage.LoadMap(w.Store, storage.SlotKey(strings.TrimSpace(name)))
	if err != nil {
		return err
	}
	w.Session.Load(m)
	return nil
}

// TestMap hands the current map to the game.
func (w *Workspace) TestMap() error {
	if err := w.requireStore(); err != nil {
		return err
	}
	return storage.SaveMap(w.Store, storage.HandoffKey, w.Session.Map)
}

// Export writes the map to ExportPath as JSON or YAML depending on the
// file extension.
func (w *Workspace) Export() error {
	if w.ExportPath == "" {
		return errors.New("no export path")
	}
	data, err := levels.Marshal(w.Session.Map, levels.FormatForPath(w.ExportPath))
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.ExportPath, data, 0644); err != nil {
		return fmt.Errorf("export map: %w", err)
	}
	return nil
}

// Import reads ImportPath and replaces the session map with it.
func (w *Workspace) Import() error {
	if w.ImportPath == "" {
		return errors.New("no import path")
	}
	data, err := os.ReadFile(w.ImportPath)
	if err != nil {
		return fmt.Errorf("import map: %w", err)
	}
	m, err := levels.Unmarshal(data, levels.FormatForPath(w.ImportPath))
	if err != nil {
		return fmt.Errorf("import %s: %w", w.ImportPath, err)
	}
	w.Session.Load(m)
	return nil
}

// NewMap starts over with an empty map of the configured size.
func (w *Workspace) NewMap() error {
	return w.Session.NewMap(w.NewWidth, w.NewHeight, w.NewTileSize)
}

// Slots lists the names of the saved slots.
func (w *Workspace) Slots() ([]string, error) {
	if err := w.requireStore(); err != nil {
		return nil, err
	}
	keys, err := w.Store.List()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, k := range keys {
		if name, ok := storage.SlotName(k); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
