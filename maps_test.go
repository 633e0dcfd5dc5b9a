package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

func TestLoadStartMap(t *testing.T) {
	handoff, err := levels.NewMap("handoff", 3, 2, 64)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	cases := []struct {
		name     string
		src      mapSource
		handoff  []byte
		wantFrom string
		wantName string
	}{
		{"bundled default", mapSource{}, nil, "level courtyard", "courtyard"},
		{"test map", mapSource{}, []byte("map"), "test map", "handoff"},
		{"malformed test map", mapSource{}, []byte(`{"width":1}`), "level courtyard", "courtyard"},
		{"named level wins", mapSource{Level: "courtyard"}, []byte("map"), "level courtyard", "courtyard"},
		{"unknown level", mapSource{Level: "nope"}, []byte("map"), "test map", "handoff"},
		{"generator", mapSource{Generator: "meadow", Seed: 3}, nil, "generator meadow", "meadow"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := storage.NewFileStore(t.TempDir())
			if err != nil {
				t.Fatalf("NewFileStore: %v", err)
			}
			switch {
			case string(tc.handoff) == "map":
				if err := storage.SaveMap(store, storage.HandoffKey, handoff); err != nil {
					t.Fatalf("SaveMap: %v", err)
				}
			case tc.handoff != nil:
				_ = store.Save(storage.HandoffKey, tc.handoff)
			}

			m, from := loadStartMap(store, tc.src)
			if from != tc.wantFrom {
				t.Fatalf("from = %q, want %q", from, tc.wantFrom)
			}
			if m.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", m.Name, tc.wantName)
			}
		})
	}
}

func TestLoadStartMapWithoutStore(t *testing.T) {
	m, from := loadStartMap(nil, mapSource{})
	if m == nil || from != "level courtyard" {
		t.Fatalf("unexpected fallback %q", from)
	}
}

func TestGenerateMapFromFile(t *testing.T) {
	src := `
ground = func(x, y) { return [0, 1] }
collision = func(x, y) { return x == 0 }
spawn := [2, 2]
`
	p := filepath.Join(t.TempDir(), "flat.tengo")
	if err := os.WriteFile(p, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := generateMap(p, 1)
	if err != nil {
		t.Fatalf("generateMap: %v", err)
	}
	if !m.Blocked(0, 3) || m.Blocked(1, 3) {
		t.Fatalf("collision column not generated")
	}
	if !m.Tile(levels.Ground, 4, 4).Equal(levels.Atlas(0, 1)) {
		t.Fatalf("ground not generated")
	}
	if m.Spawn != (levels.Point{X: 2, Y: 2}) {
		t.Fatalf("spawn = %+v", m.Spawn)
	}
}
