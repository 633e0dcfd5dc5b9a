package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/topdown/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "topdown.yaml")
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
game:
  debug: true
editor:
  map_width: 12
  auto_layer: false
storage:
  dir: slots
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Game.Debug || cfg.Editor.MapWidth != 12 || cfg.Editor.AutoLayer || cfg.Storage.Dir != "slots" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Editor.MapHeight != Default().Editor.MapHeight {
		t.Fatalf("unset field lost its default")
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad yaml", "window: [1,"},
		{"bad driver", "storage:\n  driver: redis\n"},
		{"postgres without dsn", "storage:\n  driver: postgres\n"},
		{"zero map", "editor:\n  map_height: 0\n"},
		{"zero speed", "game:\n  speed: 0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestOpenFileStore(t *testing.T) {
	cfg := Default()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "saves")
	s, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*storage.FileStore); !ok {
		t.Fatalf("expected *storage.FileStore, got %T", s)
	}
}
