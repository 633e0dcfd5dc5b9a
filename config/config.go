package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/storage"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Game    GameConfig    `yaml:"game"`
	Editor  EditorConfig  `yaml:"editor"`
	Storage StorageConfig `yaml:"storage"`
	Assets  AssetsConfig  `yaml:"assets"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GameConfig struct {
	Debug bool    `yaml:"debug"`
	Watch bool    `yaml:"watch"`
	Speed float64 `yaml:"speed"`
	Level string  `yaml:"level"`
}

type EditorConfig struct {
	History   int    `yaml:"history"`
	MapName   string `yaml:"map_name"`
	MapWidth  int    `yaml:"map_width"`
	MapHeight int    `yaml:"map_height"`
	TileSize  int    `yaml:"tile_size"`
	AutoLayer bool   `yaml:"auto_layer"`
	Export    string `yaml:"export"`
	Import    string `yaml:"import"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
	DSN    string `yaml:"dsn"`
}

type AssetsConfig struct {
	Tileset string `yaml:"tileset"`
	Player  string `yaml:"player"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  common.BaseWidth,
			Height: common.BaseHeight,
			Title:  "topdown",
		},
		Game: GameConfig{
			Speed: common.PlayerSpeed,
		},
		Editor: EditorConfig{
			History:   editor.DefaultHistoryLimit,
			MapName:   levels.DefaultName,
			MapWidth:  common.DefaultMapWidth,
			MapHeight: common.DefaultMapHeight,
			TileSize:  common.TileSize,
			AutoLayer: true,
			Export:    "map.json",
			Import:    "map.json",
		},
		Storage: StorageConfig{
			Driver: DriverFile,
			Dir:    "saves",
		},
		Assets: AssetsConfig{
			Tileset: assets.TilesetPath,
			Player:  assets.PlayerPath,
		},
	}
}

// Load reads a YAML config over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Editor.MapWidth <= 0 || c.Editor.MapHeight <= 0 || c.Editor.TileSize <= 0 {
		return fmt.Errorf("editor map %dx%d@%d: %w", c.Editor.MapWidth, c.Editor.MapHeight, c.Editor.TileSize, levels.ErrInvalidDimensions)
	}
	if c.Game.Speed <= 0 {
		return fmt.Errorf("game speed %v", c.Game.Speed)
	}
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage dir is empty")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage dsn is empty")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// OpenStore opens the configured storage backend.
func (c Config) OpenStore() (storage.Store, error) {
	switch c.Storage.Driver {
	case DriverPostgres:
		s, err := storage.NewPostgresStore(c.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverFile, "":
		s, err := storage.NewFileStore(c.Storage.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
}
