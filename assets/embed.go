package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

const (
	TilesetPath = "tileset.png"
	PlayerPath  = "player.png"
)

// LoadImage loads an image by assets-relative path, falling back to the
// file system for paths that are not embedded.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeImage decodes an image without uploading it to the GPU.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFile reads an embedded asset, or a file on disk when nothing is
// embedded under that name.
func LoadFile(path string) ([]byte, error) {
	if b, err := assetsFS.ReadFile(cleanAssetPath(path)); err == nil {
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", path, err)
	}
	return b, nil
}

// LoadOptional logs a failed load and returns nil so callers can draw
// fallback colours.
func LoadOptional(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, err := LoadImage(path)
	if err != nil {
		log.Printf("[assets] %v; using fallback colours", err)
		return nil
	}
	return img
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
