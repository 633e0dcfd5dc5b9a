package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"tileset.png", "tileset.png"},
		{"assets/player.png", "player.png"},
		{"/home/me/topdown/assets/tileset.png", "tileset.png"},
		{"/tmp/other.png", "other.png"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeEmbeddedSheets(t *testing.T) {
	cases := []struct {
		path string
		size int
	}{
		{TilesetPath, 128},
		{PlayerPath, 128},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			img, err := DecodeImage(tc.path)
			if err != nil {
				t.Fatalf("DecodeImage: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tc.size || b.Dy() != tc.size {
				t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tc.size, tc.size)
			}
		})
	}
}

func TestLoadFileFromDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.bin")
	if err := os.WriteFile(p, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if string(b) != "abc" {
		t.Fatalf("LoadFile = %q", b)
	}
	if _, err := LoadFile("missing.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
	if _, err := DecodeImage(p); err == nil {
		t.Fatalf("expected decode error")
	}
}
