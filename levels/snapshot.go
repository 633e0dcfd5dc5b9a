package levels

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Snapshot is the serialized form of a Map shared by the editor, the game
// and the stores.
type Snapshot struct {
	Name     string         `json:"name" yaml:"name"`
	Width    int            `json:"width" yaml:"width"`
	Height   int            `json:"height" yaml:"height"`
	TileSize int            `json:"tileSize" yaml:"tileSize"`
	Layers   SnapshotLayers `json:"layers" yaml:"layers"`
	Spawn    *Point         `json:"spawn,omitempty" yaml:"spawn,omitempty"`
	Metadata Metadata       `json:"metadata" yaml:"metadata"`
}

type SnapshotLayers struct {
	Ground    [][]TileRef `json:"ground" yaml:"ground"`
	Objects   [][]TileRef `json:"objects" yaml:"objects"`
	Collision [][]bool    `json:"collision" yaml:"collision"`
}

type Metadata struct {
	Created      string `json:"created" yaml:"created"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
}

// Snapshot copies the map into its serialized form.
func (m *Map) Snapshot() Snapshot {
	s := Snapshot{
		Name:     m.Name,
		Width:    m.Width,
		Height:   m.Height,
		TileSize: m.TileSize,
		Spawn:    &Point{X: m.Spawn.X, Y: m.Spawn.Y},
		Metadata: Metadata{
			Created:      formatTimestamp(m.Created),
			LastModified: formatTimestamp(m.LastModified),
		},
	}
	s.Layers.Ground = make([][]TileRef, m.Height)
	s.Layers.Objects = make([][]TileRef, m.Height)
	s.Layers.Collision = make([][]bool, m.Height)
	for y := 0; y < m.Height; y++ {
		s.Layers.Ground[y] = append([]TileRef(nil), m.ground[y]...)
		s.Layers.Objects[y] = append([]TileRef(nil), m.objects[y]...)
		s.Layers.Collision[y] = append([]bool(nil), m.collision[y]...)
	}
	return s
}

// FromSnapshot validates s and builds a Map from it. A missing tile size
// falls back to DefaultTileSize and a missing or out of range spawn is
// moved back onto the grid.
func FromSnapshot(s Snapshot) (*Map, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedSnapshot, s.Width, s.Height)
	}
	tileSize := s.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}
	if tileSize < 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrMalformedSnapshot, tileSize)
	}
	if err := checkRows("ground", len(s.Layers.Ground), s.Height, func(y int) int { return len(s.Layers.Ground[y]) }, s.Width); err != nil {
		return nil, err
	}
	if err := checkRows("objects", len(s.Layers.Objects), s.Height, func(y int) int { return len(s.Layers.Objects[y]) }, s.Width); err != nil {
		return nil, err
	}
	if err := checkRows("collision", len(s.Layers.Collision), s.Height, func(y int) int { return len(s.Layers.Collision[y]) }, s.Width); err != nil {
		return nil, err
	}

	m, err := NewMap(s.Name, s.Width, s.Height, tileSize)
	if err != nil {
		return nil, err
	}
	for y := 0; y < s.Height; y++ {
		copy(m.ground[y], s.Layers.Ground[y])
		copy(m.objects[y], s.Layers.Objects[y])
		copy(m.collision[y], s.Layers.Collision[y])
	}
	if s.Spawn != nil {
		m.Spawn = *s.Spawn
		m.clampSpawn()
	}
	if t, ok := parseTimestamp(s.Metadata.Created); ok {
		m.Created = t
	}
	if t, ok := parseTimestamp(s.Metadata.LastModified); ok {
		m.LastModified = t
	}
	return m, nil
}

func checkRows(layer string, rows, height int, rowLen func(int) int, width int) error {
	if rows != height {
		return fmt.Errorf("%w: layer %s has %d rows, want %d", ErrMalformedSnapshot, layer, rows, height)
	}
	for y := 0; y < rows; y++ {
		if n := rowLen(y); n != width {
			return fmt.Errorf("%w: layer %s row %d has %d cells, want %d", ErrMalformedSnapshot, layer, y, n, width)
		}
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
