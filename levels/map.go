package levels

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	ErrMalformedSnapshot = errors.New("malformed map snapshot")
	ErrUnknownLayer      = errors.New("unknown layer")
)

const DefaultName = "Untitled"

type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Map is a three layer tile grid. Every layer always holds exactly
// Height rows of Width cells.
type Map struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Spawn    Point

	Created      time.Time
	LastModified time.Time

	ground    [][]TileRef
	objects   [][]TileRef
	collision [][]bool
}

// NewMap creates an empty map with the spawn point in the middle.
func NewMap(name string, width, height, tileSize int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, tileSize)
	}
	if name == "" {
		name = DefaultName
	}
	now := time.Now().UTC()
	m := &Map{
		Name:         name,
		TileSize:     tileSize,
		Created:      now,
		LastModified: now,
	}
	m.allocate(width, height)
	m.Spawn = Point{X: width / 2, Y: height / 2}
	return m, nil
}

func (m *Map) allocate(width, height int) {
	m.Width = width
	m.Height = height
	m.ground = make([][]TileRef, height)
	m.objects = make([][]TileRef, height)
	m.collision = make([][]bool, height)
	for y := 0; y < height; y++ {
		m.ground[y] = make([]TileRef, width)
		m.objects[y] = make([]TileRef, width)
		m.collision[y] = make([]bool, width)
	}
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Get returns the cell at (x, y). Reads outside the grid return an empty
// tile, or a blocked cell for the collision layer.
func (m *Map) Get(layer Layer, x, y int) Cell {
	if !m.InBounds(x, y) {
		return Cell{Blocked: layer == Collision}
	}
	switch layer {
	case Ground:
		return Cell{Tile: m.ground[y][x]}
	case Objects:
		return Cell{Tile: m.objects[y][x]}
	case Collision:
		return Cell{Blocked: m.collision[y][x]}
	}
	return Cell{}
}

// Set writes c into the layer. Only the field relevant to the layer is used.
func (m *Map) Set(layer Layer, x, y int, c Cell) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("set %s (%d,%d) on %dx%d map: %w", layer, x, y, m.Width, m.Height, ErrOutOfBounds)
	}
	switch layer {
	case Ground:
		m.ground[y][x] = c.Tile
	case Objects:
		m.objects[y][x] = c.Tile
	case Collision:
		m.collision[y][x] = c.Blocked
	default:
		return fmt.Errorf("set %s: %w", layer, ErrUnknownLayer)
	}
	return nil
}

func (m *Map) Tile(layer Layer, x, y int) TileRef {
	return m.Get(layer, x, y).Tile
}

func (m *Map) SetTile(layer Layer, x, y int, t TileRef) error {
	return m.Set(layer, x, y, TileCell(t))
}

// Blocked reports whether the collision layer blocks (x, y). Anything
// outside the grid is blocked.
func (m *Map) Blocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.collision[y][x]
}

func (m *Map) SetBlocked(x, y int, blocked bool) error {
	return m.Set(Collision, x, y, BlockedCell(blocked))
}

// Resize discards every layer and reallocates them empty at the new size.
func (m *Map) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	m.allocate(width, height)
	m.clampSpawn()
	return nil
}

func (m *Map) SetSpawn(x, y int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("spawn (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.Spawn = Point{X: x, Y: y}
	return nil
}

func (m *Map) clampSpawn() {
	if m.Spawn.X >= m.Width {
		m.Spawn.X = m.Width - 1
	}
	if m.Spawn.Y >= m.Height {
		m.Spawn.Y = m.Height - 1
	}
	if m.Spawn.X < 0 {
		m.Spawn.X = 0
	}
	if m.Spawn.Y < 0 {
		m.Spawn.Y = 0
	}
}

// PixelSize returns the world size in pixels.
func (m *Map) PixelSize() (int, int) {
	return m.Width * m.TileSize, m.Height * m.TileSize
}

// SpawnPosition returns the world pixel position of the spawn tile.
func (m *Map) SpawnPosition() (float64, float64) {
	return float64(m.Spawn.X * m.TileSize), float64(m.Spawn.Y * m.TileSize)
}

func (m *Map) Touch(now time.Time) {
	m.LastModified = now.UTC()
}

func (m *Map) Clone() *Map {
	c := *m
	c.allocate(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		copy(c.ground[y], m.ground[y])
		copy(c.objects[y], m.objects[y])
		copy(c.collision[y], m.collision[y])
	}
	return &c
}

// Equal compares dimensions, tile size, spawn and every layer. Name and
// timestamps are ignored.
func (m *Map) Equal(o *Map) bool {
	if m.Width != o.Width || m.Height != o.Height || m.TileSize != o.TileSize || m.Spawn != o.Spawn {
		return false
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.ground[y][x].Equal(o.ground[y][x]) ||
				!m.objects[y][x].Equal(o.objects[y][x]) ||
				m.collision[y][x] != o.collision[y][x] {
				return false
			}
		}
	}
	return true
}
