package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/topdown/levels"
)

var ErrEmptyClipboard = errors.New("clipboard is empty")

// Clipboard is a detached copy of a rectangular region across all three
// layers. Rows are indexed [dy][dx].
type Clipboard struct {
	Width  int                   `json:"width"`
	Height int                   `json:"height"`
	Layers levels.SnapshotLayers `json:"layers"`
}

func newClipboard(w, h int) *Clipboard {
	c := &Clipboard{Width: w, Height: h}
	c.Layers.Ground = make([][]levels.TileRef, h)
	c.Layers.Objects = make([][]levels.TileRef, h)
	c.Layers.Collision = make([][]bool, h)
	for y := 0; y < h; y++ {
		c.Layers.Ground[y] = make([]levels.TileRef, w)
		c.Layers.Objects[y] = make([]levels.TileRef, w)
		c.Layers.Collision[y] = make([]bool, w)
	}
	return c
}

func (c *Clipboard) Cell(layer levels.Layer, dx, dy int) levels.Cell {
	switch layer {
	case levels.Ground:
		return levels.TileCell(c.Layers.Ground[dy][dx])
	case levels.Objects:
		return levels.TileCell(c.Layers.Objects[dy][dx])
	default:
		return levels.BlockedCell(c.Layers.Collision[dy][dx])
	}
}

func (c *Clipboard) set(layer levels.Layer, dx, dy int, cell levels.Cell) {
	switch layer {
	case levels.Ground:
		c.Layers.Ground[dy][dx] = cell.Tile
	case levels.Objects:
		c.Layers.Objects[dy][dx] = cell.Tile
	default:
		c.Layers.Collision[dy][dx] = cell.Blocked
	}
}

// EncodeClipboard renders c as JSON text for the system clipboard.
func EncodeClipboard(c *Clipboard) ([]byte, error) {
	if c == nil {
		return nil, ErrEmptyClipboard
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode clipboard: %w", err)
	}
	return data, nil
}

// DecodeClipboard parses text produced by EncodeClipboard and checks that
// every layer matches the declared size.
func DecodeClipboard(data []byte) (*Clipboard, error) {
	var c Clipboard
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode clipboard: %w", err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("decode clipboard: %w", ErrEmptyClipboard)
	}
	if len(c.Layers.Ground) != c.Height || len(c.Layers.Objects) != c.Height || len(c.Layers.Collision) != c.Height {
		return nil, fmt.Errorf("decode clipboard: want %d rows", c.Height)
	}
	for y := 0; y < c.Height; y++ {
		if len(c.Layers.Ground[y]) != c.Width || len(c.Layers.Objects[y]) != c.Width || len(c.Layers.Collision[y]) != c.Width {
			return nil, fmt.Errorf("decode clipboard: row %d: want %d cells", y, c.Width)
		}
	}
	return &c, nil
}
