package editor

import "fmt"

type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolFill
	ToolSelect
)

// Tools lists the tools in toolbar order.
var Tools = []Tool{ToolBrush, ToolEraser, ToolFill, ToolSelect}

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolEraser:
		return "Eraser"
	case ToolFill:
		return "Fill"
	case ToolSelect:
		return "Select"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// DrawMode controls whether the brush overwrites occupied cells.
type DrawMode int

const (
	DrawReplace DrawMode = iota
	DrawOverlay
)

func (d DrawMode) String() string {
	if d == DrawOverlay {
		return "Overlay"
	}
	return "Replace"
}

// AtlasPos addresses a tile in the atlas by row and column.
type AtlasPos struct {
	Row, Col int
}

// Stamp is a rectangular atlas selection. Start is the corner that was
// clicked first; painting offsets are measured from it.
type Stamp struct {
	Start AtlasPos
	End   AtlasPos
}

// StampTile is one tile of a stamp with its offset from Stamp.Start.
type StampTile struct {
	DX, DY int
	Row    int
	Col    int
}

func (s Stamp) bounds() (minRow, minCol, maxRow, maxCol int) {
	minRow, maxRow = s.Start.Row, s.End.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol = s.Start.Col, s.End.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	return minRow, minCol, maxRow, maxCol
}

// Size returns the stamp size in tiles.
func (s Stamp) Size() (w, h int) {
	minRow, minCol, maxRow, maxCol := s.bounds()
	return maxCol - minCol + 1, maxRow - minRow + 1
}

func (s Stamp) Count() int {
	w, h := s.Size()
	return w * h
}

// Tiles enumerates the stamp row by row.
func (s Stamp) Tiles() []StampTile {
	minRow, minCol, maxRow, maxCol := s.bounds()
	out := make([]StampTile, 0, s.Count())
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			out = append(out, StampTile{
				DX:  c - s.Start.Col,
				DY:  r - s.Start.Row,
				Row: r,
				Col: c,
			})
		}
	}
	return out
}

// Contains reports whether the atlas cell lies inside the stamp.
func (s Stamp) Contains(row, col int) bool {
	minRow, minCol, maxRow, maxCol := s.bounds()
	return row >= minRow && row <= maxRow && col >= minCol && col <= maxCol
}
