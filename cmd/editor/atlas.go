package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

var (
	atlasMissing   = color.NRGBA{60, 60, 70, 255}
	atlasLine      = color.NRGBA{0, 0, 0, 120}
	stampHighlight = color.NRGBA{255, 220, 0, 255}
	dragHighlight  = color.NRGBA{0, 200, 255, 255}
)

// AtlasPanel shows the tileset and turns clicks into tile or stamp
// selections. A plain click selects one tile; shift-drag selects a
// rectangle.
type AtlasPanel struct {
	X, Y int
	Cell int
	Rows int
	Cols int

	dragStart *editor.AtlasPos
	dragEnd   editor.AtlasPos
}

// NewAtlasPanel sizes the panel from the tileset image. A nil image gives
// the default 8x8 grid.
func NewAtlasPanel(img *ebiten.Image, cell int) *AtlasPanel {
	rows, cols := 8, 8
	if img != nil {
		b := img.Bounds()
		rows, cols = b.Dy()/common.AtlasCell, b.Dx()/common.AtlasCell
	}
	return &AtlasPanel{Cell: cell, Rows: rows, Cols: cols}
}

func (p *AtlasPanel) Size() (int, int) {
	return p.Cols * p.Cell, p.Rows * p.Cell
}

// CellAt maps a screen position to an atlas cell.
func (p *AtlasPanel) CellAt(mx, my int) (editor.AtlasPos, bool) {
	if p.Cell <= 0 || mx < p.X || my < p.Y {
		return editor.AtlasPos{}, false
	}
	col := (mx - p.X) / p.Cell
	row := (my - p.Y) / p.Cell
	if row >= p.Rows || col >= p.Cols {
		return editor.AtlasPos{}, false
	}
	return editor.AtlasPos{Row: row, Col: col}, true
}

// Press starts a selection. Without shift the tile is selected at once.
func (p *AtlasPanel) Press(s *editor.Session, pos editor.AtlasPos, shift bool) {
	if !shift {
		p.dragStart = nil
		s.SelectTile(pos.Row, pos.Col)
		return
	}
	start := pos
	p.dragStart = &start
	p.dragEnd = pos
}

func (p *AtlasPanel) Drag(pos editor.AtlasPos) {
	if p.dragStart != nil {
		p.dragEnd = pos
	}
}

// Release finishes a shift-drag and selects the stamp.
func (p *AtlasPanel) Release(s *editor.Session) {
	if p.dragStart == nil {
		return
	}
	s.SelectStamp(*p.dragStart, p.dragEnd)
	p.dragStart = nil
}

// Update reports whether the pointer is over the panel.
func (p *AtlasPanel) Update(s *editor.Session, mx, my int) bool {
	pos, ok := p.CellAt(mx, my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ok:
		p.Press(s, pos, ebiten.IsKeyPressed(ebiten.KeyShift))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && ok:
		p.Drag(pos)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.Release(s)
	}
	return ok
}

func (p *AtlasPanel) Render(dst obj.Surface, s *editor.Session) {
	size := float64(p.Cell)
	for row := 0; row < p.Rows; row++ {
		for col := 0; col < p.Cols; col++ {
			x, y := float64(p.X+col*p.Cell), float64(p.Y+row*p.Cell)
			if !dst.DrawTile(levels.Atlas(row, col), x, y, size) {
				dst.FillRect(x, y, size, size, atlasMissing)
			}
			dst.StrokeRect(x, y, size, size, 1, atlasLine)
		}
	}
	if st, ok := s.Stamp(); ok {
		p.highlight(dst, st, stampHighlight)
	}
	if p.dragStart != nil {
		p.highlight(dst, editor.Stamp{Start: *p.dragStart, End: p.dragEnd}, dragHighlight)
	}
}

func (p *AtlasPanel) highlight(dst obj.Surface, st editor.Stamp, clr color.Color) {
	minRow, minCol := st.Start.Row, st.Start.Col
	if st.End.Row < minRow {
		minRow = st.End.Row
	}
	if st.End.Col < minCol {
		minCol = st.End.Col
	}
	w, h := st.Size()
	dst.StrokeRect(float64(p.X+minCol*p.Cell), float64(p.Y+minRow*p.Cell), float64(w*p.Cell), float64(h*p.Cell), 2, clr)
}
