package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

// cellWidth is the number of terminal columns used per map tile, which
// keeps tiles roughly square.
const cellWidth = 2

var (
	groundGlyphs = []string{"░░", "▒▒", "::"}
	objectGlyphs = []string{"♣ ", "▲ ", "■ "}
)

// termSurface draws the compositor output onto a tcell screen. One unit of
// surface space is one map tile.
type termSurface struct {
	screen tcell.Screen
	// X and Y offset everything drawn, leaving room for a header.
	X, Y int
}

func newTermSurface(screen tcell.Screen) *termSurface {
	return &termSurface{screen: screen}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s *termSurface) cell(x, y float64) (int, int) {
	return s.X + int(math.Floor(x))*cellWidth, s.Y + int(math.Floor(y))
}

// glyphFor picks a glyph for an atlas tile: ground rows get a texture and
// object rows a symbol.
func glyphFor(t levels.TileRef) (string, bool) {
	row, col, ok := t.RowCol()
	if !ok {
		return "", false
	}
	if row <= common.GroundRowLimit {
		return groundGlyphs[row%len(groundGlyphs)], true
	}
	return objectGlyphs[col%len(objectGlyphs)], true
}

func (s *termSurface) DrawTile(t levels.TileRef, x, y, size float64) bool {
	glyph, ok := glyphFor(t)
	if !ok {
		return false
	}
	cx, cy := s.cell(x, y)
	style := s.style(cx, cy).Foreground(tcell.ColorWhite)
	if t.Row() <= common.GroundRowLimit {
		style = tcell.StyleDefault.Foreground(tcellColor(obj.FallbackGround)).Background(tcell.ColorBlack)
	}
	s.putString(cx, cy, glyph, style)
	return true
}

func (s *termSurface) DrawSprite(f obj.SpriteFrame, x, y, w, h float64, flipX bool) bool {
	return false
}

func (s *termSurface) style(x, y int) tcell.Style {
	_, _, style, _ := s.screen.GetContent(x, y)
	return style
}

func (s *termSurface) FillRect(x, y, w, h float64, clr color.Color) {
	bg := tcellColor(clr)
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+math.Max(w, 1)-1, y+math.Max(h, 1)-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx < x1+cellWidth; cx++ {
			mainc, combc, style, _ := s.screen.GetContent(cx, cy)
			if mainc == 0 {
				mainc = ' '
			}
			s.screen.SetContent(cx, cy, mainc, combc, style.Background(bg))
		}
	}
}

// StrokeRect only tints the border cells; at one cell per tile an outline
// is indistinguishable from a fill.
func (s *termSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	fg := tcellColor(clr)
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+math.Max(w, 1)-1, y+math.Max(h, 1)-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx < x1+cellWidth; cx++ {
			if cy != y0 && cy != y1 && cx != x0 && cx != x1+cellWidth-1 {
				continue
			}
			mainc, combc, style, _ := s.screen.GetContent(cx, cy)
			s.screen.SetContent(cx, cy, mainc, combc, style.Foreground(fg))
		}
	}
}

// StrokeLine marks the cell where the line starts. Inside one tile the
// two collision diagonals merge into a cross.
func (s *termSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	glyph := '╲'
	if (x1-x0)*(y1-y0) < 0 {
		glyph = '╱'
	}
	if x0 == x1 {
		glyph = '│'
	} else if y0 == y1 {
		glyph = '─'
	}
	cx, cy := s.cell(math.Min(x0, x1), math.Min(y0, y1))
	mainc, _, style, _ := s.screen.GetContent(cx, cy)
	if (mainc == '╲' && glyph == '╱') || (mainc == '╱' && glyph == '╲') {
		glyph = '╳'
	}
	s.screen.SetContent(cx, cy, glyph, nil, style.Foreground(tcellColor(clr)))
}

func (s *termSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	x, y := s.cell(cx, cy)
	style := s.style(x, y).Foreground(tcellColor(clr)).Bold(true)
	s.screen.SetContent(x, y, '@', nil, style)
}

// Text writes s in terminal cells starting at (x, y); coordinates are not
// scaled.
func (s *termSurface) Text(str string, x, y float64, clr color.Color) {
	s.putString(int(x), int(y), str, tcell.StyleDefault.Foreground(tcellColor(clr)))
}

func (s *termSurface) putString(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
