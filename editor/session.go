package editor

import (
	"fmt"
	"log"
	"time"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
)

const (
	MinZoom    = 0.25
	MaxZoom    = 4.0
	ZoomFactor = 1.25
)

// Rect is a marquee selection in tile coordinates. Start is where the
// selection began and may lie on any side of End.
type Rect struct {
	Start levels.Point
	End   levels.Point
}

// Normalized returns the inclusive corners of the rectangle.
func (r Rect) Normalized() (x0, y0, x1, y1 int) {
	x0, x1 = common.MinMax(r.Start.X, r.End.X)
	y0, y1 = common.MinMax(r.Start.Y, r.End.Y)
	return x0, y0, x1, y1
}

func (r Rect) Size() (w, h int) {
	x0, y0, x1, y1 := r.Normalized()
	return x1 - x0 + 1, y1 - y0 + 1
}

func (r Rect) Contains(x, y int) bool {
	x0, y0, x1, y1 := r.Normalized()
	return x >= x0 && x <= x1 && y >= y0 && y <= y1
}

// Session holds the editing state for one map.
type Session struct {
	Map          *levels.Map
	Tool         Tool
	Layer        levels.Layer
	DrawMode     DrawMode
	Zoom         float64
	AutoLayer    bool
	SettingSpawn bool
	History      *History

	stamp       *Stamp
	marquee     *Rect
	clipboard   *Clipboard
	lastPainted *levels.Point
}

func NewSession(m *levels.Map, historyLimit int) *Session {
	return &Session{
		Map:       m,
		Tool:      ToolBrush,
		Layer:     levels.Ground,
		Zoom:      1,
		AutoLayer: true,
		History:   NewHistory(historyLimit),
	}
}

func (s *Session) SetTool(t Tool) {
	s.Tool = t
	s.lastPainted = nil
}

func (s *Session) SetLayer(l levels.Layer) {
	s.Layer = l
}

// SelectTile selects a single atlas tile.
func (s *Session) SelectTile(row, col int) {
	s.SelectStamp(AtlasPos{Row: row, Col: col}, AtlasPos{Row: row, Col: col})
}

// SelectStamp selects the atlas rectangle spanned by start and end.
func (s *Session) SelectStamp(start, end AtlasPos) {
	s.stamp = &Stamp{Start: start, End: end}
	s.applyAutoLayer(start.Row)
}

func (s *Session) ClearStamp() {
	s.stamp = nil
}

func (s *Session) Stamp() (Stamp, bool) {
	if s.stamp == nil {
		return Stamp{}, false
	}
	return *s.stamp, true
}

// The top rows of the atlas hold ground tiles; everything below is an
// object.
func (s *Session) applyAutoLayer(row int) {
	if !s.AutoLayer {
		return
	}
	want := levels.Objects
	if row <= common.GroundRowLimit {
		want = levels.Ground
	}
	if s.Layer != want {
		s.Layer = want
		log.Printf("[layer] auto switched to %s", want)
	}
}

func (s *Session) BeginSpawnPlacement() {
	s.SettingSpawn = true
}

func (s *Session) Marquee() (Rect, bool) {
	if s.marquee == nil {
		return Rect{}, false
	}
	return *s.marquee, true
}

func (s *Session) ClearSelection() {
	s.marquee = nil
}

func (s *Session) Clipboard() *Clipboard {
	return s.clipboard
}

func (s *Session) SetClipboard(c *Clipboard) {
	s.clipboard = c
}

// PointerDown handles a press over tile (x, y).
func (s *Session) PointerDown(x, y int) {
	if !s.Map.InBounds(x, y) {
		return
	}
	if s.SettingSpawn {
		if err := s.Map.SetSpawn(x, y); err == nil {
			s.SettingSpawn = false
			log.Printf("[spawn] set to (%d,%d)", x, y)
		}
		return
	}
	switch s.Tool {
	case ToolBrush:
		s.Paint(x, y)
	case ToolEraser:
		s.Erase(x, y)
	case ToolFill:
		s.Fill(x, y)
	case ToolSelect:
		s.Select(x, y)
	}
}

// PointerDrag handles movement over tile (x, y) with the button held.
func (s *Session) PointerDrag(x, y int) {
	if !s.Map.InBounds(x, y) || s.SettingSpawn {
		return
	}
	switch s.Tool {
	case ToolBrush:
		s.Paint(x, y)
	case ToolEraser:
		s.Erase(x, y)
	case ToolSelect:
		s.Select(x, y)
	}
}

func (s *Session) PointerUp() {
	s.lastPainted = nil
}

func (s *Session) guard(x, y int) bool {
	if s.lastPainted != nil && s.lastPainted.X == x && s.lastPainted.Y == y {
		return true
	}
	s.lastPainted = &levels.Point{X: x, Y: y}
	return false
}

// write sets a cell and returns the change, or false if nothing changed.
func (s *Session) write(x, y int, c levels.Cell) (Change, bool) {
	old := s.Map.Get(s.Layer, x, y)
	if old.Equal(c) {
		return Change{}, false
	}
	if err := s.Map.Set(s.Layer, x, y, c); err != nil {
		return Change{}, false
	}
	return Change{Layer: s.Layer, X: x, Y: y, Old: old, New: c}, true
}

// Paint applies the brush at (x, y).
func (s *Session) Paint(x, y int) {
	if !s.Map.InBounds(x, y) {
		return
	}
	if s.Layer == levels.Collision {
		if s.guard(x, y) {
			return
		}
		if ch, ok := s.write(x, y, levels.BlockedCell(true)); ok {
			s.History.Push(Action{Kind: ActionPaint, Changes: []Change{ch}})
		}
		return
	}
	if s.stamp == nil {
		log.Println("[brush] no tile selected")
		return
	}
	if s.guard(x, y) {
		return
	}

	var changes []Change
	for _, t := range s.stamp.Tiles() {
		tx, ty := x+t.DX, y+t.DY
		if !s.Map.InBounds(tx, ty) {
			continue
		}
		if s.DrawMode == DrawOverlay && !s.Map.Get(s.Layer, tx, ty).IsEmpty() {
			continue
		}
		if ch, ok := s.write(tx, ty, levels.TileCell(levels.Atlas(t.Row, t.Col))); ok {
			changes = append(changes, ch)
		}
	}
	s.History.Push(Action{Kind: ActionPaint, Changes: changes})
}

// Erase clears the active layer at (x, y).
func (s *Session) Erase(x, y int) {
	if !s.Map.InBounds(x, y) || s.guard(x, y) {
		return
	}
	if ch, ok := s.write(x, y, levels.Cell{}); ok {
		s.History.Push(Action{Kind: ActionErase, Changes: []Change{ch}})
	}
}

// Fill flood-fills the 4-connected region of cells equal to the one at
// (x, y) and returns how many cells changed.
func (s *Session) Fill(x, y int) int {
	if !s.Map.InBounds(x, y) {
		return 0
	}
	var replacement levels.Cell
	if s.Layer == levels.Collision {
		replacement = levels.BlockedCell(true)
	} else {
		if s.stamp == nil {
			log.Println("[fill] no tile selected")
			return 0
		}
		replacement = levels.TileCell(levels.Atlas(s.stamp.Start.Row, s.stamp.Start.Col))
	}
	target := s.Map.Get(s.Layer, x, y)
	if target.Equal(replacement) {
		return 0
	}

	w := s.Map.Width
	visited := make([]bool, w*s.Map.Height)
	stack := []levels.Point{{X: x, Y: y}}
	var changes []Change
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.Map.InBounds(p.X, p.Y) || visited[p.Y*w+p.X] {
			continue
		}
		visited[p.Y*w+p.X] = true
		if !s.Map.Get(s.Layer, p.X, p.Y).Equal(target) {
			continue
		}
		if ch, ok := s.write(p.X, p.Y, replacement); ok {
			changes = append(changes, ch)
		}
		stack = append(stack,
			levels.Point{X: p.X + 1, Y: p.Y},
			levels.Point{X: p.X - 1, Y: p.Y},
			levels.Point{X: p.X, Y: p.Y + 1},
			levels.Point{X: p.X, Y: p.Y - 1},
		)
	}
	s.History.Push(Action{Kind: ActionFill, Changes: changes})
	log.Printf("[fill] filled %d cells", len(changes))
	return len(changes)
}

// Select starts a marquee at (x, y), or extends the current one.
func (s *Session) Select(x, y int) {
	if !s.Map.InBounds(x, y) {
		return
	}
	p := levels.Point{X: x, Y: y}
	if s.marquee == nil {
		s.marquee = &Rect{Start: p, End: p}
		return
	}
	s.marquee.End = p
}

// Copy captures the marquee region across all layers.
func (s *Session) Copy() bool {
	if s.marquee == nil {
		log.Println("[copy] no selection")
		return false
	}
	x0, y0, _, _ := s.marquee.Normalized()
	w, h := s.marquee.Size()
	c := newClipboard(w, h)
	for _, l := range levels.Layers {
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				c.set(l, dx, dy, s.Map.Get(l, x0+dx, y0+dy))
			}
		}
	}
	s.clipboard = c
	log.Printf("[copy] copied %dx%d region", w, h)
	return true
}

// Paste writes the clipboard at the marquee start corner. Cells that fall
// outside the map are dropped.
func (s *Session) Paste() bool {
	if s.clipboard == nil {
		log.Println("[paste] clipboard is empty")
		return false
	}
	if s.marquee == nil {
		log.Println("[paste] no selection to paste at")
		return false
	}
	ox, oy := s.marquee.Start.X, s.marquee.Start.Y
	var changes []Change
	for _, l := range levels.Layers {
		for dy := 0; dy < s.clipboard.Height; dy++ {
			for dx := 0; dx < s.clipboard.Width; dx++ {
				x, y := ox+dx, oy+dy
				if !s.Map.InBounds(x, y) {
					continue
				}
				old := s.Map.Get(l, x, y)
				nw := s.clipboard.Cell(l, dx, dy)
				if old.Equal(nw) {
					continue
				}
				if err := s.Map.Set(l, x, y, nw); err != nil {
					continue
				}
				changes = append(changes, Change{Layer: l, X: x, Y: y, Old: old, New: nw})
			}
		}
	}
	s.History.Push(Action{Kind: ActionPaste, Changes: changes})
	log.Printf("[paste] %d cells changed", len(changes))
	return true
}

func (s *Session) ToggleDrawMode() DrawMode {
	if s.DrawMode == DrawReplace {
		s.DrawMode = DrawOverlay
	} else {
		s.DrawMode = DrawReplace
	}
	return s.DrawMode
}

func (s *Session) ZoomIn() {
	s.SetZoom(s.Zoom * ZoomFactor)
}

func (s *Session) ZoomOut() {
	s.SetZoom(s.Zoom / ZoomFactor)
}

func (s *Session) SetZoom(z float64) {
	s.Zoom = common.Clamp(z, MinZoom, MaxZoom)
}

func (s *Session) Undo() bool {
	return s.History.Undo(s.Map)
}

func (s *Session) Redo() bool {
	return s.History.Redo(s.Map)
}

// Load replaces the edited map and drops everything tied to the old one.
func (s *Session) Load(m *levels.Map) {
	s.Map = m
	s.History.Clear()
	s.marquee = nil
	s.lastPainted = nil
	s.SettingSpawn = false
}

// NewMap replaces the edited map with an empty one.
func (s *Session) NewMap(width, height, tileSize int) error {
	m, err := levels.NewMap(levels.DefaultName, width, height, tileSize)
	if err != nil {
		return fmt.Errorf("new map: %w", err)
	}
	s.Load(m)
	return nil
}

// MarkSaved stamps the map's modification time.
func (s *Session) MarkSaved(now time.Time) {
	s.Map.Touch(now)
}

// SelectionInfo describes the atlas selection for the status line.
func (s *Session) SelectionInfo() string {
	if s.stamp == nil {
		return "None"
	}
	if n := s.stamp.Count(); n > 1 {
		w, h := s.stamp.Size()
		return fmt.Sprintf("Multi: %dx%d (%d tiles)", w, h, n)
	}
	return fmt.Sprintf("Row %d, Col %d", s.stamp.Start.Row, s.stamp.Start.Col)
}

// Status renders the one line summary shown under the toolbar.
func (s *Session) Status() string {
	return fmt.Sprintf("%s | %s | %s | %s | zoom %d%% | tile %s | spawn (%d,%d)",
		s.Map.Name, s.Tool, s.Layer, s.DrawMode, int(s.Zoom*100+0.5), s.SelectionInfo(),
		s.Map.Spawn.X, s.Map.Spawn.Y)
}
