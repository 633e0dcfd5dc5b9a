package editor

import (
	"testing"

	"github.com/milk9111/topdown/levels"
)

func newTestSession(t *testing.T, w, h int) *Session {
	t.Helper()
	return NewSession(newTestMap(t, w, h), 0)
}

func TestFillWholeEmptyMap(t *testing.T) {
	s := newTestSession(t, 5, 5)
	s.SelectTile(0, 1)
	s.SetTool(ToolFill)
	s.PointerDown(2, 2)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := s.Map.Tile(levels.Ground, x, y); !got.Equal(levels.Atlas(0, 1)) {
				t.Fatalf("cell (%d,%d) = %s, want [0,1]", x, y, got)
			}
		}
	}
	if s.History.Len() != 1 {
		t.Fatalf("fill should record one action, got %d", s.History.Len())
	}

	if n := s.Fill(2, 2); n != 0 {
		t.Fatalf("second fill changed %d cells", n)
	}
	if s.History.Len() != 1 {
		t.Fatalf("no-op fill should not be recorded")
	}

	s.Undo()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !s.Map.Tile(levels.Ground, x, y).IsEmpty() {
				t.Fatalf("undo left (%d,%d) filled", x, y)
			}
		}
	}
}

func TestFillStopsAtDifferentCells(t *testing.T) {
	s := newTestSession(t, 5, 5)
	for y := 0; y < 5; y++ {
		_ = s.Map.SetTile(levels.Ground, 2, y, levels.Atlas(1, 1))
	}
	s.SelectTile(0, 3)
	if n := s.Fill(0, 0); n != 10 {
		t.Fatalf("expected 10 cells filled, got %d", n)
	}
	if !s.Map.Tile(levels.Ground, 3, 0).IsEmpty() {
		t.Fatalf("fill crossed the wall")
	}
	if !s.Map.Tile(levels.Ground, 2, 0).Equal(levels.Atlas(1, 1)) {
		t.Fatalf("fill overwrote the wall")
	}
}

func TestFillCollisionLayer(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.SetLayer(levels.Collision)
	if n := s.Fill(1, 1); n != 9 {
		t.Fatalf("expected 9 blocked cells, got %d", n)
	}
	if !s.Map.Blocked(0, 0) {
		t.Fatalf("collision fill did not block")
	}
}

func TestFillWithoutTileIsNoop(t *testing.T) {
	s := newTestSession(t, 3, 3)
	if n := s.Fill(0, 0); n != 0 {
		t.Fatalf("fill without a tile changed %d cells", n)
	}
}

func TestPaintUndoRedo(t *testing.T) {
	s := newTestSession(t, 4, 4)
	s.SelectTile(0, 2)
	s.PointerDown(1, 1)
	s.PointerUp()

	want := levels.Atlas(0, 2)
	if !s.Map.Tile(levels.Ground, 1, 1).Equal(want) {
		t.Fatalf("paint did not write tile")
	}
	if !s.Undo() {
		t.Fatalf("Undo returned false")
	}
	if !s.Map.Tile(levels.Ground, 1, 1).IsEmpty() {
		t.Fatalf("undo did not clear tile")
	}
	if !s.Redo() {
		t.Fatalf("Redo returned false")
	}
	if !s.Map.Tile(levels.Ground, 1, 1).Equal(want) {
		t.Fatalf("redo did not restore tile")
	}
}

func TestPaintDragRecordsEachCellOnce(t *testing.T) {
	s := newTestSession(t, 5, 1)
	s.SelectTile(0, 1)
	s.PointerDown(0, 0)
	s.PointerDrag(0, 0)
	s.PointerDrag(1, 0)
	s.PointerDrag(1, 0)
	s.PointerDrag(2, 0)
	s.PointerUp()

	if s.History.Len() != 3 {
		t.Fatalf("expected 3 paint actions, got %d", s.History.Len())
	}
}

func TestPaintWithoutTileIsNoop(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.Paint(1, 1)
	if s.History.Len() != 0 || !s.Map.Tile(levels.Ground, 1, 1).IsEmpty() {
		t.Fatalf("paint without a tile should do nothing")
	}
}

func TestPaintOverlaySkipsOccupied(t *testing.T) {
	s := newTestSession(t, 3, 1)
	_ = s.Map.SetTile(levels.Ground, 0, 0, levels.Atlas(1, 1))
	s.SelectTile(0, 2)
	s.ToggleDrawMode()

	s.Paint(0, 0)
	s.Paint(1, 0)
	if !s.Map.Tile(levels.Ground, 0, 0).Equal(levels.Atlas(1, 1)) {
		t.Fatalf("overlay replaced an occupied cell")
	}
	if !s.Map.Tile(levels.Ground, 1, 0).Equal(levels.Atlas(0, 2)) {
		t.Fatalf("overlay did not paint an empty cell")
	}
}

func TestPaintStampOffsetsFromFirstCorner(t *testing.T) {
	s := newTestSession(t, 5, 5)
	s.SelectStamp(AtlasPos{Row: 4, Col: 5}, AtlasPos{Row: 3, Col: 4})
	if s.Layer != levels.Objects {
		t.Fatalf("expected auto layer objects, got %s", s.Layer)
	}
	s.Paint(2, 2)

	cases := []struct {
		x, y int
		want levels.TileRef
	}{
		{1, 1, levels.Atlas(3, 4)},
		{2, 1, levels.Atlas(3, 5)},
		{1, 2, levels.Atlas(4, 4)},
		{2, 2, levels.Atlas(4, 5)},
		{3, 3, levels.Empty()},
	}
	for _, tc := range cases {
		if got := s.Map.Tile(levels.Objects, tc.x, tc.y); !got.Equal(tc.want) {
			t.Fatalf("(%d,%d) = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
	if s.History.Len() != 1 {
		t.Fatalf("stamp should record one action, got %d", s.History.Len())
	}

	s.Undo()
	for _, tc := range cases {
		if !s.Map.Tile(levels.Objects, tc.x, tc.y).IsEmpty() {
			t.Fatalf("undo left (%d,%d) painted", tc.x, tc.y)
		}
	}
}

func TestPaintStampClipsAtEdge(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.SelectStamp(AtlasPos{Row: 0, Col: 0}, AtlasPos{Row: 1, Col: 1})
	s.Paint(2, 2)

	if !s.Map.Tile(levels.Ground, 2, 2).Equal(levels.Atlas(0, 0)) {
		t.Fatalf("in-bounds stamp cell not painted")
	}
	if got := len(s.History.entries[0].Changes); got != 1 {
		t.Fatalf("expected 1 clipped change, got %d", got)
	}
}

func TestPaintCollisionLayer(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.SetLayer(levels.Collision)
	s.Paint(1, 1)
	if !s.Map.Blocked(1, 1) {
		t.Fatalf("collision brush did not block")
	}
	s.SetTool(ToolEraser)
	s.PointerDown(1, 1)
	if s.Map.Blocked(1, 1) {
		t.Fatalf("eraser did not unblock")
	}
	if s.History.Len() != 2 {
		t.Fatalf("expected paint and erase actions, got %d", s.History.Len())
	}
	if s.History.entries[1].Kind != ActionErase {
		t.Fatalf("expected erase action, got %s", s.History.entries[1].Kind)
	}
}

func TestPaintOutOfBoundsIgnored(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.SelectTile(0, 1)
	s.PointerDown(-1, 0)
	s.PointerDown(3, 3)
	if s.History.Len() != 0 {
		t.Fatalf("out of bounds paint was recorded")
	}
}

func TestSelectMarquee(t *testing.T) {
	s := newTestSession(t, 5, 5)
	s.SetTool(ToolSelect)
	s.PointerDown(3, 3)
	s.PointerDrag(1, 2)

	r, ok := s.Marquee()
	if !ok {
		t.Fatalf("expected a marquee")
	}
	if r.Start != (levels.Point{X: 3, Y: 3}) || r.End != (levels.Point{X: 1, Y: 2}) {
		t.Fatalf("unexpected marquee %+v", r)
	}
	x0, y0, x1, y1 := r.Normalized()
	if x0 != 1 || y0 != 2 || x1 != 3 || y1 != 3 {
		t.Fatalf("Normalized = %d,%d,%d,%d", x0, y0, x1, y1)
	}

	s.Exec(CmdClearSelection)
	s.PointerDown(0, 0)
	r, _ = s.Marquee()
	if r.Start != (levels.Point{}) {
		t.Fatalf("selection after clear should start fresh, got %+v", r)
	}
}

func TestCopyPasteClipped(t *testing.T) {
	s := newTestSession(t, 6, 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			_ = s.Map.SetTile(levels.Ground, x, y, levels.Atlas(y, x))
		}
	}
	_ = s.Map.SetBlocked(1, 1, true)

	s.SetTool(ToolSelect)
	s.PointerDown(0, 0)
	s.PointerDrag(2, 1)
	if !s.Copy() {
		t.Fatalf("Copy returned false")
	}
	if c := s.Clipboard(); c.Width != 3 || c.Height != 2 {
		t.Fatalf("clipboard size %dx%d, want 3x2", c.Width, c.Height)
	}

	s.ClearSelection()
	s.PointerDown(4, 3)
	if !s.Paste() {
		t.Fatalf("Paste returned false")
	}
	if !s.Map.Tile(levels.Ground, 4, 3).Equal(levels.Atlas(0, 0)) {
		t.Fatalf("(4,3) = %s", s.Map.Tile(levels.Ground, 4, 3))
	}
	if !s.Map.Tile(levels.Ground, 5, 3).Equal(levels.Atlas(0, 1)) {
		t.Fatalf("(5,3) = %s", s.Map.Tile(levels.Ground, 5, 3))
	}
	if s.Map.Blocked(5, 3) {
		t.Fatalf("unexpected block at (5,3)")
	}
	if got := len(s.History.entries[0].Changes); got != 2 {
		t.Fatalf("expected 2 clipped changes, got %d", got)
	}

	s.Undo()
	if !s.Map.Tile(levels.Ground, 4, 3).IsEmpty() || !s.Map.Tile(levels.Ground, 5, 3).IsEmpty() {
		t.Fatalf("undo did not revert paste")
	}
}

func TestPasteAnchorsAtMarqueeStart(t *testing.T) {
	s := newTestSession(t, 5, 5)
	_ = s.Map.SetTile(levels.Objects, 0, 0, levels.Atlas(5, 5))
	s.SetTool(ToolSelect)
	s.PointerDown(0, 0)
	s.Copy()

	s.ClearSelection()
	s.PointerDown(4, 4)
	s.PointerDrag(2, 2)
	s.Paste()
	if !s.Map.Tile(levels.Objects, 4, 4).Equal(levels.Atlas(5, 5)) {
		t.Fatalf("paste should anchor at the start corner")
	}
	if !s.Map.Tile(levels.Objects, 2, 2).IsEmpty() {
		t.Fatalf("paste should not anchor at the normalized corner")
	}
}

func TestCopyPasteWarnings(t *testing.T) {
	s := newTestSession(t, 3, 3)
	if s.Copy() {
		t.Fatalf("copy without selection should fail")
	}
	if s.Paste() {
		t.Fatalf("paste with empty clipboard should fail")
	}
	s.Select(0, 0)
	s.Copy()
	s.ClearSelection()
	if s.Paste() {
		t.Fatalf("paste without selection should fail")
	}
}

func TestSpawnPlacement(t *testing.T) {
	s := newTestSession(t, 5, 5)
	s.SelectTile(0, 1)
	s.Exec(CmdSpawn)

	s.PointerDown(9, 9)
	if !s.SettingSpawn {
		t.Fatalf("out of bounds click should keep spawn mode")
	}
	s.PointerDown(1, 3)
	if s.SettingSpawn {
		t.Fatalf("spawn mode should end after placement")
	}
	if s.Map.Spawn != (levels.Point{X: 1, Y: 3}) {
		t.Fatalf("spawn = %+v", s.Map.Spawn)
	}
	if !s.Map.Tile(levels.Ground, 1, 3).IsEmpty() {
		t.Fatalf("spawn click should not paint")
	}
}

func TestZoomBounds(t *testing.T) {
	s := newTestSession(t, 1, 1)
	for i := 0; i < 20; i++ {
		s.ZoomIn()
	}
	if s.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", s.Zoom, MaxZoom)
	}
	for i := 0; i < 40; i++ {
		s.ZoomOut()
	}
	if s.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", s.Zoom, MinZoom)
	}
}

func TestAutoLayer(t *testing.T) {
	cases := []struct {
		name string
		auto bool
		row  int
		want levels.Layer
	}{
		{"ground row", true, 2, levels.Ground},
		{"object row", true, 3, levels.Objects},
		{"disabled", false, 5, levels.Ground},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 1, 1)
			s.AutoLayer = tc.auto
			s.SelectTile(tc.row, 0)
			if s.Layer != tc.want {
				t.Fatalf("layer = %s, want %s", s.Layer, tc.want)
			}
		})
	}
}

func TestLoadClearsHistory(t *testing.T) {
	s := newTestSession(t, 3, 3)
	s.SelectTile(0, 1)
	s.Paint(0, 0)
	s.Select(1, 1)

	if err := s.NewMap(4, 2, 32); err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if s.History.Len() != 0 {
		t.Fatalf("history not cleared")
	}
	if _, ok := s.Marquee(); ok {
		t.Fatalf("marquee not cleared")
	}
	if s.Map.Width != 4 || s.Map.Height != 2 || s.Map.TileSize != 32 {
		t.Fatalf("unexpected map %dx%d@%d", s.Map.Width, s.Map.Height, s.Map.TileSize)
	}
	if err := s.NewMap(0, 2, 32); err == nil {
		t.Fatalf("expected error for bad dimensions")
	}
}

func TestSelectionInfo(t *testing.T) {
	s := newTestSession(t, 1, 1)
	if got := s.SelectionInfo(); got != "None" {
		t.Fatalf("got %q", got)
	}
	s.SelectTile(2, 3)
	if got := s.SelectionInfo(); got != "Row 2, Col 3" {
		t.Fatalf("got %q", got)
	}
	s.SelectStamp(AtlasPos{Row: 0, Col: 0}, AtlasPos{Row: 1, Col: 2})
	if got := s.SelectionInfo(); got != "Multi: 3x2 (6 tiles)" {
		t.Fatalf("got %q", got)
	}
}
