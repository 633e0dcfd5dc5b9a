package main

import (
	"image/color"
	"testing"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

type rect struct {
	x, y, w, h, width float64
	clr               color.Color
}

type circle struct {
	cx, cy, r float64
	clr       color.Color
}

// overlayRecorder keeps the shapes the view and atlas draw.
type overlayRecorder struct {
	tiles   []levels.TileRef
	fills   int
	rects   []rect
	lines   []color.Color
	circles []circle
}

var _ obj.Surface = (*overlayRecorder)(nil)

func (r *overlayRecorder) DrawTile(t levels.TileRef, x, y, size float64) bool {
	r.tiles = append(r.tiles, t)
	return true
}

func (r *overlayRecorder) DrawSprite(f obj.SpriteFrame, x, y, w, h float64, flipX bool) bool {
	return false
}

func (r *overlayRecorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.fills++
}

func (r *overlayRecorder) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, width, clr})
}

func (r *overlayRecorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.lines = append(r.lines, clr)
}

func (r *overlayRecorder) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.circles = append(r.circles, circle{cx, cy, rad, clr})
}

func (r *overlayRecorder) Text(s string, x, y float64, clr color.Color) {}

func (r *overlayRecorder) rectsOf(clr color.Color) []rect {
	var out []rect
	for _, rc := range r.rects {
		if rc.clr == clr {
			out = append(out, rc)
		}
	}
	return out
}

func newSession(t *testing.T, w, h int) *editor.Session {
	t.Helper()
	m, err := levels.NewMap("test", w, h, 64)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return editor.NewSession(m, 0)
}

func newView(x, y, w, h int) *MapView {
	v := NewMapView()
	v.SetBounds(x, y, w, h)
	return v
}

func TestMapViewTileAt(t *testing.T) {
	s := newSession(t, 10, 10)
	cases := []struct {
		name   string
		zoom   float64
		camX   float64
		mx, my int
		want   levels.Point
		ok     bool
	}{
		{"origin", 1, 0, 220 + 70, 48 + 10, levels.Point{X: 1, Y: 0}, true},
		{"panned", 1, 64, 220 + 70, 48 + 10, levels.Point{X: 2, Y: 0}, true},
		{"outside view", 1, 0, 100, 100, levels.Point{}, false},
		// at half zoom the 320px world is centred in the 400px view
		{"centred small world", 0.5, 0, 220 + 41, 49, levels.Point{X: 0, Y: 0}, true},
		{"left of small world", 0.5, 0, 220 + 10, 49, levels.Point{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := newView(220, 48, 400, 300)
			v.Fit(s.Map, tc.zoom)
			v.Camera.SetPosition(tc.camX, 0)
			got, ok := v.TileAt(s.Map, tc.zoom, tc.mx, tc.my)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("TileAt = %v, %v; want %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestMapViewRezoomKeepsCursorCell(t *testing.T) {
	s := newSession(t, 40, 40)
	v := newView(0, 0, 400, 300)
	v.Fit(s.Map, 1)
	v.Camera.SetPosition(640, 640)

	before, ok := v.TileAt(s.Map, 1, 100, 100)
	if !ok {
		t.Fatalf("cursor not over map")
	}
	v.Rezoom(s.Map, 1, 2, 100, 100)
	after, ok := v.TileAt(s.Map, 2, 100, 100)
	if !ok || after != before {
		t.Fatalf("cell under cursor moved from %v to %v", before, after)
	}
}

func TestMapViewRenderOverlays(t *testing.T) {
	s := newSession(t, 10, 10)
	s.SetTool(editor.ToolSelect)
	s.PointerDown(3, 2)
	s.PointerDrag(1, 1)

	v := newView(0, 0, 400, 300)
	v.ShowGrid = false
	v.ShowCollision = false
	rec := &overlayRecorder{}
	v.Render(rec, s)

	marquee := rec.rectsOf(marqueeColor)
	if len(marquee) != 1 {
		t.Fatalf("marquee rects = %d, want 1", len(marquee))
	}
	want := rect{64, 64, 192, 128, 2, marqueeColor}
	if marquee[0] != want {
		t.Fatalf("marquee = %+v, want %+v", marquee[0], want)
	}

	if len(rec.circles) != 1 {
		t.Fatalf("spawn markers = %d, want 1", len(rec.circles))
	}
	c := rec.circles[0]
	if c.cx != 5*64+32 || c.cy != 5*64+32 || c.r != 64.0/3 {
		t.Fatalf("spawn marker = %+v", c)
	}
	if len(rec.lines) != 0 {
		t.Fatalf("grid drawn while hidden: %d lines", len(rec.lines))
	}
}

func TestMapViewGridCoversVisibleRange(t *testing.T) {
	s := newSession(t, 10, 10)
	v := newView(0, 0, 400, 300)
	v.ShowCollision = false
	rec := &overlayRecorder{}
	v.Render(rec, s)

	// columns 0..8 and rows 0..6 of the visible range
	if got := len(rec.lines); got != 9+7 {
		t.Fatalf("grid lines = %d, want 16", got)
	}
	for _, clr := range rec.lines {
		if clr != gridColor {
			t.Fatalf("grid line colour = %v", clr)
		}
	}
}

func TestMapViewEmptyCellsAreNotFiller(t *testing.T) {
	s := newSession(t, 2, 2)
	if err := s.Map.SetTile(levels.Ground, 0, 0, levels.Atlas(1, 1)); err != nil {
		t.Fatalf("SetTile: %v", err)
	}
	v := newView(0, 0, 400, 300)
	v.ShowGrid = false
	rec := &overlayRecorder{}
	v.Render(rec, s)

	if len(rec.tiles) != 1 || !rec.tiles[0].Equal(levels.Atlas(1, 1)) {
		t.Fatalf("tiles drawn = %v, want only [1,1]", rec.tiles)
	}
	if rec.fills != 3 {
		t.Fatalf("empty fills = %d, want 3", rec.fills)
	}
}

func TestMapViewToggleLayerHidesTiles(t *testing.T) {
	s := newSession(t, 2, 2)
	_ = s.Map.SetTile(levels.Ground, 0, 0, levels.Atlas(1, 1))
	_ = s.Map.SetTile(levels.Objects, 1, 1, levels.Atlas(4, 2))
	v := newView(0, 0, 400, 300)
	v.ShowGrid = false

	if v.ToggleLayer(levels.Objects) {
		t.Fatalf("objects should report hidden after the first toggle")
	}
	rec := &overlayRecorder{}
	v.Render(rec, s)
	if len(rec.tiles) != 1 || !rec.tiles[0].Equal(levels.Atlas(1, 1)) {
		t.Fatalf("tiles drawn = %v, want only the ground tile", rec.tiles)
	}

	v.ToggleLayer(levels.Ground)
	rec = &overlayRecorder{}
	v.Render(rec, s)
	if len(rec.tiles) != 0 || rec.fills != 0 {
		t.Fatalf("hidden layers still drew %d tiles and %d fills", len(rec.tiles), rec.fills)
	}

	if !v.ToggleLayer(levels.Objects) || !v.LayerVisible(levels.Objects) {
		t.Fatalf("objects should be visible again")
	}
	rec = &overlayRecorder{}
	v.Render(rec, s)
	if len(rec.tiles) != 1 || !rec.tiles[0].Equal(levels.Atlas(4, 2)) {
		t.Fatalf("tiles drawn = %v, want only the object tile", rec.tiles)
	}
}
