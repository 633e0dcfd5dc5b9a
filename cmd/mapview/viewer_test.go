package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/topdown/levels"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func viewerMap(t *testing.T) *levels.Map {
	t.Helper()
	m, err := levels.NewMap("yard", 4, 3, 64)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	_ = m.SetTile(levels.Ground, 0, 0, levels.Atlas(1, 0))
	_ = m.SetTile(levels.Objects, 1, 0, levels.Atlas(4, 1))
	_ = m.SetBlocked(2, 1, true)
	_ = m.SetSpawn(3, 2)
	return m
}

// runeAt returns the rune drawn for map tile (tx, ty).
func runeAt(t *testing.T, v *Viewer, tx, ty int) rune {
	t.Helper()
	sx, sy := v.camera.WorldToScreen(float64(tx), float64(ty))
	cx, cy := v.surface.cell(sx, sy)
	r, _, _, _ := v.screen.GetContent(cx, cy)
	return r
}

func TestViewerDrawsLayers(t *testing.T) {
	ss := newScreen(t, 40, 12)
	v := NewViewer(ss, viewerMap(t), "test map")
	v.Draw()

	cases := []struct {
		name   string
		tx, ty int
		want   rune
	}{
		{"ground", 0, 0, '▒'},
		{"filler", 0, 1, '░'},
		{"object", 1, 0, '▲'},
		{"collision", 2, 1, '╳'},
		{"spawn", 3, 2, '@'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := runeAt(t, v, tc.tx, tc.ty); got != tc.want {
				t.Fatalf("tile (%d,%d) = %q, want %q", tc.tx, tc.ty, got, tc.want)
			}
		})
	}
}

func TestViewerHeader(t *testing.T) {
	ss := newScreen(t, 80, 12)
	v := NewViewer(ss, viewerMap(t), "slot yard")
	v.Draw()

	var b strings.Builder
	for x := 0; x < 20; x++ {
		r, _, _, _ := ss.GetContent(x, 0)
		b.WriteRune(r)
	}
	if got := b.String(); !strings.HasPrefix(got, "yard 4x3 [slot yard]") {
		t.Fatalf("header = %q", got)
	}
}

func TestViewerCollisionToggle(t *testing.T) {
	ss := newScreen(t, 40, 12)
	v := NewViewer(ss, viewerMap(t), "test map")
	if got := v.command(tcell.KeyRune, 'c'); got != actionRedraw {
		t.Fatalf("c = %v, want redraw", got)
	}
	v.Draw()
	if got := runeAt(t, v, 2, 1); got != '░' {
		t.Fatalf("blocked tile with overlay off = %q, want filler", got)
	}
}

func TestViewerPanClampsToWorld(t *testing.T) {
	m, err := levels.NewMap("big", 100, 50, 64)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	ss := newScreen(t, 40, 11)
	v := NewViewer(ss, m, "test map")

	v.command(tcell.KeyLeft, 0)
	if v.camera.X != 0 {
		t.Fatalf("camera x = %v after panning past the edge", v.camera.X)
	}
	for i := 0; i < 3; i++ {
		v.command(tcell.KeyRune, 'l')
	}
	v.command(tcell.KeyDown, 0)
	if v.camera.X != 3 || v.camera.Y != 1 {
		t.Fatalf("camera = (%v,%v), want (3,1)", v.camera.X, v.camera.Y)
	}
}

func TestViewerCommands(t *testing.T) {
	ss := newScreen(t, 40, 12)
	v := NewViewer(ss, viewerMap(t), "test map")
	cases := []struct {
		key  tcell.Key
		r    rune
		want viewAction
	}{
		{tcell.KeyRune, 'q', actionQuit},
		{tcell.KeyEscape, 0, actionQuit},
		{tcell.KeyRune, 'r', actionReload},
		{tcell.KeyRune, 'z', actionNone},
	}
	for _, tc := range cases {
		if got := v.command(tc.key, tc.r); got != tc.want {
			t.Fatalf("command(%v, %q) = %v, want %v", tc.key, tc.r, got, tc.want)
		}
	}
}
