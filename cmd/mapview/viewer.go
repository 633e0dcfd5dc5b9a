package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

const headerRows = 1

var (
	headerColor = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	spawnColor  = color.RGBA{0xff, 0xdc, 0x00, 0xff}
)

// Viewer renders a map into a terminal and pans it with the keyboard.
type Viewer struct {
	screen  tcell.Screen
	surface *termSurface
	camera  *obj.Camera
	comp    *obj.Compositor

	m      *levels.Map
	source string

	collisions bool
}

func NewViewer(screen tcell.Screen, m *levels.Map, source string) *Viewer {
	comp := obj.NewCompositor()
	comp.CellSize = 1
	surface := newTermSurface(screen)
	surface.Y = headerRows
	v := &Viewer{
		screen:     screen,
		surface:    surface,
		camera:     obj.NewCamera(1, 1),
		comp:       comp,
		collisions: true,
	}
	v.SetMap(m, source)
	return v
}

// SetMap swaps the displayed map, keeping the camera where it is when the
// new map allows it.
func (v *Viewer) SetMap(m *levels.Map, source string) {
	v.m = m
	v.source = source
	v.resize()
}

func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.camera.SetScreenSize(w/cellWidth, h-headerRows)
	v.camera.SetWorldBounds(float64(v.m.Width), float64(v.m.Height))
	v.camera.SetPosition(v.camera.X, v.camera.Y)
}

func (v *Viewer) header() string {
	return fmt.Sprintf("%s %dx%d [%s] arrows/hjkl pan  c collision  r reload  q quit",
		v.m.Name, v.m.Width, v.m.Height, v.source)
}

func (v *Viewer) Draw() {
	v.screen.Clear()
	v.comp.RenderFrame(v.surface, v.m, v.camera, nil, obj.DebugFlags{Collisions: v.collisions})
	sx, sy := v.camera.WorldToScreen(float64(v.m.Spawn.X), float64(v.m.Spawn.Y))
	v.surface.FillCircle(sx+0.5, sy+0.5, 0.33, spawnColor)
	v.surface.Text(v.header(), 0, 0, headerColor)
	v.screen.Show()
}

// viewAction is what a key asks the main loop to do.
type viewAction int

const (
	actionNone viewAction = iota
	actionRedraw
	actionReload
	actionQuit
)

func (v *Viewer) pan(dx, dy float64) viewAction {
	v.camera.SetPosition(v.camera.X+dx, v.camera.Y+dy)
	return actionRedraw
}

// command applies a key press.
func (v *Viewer) command(key tcell.Key, r rune) viewAction {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		return v.pan(-1, 0)
	case tcell.KeyRight:
		return v.pan(1, 0)
	case tcell.KeyUp:
		return v.pan(0, -1)
	case tcell.KeyDown:
		return v.pan(0, 1)
	}
	switch r {
	case 'q', 'Q':
		return actionQuit
	case 'h':
		return v.pan(-1, 0)
	case 'l':
		return v.pan(1, 0)
	case 'k':
		return v.pan(0, -1)
	case 'j':
		return v.pan(0, 1)
	case 'c':
		v.collisions = !v.collisions
		return actionRedraw
	case 'r':
		return actionReload
	}
	return actionNone
}
