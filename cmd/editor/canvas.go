package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

var (
	gridColor     = color.NRGBA{255, 255, 255, 51}
	marqueeColor  = color.NRGBA{0, 255, 0, 255}
	spawnColor    = color.NRGBA{255, 220, 0, 255}
	hoverColor    = color.NRGBA{255, 255, 255, 160}
	emptyCell     = color.NRGBA{30, 30, 36, 255}
	canvasBgColor = color.NRGBA{18, 18, 22, 255}
)

// MapView is the editor canvas: the part of the screen between the side
// panels that shows the map at the session zoom.
type MapView struct {
	X, Y, W, H int

	Camera     *obj.Camera
	Compositor *obj.Compositor

	ShowGrid      bool
	ShowCollision bool

	hover    *levels.Point
	panning  bool
	lastMX   int
	lastMY   int
	dragging bool

	offscreen *ebiten.Image
}

func NewMapView() *MapView {
	comp := obj.NewCompositor()
	comp.EmptyGround = emptyCell
	return &MapView{
		Camera:        obj.NewCamera(1, 1),
		Compositor:    comp,
		ShowGrid:      true,
		ShowCollision: true,
	}
}

// ToggleLayer flips whether a tile layer is drawn and reports the new
// visibility.
func (v *MapView) ToggleLayer(l levels.Layer) bool {
	if v.Compositor.Hidden == nil {
		v.Compositor.Hidden = make(map[levels.Layer]bool)
	}
	v.Compositor.Hidden[l] = !v.Compositor.Hidden[l]
	return !v.Compositor.Hidden[l]
}

func (v *MapView) LayerVisible(l levels.Layer) bool {
	return !v.Compositor.Hidden[l]
}

// SetBounds places the view on screen.
func (v *MapView) SetBounds(x, y, w, h int) {
	v.X, v.Y, v.W, v.H = x, y, w, h
	v.Camera.SetScreenSize(w, h)
}

func (v *MapView) Contains(mx, my int) bool {
	return mx >= v.X && my >= v.Y && mx < v.X+v.W && my < v.Y+v.H
}

func cellSize(m *levels.Map, zoom float64) float64 {
	return float64(m.TileSize) * zoom
}

// Fit updates the world bounds for the current map and zoom and re-clamps
// the camera.
func (v *MapView) Fit(m *levels.Map, zoom float64) {
	size := cellSize(m, zoom)
	v.Camera.SetWorldBounds(float64(m.Width)*size, float64(m.Height)*size)
	v.Camera.SetPosition(v.Camera.X, v.Camera.Y)
}

// TileAt maps a screen position to a map cell.
func (v *MapView) TileAt(m *levels.Map, zoom float64, mx, my int) (levels.Point, bool) {
	if !v.Contains(mx, my) {
		return levels.Point{}, false
	}
	wx, wy := v.Camera.ScreenToWorld(float64(mx-v.X), float64(my-v.Y))
	size := cellSize(m, zoom)
	p := levels.Point{X: int(math.Floor(wx / size)), Y: int(math.Floor(wy / size))}
	if !m.InBounds(p.X, p.Y) {
		return levels.Point{}, false
	}
	return p, true
}

func (v *MapView) Pan(dx, dy float64) {
	v.Camera.SetPosition(v.Camera.X-dx, v.Camera.Y-dy)
}

// Rezoom changes the world bounds for a new zoom level, keeping the map
// point under (mx, my) fixed on screen.
func (v *MapView) Rezoom(m *levels.Map, oldZoom, newZoom float64, mx, my int) {
	if oldZoom == newZoom {
		return
	}
	lx, ly := float64(mx-v.X), float64(my-v.Y)
	wx, wy := v.Camera.ScreenToWorld(lx, ly)
	ratio := newZoom / oldZoom
	v.Fit(m, newZoom)
	v.Camera.SetPosition(wx*ratio-lx, wy*ratio-ly)
}

// Update handles panning, zooming and the pointer tools. It reports whether
// the pointer was over the view.
func (v *MapView) Update(s *editor.Session, mx, my int) bool {
	v.Fit(s.Map, s.Zoom)
	inside := v.Contains(mx, my)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if !v.panning {
			v.panning = true
		} else {
			v.Pan(float64(mx-v.lastMX), float64(my-v.lastMY))
		}
	} else {
		v.panning = false
	}
	v.lastMX, v.lastMY = mx, my

	const keyPan = 8
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.Pan(keyPan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.Pan(-keyPan, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Pan(0, keyPan)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Pan(0, -keyPan)
	}

	if inside {
		if _, wy := ebiten.Wheel(); wy != 0 {
			old := s.Zoom
			if wy > 0 {
				s.ZoomIn()
			} else {
				s.ZoomOut()
			}
			v.Rezoom(s.Map, old, s.Zoom, mx, my)
		}
	}

	p, ok := v.TileAt(s.Map, s.Zoom, mx, my)
	v.hover = nil
	if ok {
		v.hover = &p
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ok:
		v.dragging = true
		s.PointerDown(p.X, p.Y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && v.dragging && ok:
		s.PointerDrag(p.X, p.Y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && v.dragging:
		v.dragging = false
		s.PointerUp()
	}
	return inside
}

// Draw renders the view into its own image and copies it into place.
func (v *MapView) Draw(screen *ebiten.Image, surface *obj.ImageSurface, s *editor.Session) {
	if v.W <= 0 || v.H <= 0 {
		return
	}
	if v.offscreen == nil || v.offscreen.Bounds().Dx() != v.W || v.offscreen.Bounds().Dy() != v.H {
		if v.offscreen != nil {
			v.offscreen.Deallocate()
		}
		v.offscreen = ebiten.NewImage(v.W, v.H)
	}
	v.offscreen.Fill(canvasBgColor)
	v.Render(surface.Target(v.offscreen), s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(v.X), float64(v.Y))
	screen.DrawImage(v.offscreen, op)
}

// Render draws the map layers followed by the editor overlays. Coordinates
// are relative to the view.
func (v *MapView) Render(dst obj.Surface, s *editor.Session) {
	m := s.Map
	v.Fit(m, s.Zoom)
	v.Compositor.Scale = s.Zoom
	v.Compositor.RenderFrame(dst, m, v.Camera, nil, obj.DebugFlags{Collisions: v.ShowCollision})

	size := cellSize(m, s.Zoom)
	if v.ShowGrid {
		v.drawGrid(dst, m, size)
	}
	if r, ok := s.Marquee(); ok {
		x0, y0, x1, y1 := r.Normalized()
		sx, sy := v.cellOrigin(x0, y0, size)
		dst.StrokeRect(sx, sy, float64(x1-x0+1)*size, float64(y1-y0+1)*size, 2, marqueeColor)
	}
	sx, sy := v.cellOrigin(m.Spawn.X, m.Spawn.Y, size)
	dst.FillCircle(sx+size/2, sy+size/2, size/3, spawnColor)
	if v.hover != nil {
		hx, hy := v.cellOrigin(v.hover.X, v.hover.Y, size)
		dst.StrokeRect(hx, hy, size, size, 1, hoverColor)
	}
}

func (v *MapView) cellOrigin(x, y int, size float64) (float64, float64) {
	sx, sy := v.Camera.WorldToScreen(float64(x)*size, float64(y)*size)
	return math.Floor(sx), math.Floor(sy)
}

func (v *MapView) drawGrid(dst obj.Surface, m *levels.Map, size float64) {
	r := v.Camera.VisibleTileRange(size)
	if r.Empty() {
		return
	}
	top, bottom := float64(r.StartRow)*size, float64(r.EndRow)*size
	left, right := float64(r.StartCol)*size, float64(r.EndCol)*size
	for col := r.StartCol; col <= r.EndCol; col++ {
		x0, y0 := v.Camera.WorldToScreen(float64(col)*size, top)
		x1, y1 := v.Camera.WorldToScreen(float64(col)*size, bottom)
		dst.StrokeLine(x0, y0, x1, y1, 1, gridColor)
	}
	for row := r.StartRow; row <= r.EndRow; row++ {
		x0, y0 := v.Camera.WorldToScreen(left, float64(row)*size)
		x1, y1 := v.Camera.WorldToScreen(right, float64(row)*size)
		dst.StrokeLine(x0, y0, x1, y1, 1, gridColor)
	}
}
