package obj

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/levels"
	"golang.org/x/image/colornames"
)

var (
	FallbackGround  = color.RGBA{0x6a, 0xb0, 0x4c, 0xff}
	FallbackActor   = color.RGBA{0x44, 0x88, 0xff, 0xff}
	collisionFill   = color.NRGBA{255, 0, 0, 102}
	collisionBorder = color.NRGBA{255, 0, 0, 204}
	collisionCross  = color.NRGBA{255, 255, 255, 204}
	hitboxStroke    = colornames.Lime
	hitboxFill      = color.NRGBA{0, 255, 0, 77}
	panelFill       = color.NRGBA{0, 0, 0, 178}
)

// FillerTile is drawn for empty ground cells.
var FillerTile = levels.Atlas(0, 0)

// Actor is anything the compositor draws between the map layers and the
// debug overlays.
type Actor interface {
	Draw(dst Surface, camX, camY float64)
	HitboxBB() cp.BB
}

type DebugFlags struct {
	Collisions bool
	Hitbox     bool
	Panel      bool
}

// DebugAll turns every overlay on or off.
func DebugAll(on bool) DebugFlags {
	return DebugFlags{Collisions: on, Hitbox: on, Panel: on}
}

func (f DebugFlags) Any() bool {
	return f.Collisions || f.Hitbox || f.Panel
}

type panelLine struct {
	text string
	y    float64
	clr  color.Color
}

var debugPanelLines = []panelLine{
	{"DEBUG MODE", 22, colornames.White},
	{"Collisions visible", 42, colornames.Yellow},
	{"Red = blocked area", 62, colornames.Red},
	{"Green = player hitbox", 82, colornames.Lime},
}

// Compositor draws the visible part of a map layer by layer.
type Compositor struct {
	// Scale multiplies the map tile size; the editor uses it for zoom.
	Scale float64
	// Hidden skips drawing of the given layers.
	Hidden map[levels.Layer]bool
	// EmptyGround, when set, is filled into empty ground cells instead of
	// FillerTile. The editor uses it so unpainted cells stay visible.
	EmptyGround color.Color
	// CellSize, when positive, replaces the scaled map tile size. The
	// terminal viewer sets it to 1 so camera units are tiles.
	CellSize float64
}

func NewCompositor() *Compositor {
	return &Compositor{Scale: 1}
}

func (c *Compositor) tileSize(m *levels.Map) float64 {
	if c.CellSize > 0 {
		return c.CellSize
	}
	s := c.Scale
	if s <= 0 {
		s = 1
	}
	return float64(m.TileSize) * s
}

// RenderFrame draws ground, objects, the collision overlay, the actor, its
// hitbox and the debug panel, in that order. Only cells inside the camera's
// visible range are visited.
func (c *Compositor) RenderFrame(dst Surface, m *levels.Map, cam *Camera, actor Actor, flags DebugFlags) {
	size := c.tileSize(m)
	r := cam.VisibleTileRange(size)

	if !c.Hidden[levels.Ground] {
		c.drawGround(dst, m, cam, r, size)
	}
	if !c.Hidden[levels.Objects] {
		c.drawObjects(dst, m, cam, r, size)
	}
	if flags.Collisions && !c.Hidden[levels.Collision] {
		c.drawCollisions(dst, m, cam, r, size)
	}
	if actor != nil {
		actor.Draw(dst, cam.X, cam.Y)
		if flags.Hitbox {
			c.drawHitbox(dst, actor.HitboxBB(), cam)
		}
	}
	if flags.Panel {
		DrawDebugPanel(dst)
	}
}

func cellOrigin(x, y int, size float64, cam *Camera) (float64, float64) {
	sx, sy := cam.WorldToScreen(float64(x)*size, float64(y)*size)
	return math.Floor(sx), math.Floor(sy)
}

func (c *Compositor) drawGround(dst Surface, m *levels.Map, cam *Camera, r TileRange, size float64) {
	for y := r.StartRow; y < r.EndRow; y++ {
		for x := r.StartCol; x < r.EndCol; x++ {
			t := m.Tile(levels.Ground, x, y)
			sx, sy := cellOrigin(x, y, size, cam)
			if t.IsEmpty() {
				if c.EmptyGround != nil {
					dst.FillRect(sx, sy, size, size, c.EmptyGround)
					continue
				}
				t = FillerTile
			}
			if !dst.DrawTile(t, sx, sy, size) {
				dst.FillRect(sx, sy, size, size, FallbackGround)
			}
		}
	}
}

func (c *Compositor) drawObjects(dst Surface, m *levels.Map, cam *Camera, r TileRange, size float64) {
	for y := r.StartRow; y < r.EndRow; y++ {
		for x := r.StartCol; x < r.EndCol; x++ {
			t := m.Tile(levels.Objects, x, y)
			if t.IsEmpty() {
				continue
			}
			sx, sy := cellOrigin(x, y, size, cam)
			dst.DrawTile(t, sx, sy, size)
		}
	}
}

func (c *Compositor) drawCollisions(dst Surface, m *levels.Map, cam *Camera, r TileRange, size float64) {
	for y := r.StartRow; y < r.EndRow; y++ {
		for x := r.StartCol; x < r.EndCol; x++ {
			if !m.Blocked(x, y) {
				continue
			}
			sx, sy := cellOrigin(x, y, size, cam)
			dst.FillRect(sx, sy, size, size, collisionFill)
			dst.StrokeRect(sx, sy, size, size, 2, collisionBorder)
			dst.StrokeLine(sx, sy, sx+size, sy+size, 2, collisionCross)
			dst.StrokeLine(sx+size, sy, sx, sy+size, 2, collisionCross)
		}
	}
}

func (c *Compositor) drawHitbox(dst Surface, bb cp.BB, cam *Camera) {
	sx, sy := cam.WorldToScreen(bb.L, bb.T)
	sx, sy = math.Floor(sx), math.Floor(sy)
	w, h := bb.R-bb.L, bb.B-bb.T
	dst.StrokeRect(sx, sy, w, h, 2, hitboxStroke)
	dst.FillRect(sx, sy, w, h, hitboxFill)
}

// DrawDebugPanel draws the fixed legend box in the top-left corner.
func DrawDebugPanel(dst Surface) {
	dst.FillRect(10, 10, 280, 100, panelFill)
	dst.StrokeRect(10, 10, 280, 100, 2, colornames.Red)
	for _, l := range debugPanelLines {
		dst.Text(l.text, 20, l.y, l.clr)
	}
}
