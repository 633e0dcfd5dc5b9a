package obj

import (
	"math"

	"github.com/milk9111/topdown/common"
)

// Camera is a world-space viewport offset. X and Y are the world coordinates
// of the top-left screen pixel.
type Camera struct {
	X float64
	Y float64

	screenW int
	screenH int
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// TileRange is a half-open range of rows and columns.
type TileRange struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

func (r TileRange) Empty() bool {
	return r.StartRow >= r.EndRow || r.StartCol >= r.EndCol
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{screenW: screenW, screenH: screenH}
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Update centres the view on the actor and clamps it to the world.
func (c *Camera) Update(actorX, actorY, actorW, actorH float64) (float64, float64) {
	c.X = actorX - float64(c.screenW)/2 + actorW/2
	c.Y = actorY - float64(c.screenH)/2 + actorH/2
	c.clamp()
	return c.X, c.Y
}

// SetPosition moves the top-left of the view, clamped to the world.
func (c *Camera) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
	c.clamp()
}

func (c *Camera) clamp() {
	c.X = clampAxis(c.X, c.worldW, float64(c.screenW))
	c.Y = clampAxis(c.Y, c.worldH, float64(c.screenH))
}

func clampAxis(v, world, view float64) float64 {
	if world <= 0 {
		return v
	}
	hi := world - view
	if hi < 0 {
		// world smaller than view: center on world
		return hi / 2
	}
	return common.Clamp(v, 0, hi)
}

// VisibleTileRange returns the rows and columns that intersect the view,
// padded by one tile on the trailing edge. tileSize is the on-screen size of
// one cell.
func (c *Camera) VisibleTileRange(tileSize float64) TileRange {
	if tileSize <= 0 {
		return TileRange{}
	}
	cols := int(math.Ceil(c.worldW / tileSize))
	rows := int(math.Ceil(c.worldH / tileSize))

	startCol := int(math.Floor(c.X / tileSize))
	startRow := int(math.Floor(c.Y / tileSize))
	endCol := startCol + int(math.Ceil(float64(c.screenW)/tileSize)) + 1
	endRow := startRow + int(math.Ceil(float64(c.screenH)/tileSize)) + 1

	return TileRange{
		StartRow: common.ClampInt(startRow, 0, rows),
		EndRow:   common.ClampInt(endRow, 0, rows),
		StartCol: common.ClampInt(startCol, 0, cols),
		EndCol:   common.ClampInt(endCol, 0, cols),
	}
}

func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}
