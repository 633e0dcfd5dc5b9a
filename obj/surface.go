package obj

import (
	"image/color"

	"github.com/milk9111/topdown/levels"
)

// SpriteFrame selects a cell of the actor sprite sheet.
type SpriteFrame struct {
	Row int
	Col int
}

// Surface is a draw target for the compositor. Coordinates are screen
// pixels. DrawTile and DrawSprite report false when the target has no
// artwork for the request so the caller can draw a fallback.
type Surface interface {
	DrawTile(t levels.TileRef, x, y, size float64) bool
	DrawSprite(f SpriteFrame, x, y, w, h float64, flipX bool) bool
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color)
}
