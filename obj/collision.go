package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
)

// Hitbox is the collision rectangle of an actor, relative to its sprite
// origin.
type Hitbox struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// PlayerHitbox covers the feet of the 192px player sprite.
var PlayerHitbox = Hitbox{OffsetX: 70, OffsetY: 116, Width: 50, Height: 24}

// At returns the hitbox in world space for an actor whose top-left corner is
// (x, y). Screen space grows downward, so B is the larger y.
func (h Hitbox) At(x, y float64) cp.BB {
	l := x + h.OffsetX
	t := y + h.OffsetY
	return cp.BB{L: l, T: t, R: l + h.Width, B: t + h.Height}
}

// Collider tests hitboxes against the collision layer of a map.
type Collider struct {
	Map    *levels.Map
	Hitbox Hitbox
}

func NewCollider(m *levels.Map, h Hitbox) *Collider {
	return &Collider{Map: m, Hitbox: h}
}

// IsBlocked reports whether an actor at (x, y) would overlap a blocked cell
// or leave the map. Each corner of the hitbox is checked on its own; the far
// corners use right-1 and bottom-1 so an edge sitting exactly on a tile
// boundary does not reach into the next tile.
func (c *Collider) IsBlocked(x, y float64) bool {
	if c.Map == nil {
		return true
	}
	bb := c.Hitbox.At(x, y)
	ts := c.Map.TileSize
	left := common.FloorDiv(bb.L, ts)
	top := common.FloorDiv(bb.T, ts)
	right := common.FloorDiv(bb.R-1, ts)
	bottom := common.FloorDiv(bb.B-1, ts)

	corners := [4][2]int{
		{left, top},
		{right, top},
		{left, bottom},
		{right, bottom},
	}
	for _, p := range corners {
		if c.Map.Blocked(p[0], p[1]) {
			return true
		}
	}
	return false
}

// Move applies a (dx, dy) direction at the given speed, X first then Y, each
// committed only when the new position is free. Diagonal input is scaled by
// 1/sqrt(2) so it is no faster than axial movement.
func (c *Collider) Move(x, y, dx, dy, speed float64) (float64, float64) {
	v := cp.Vector{X: dx, Y: dy}
	if dx != 0 && dy != 0 {
		v = v.Mult(1 / math.Sqrt2)
	}
	v = v.Mult(speed)

	if nx := x + v.X; v.X != 0 && !c.IsBlocked(nx, y) {
		x = nx
	}
	if ny := y + v.Y; v.Y != 0 && !c.IsBlocked(x, ny) {
		y = ny
	}
	return x, y
}
