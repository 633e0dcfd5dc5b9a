package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
)

type Direction int

const (
	FacingDown Direction = iota
	FacingRight
	FacingLeft
	FacingUp
)

func (d Direction) String() string {
	switch d {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	default:
		return "down"
	}
}

// sheetRow maps a facing to its row in the player sheet. Left reuses the
// right row and is mirrored when drawn.
func (d Direction) sheetRow() int {
	switch d {
	case FacingRight, FacingLeft:
		return 1
	case FacingUp:
		return 2
	default:
		return 3
	}
}

// Player is the single controllable actor.
type Player struct {
	X float64
	Y float64

	Width  float64
	Height float64
	Speed  float64

	Facing     Direction
	Frame      int
	FrameDelay int
	Moving     bool

	frameTick int
	collider  *Collider
}

// NewPlayer places the player at the map's spawn tile.
func NewPlayer(m *levels.Map) *Player {
	p := &Player{
		Width:      common.PlayerSize,
		Height:     common.PlayerSize,
		Speed:      common.PlayerSpeed,
		FrameDelay: common.FrameDelay,
		collider:   NewCollider(m, PlayerHitbox),
	}
	p.X, p.Y = m.SpawnPosition()
	return p
}

// SetMap swaps the map the player collides against and moves it to the new
// spawn.
func (p *Player) SetMap(m *levels.Map) {
	p.collider.Map = m
	p.X, p.Y = m.SpawnPosition()
	p.Frame = 0
	p.frameTick = 0
	p.Moving = false
}

func (p *Player) Collider() *Collider {
	return p.collider
}

// Update moves the player according to the held directions. When several
// directions are held the facing follows the last of up, down, left, right.
func (p *Player) Update(in *Input) {
	var dx, dy float64
	if in.Up {
		dy--
		p.Facing = FacingUp
	}
	if in.Down {
		dy++
		p.Facing = FacingDown
	}
	if in.Left {
		dx--
		p.Facing = FacingLeft
	}
	if in.Right {
		dx++
		p.Facing = FacingRight
	}

	p.Moving = dx != 0 || dy != 0
	if !p.Moving {
		p.Frame = 0
		p.frameTick = 0
		return
	}

	p.X, p.Y = p.collider.Move(p.X, p.Y, dx, dy, p.Speed)

	p.frameTick++
	if p.frameTick >= p.FrameDelay {
		p.frameTick = 0
		p.Frame = (p.Frame + 1) % common.AnimationFrames
	}
}

// WalkFrame returns the sheet cell of walk frame n for a facing.
func WalkFrame(d Direction, n int) SpriteFrame {
	return SpriteFrame{Row: d.sheetRow(), Col: n % common.AnimationFrames}
}

// CurrentFrame returns the sprite cell for the current facing and frame.
func (p *Player) CurrentFrame() SpriteFrame {
	if !p.Moving {
		return WalkFrame(p.Facing, 0)
	}
	return WalkFrame(p.Facing, p.Frame)
}

func (p *Player) Draw(dst Surface, camX, camY float64) {
	x := math.Floor(p.X - camX)
	y := math.Floor(p.Y - camY)
	if !dst.DrawSprite(p.CurrentFrame(), x, y, p.Width, p.Height, p.Facing == FacingLeft) {
		dst.FillRect(x, y, p.Width, p.Height, FallbackActor)
	}
}

func (p *Player) HitboxBB() cp.BB {
	return p.collider.Hitbox.At(p.X, p.Y)
}
