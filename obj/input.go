package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the direction keys held this frame.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	// DebugToggled is true on the frame the debug key (C) was pressed.
	DebugToggled bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard: WASD and the arrow keys move, C toggles the
// debug overlays and F12 quits.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	i.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyC)
}
