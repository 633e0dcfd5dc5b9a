package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/obj"
)

const (
	screenWidth  = 800
	screenHeight = 300
)

var facings = []obj.Direction{obj.FacingDown, obj.FacingRight, obj.FacingLeft, obj.FacingUp}

// previewGame loops the walk cycle of a player sheet in all four facings.
type previewGame struct {
	surface *obj.ImageSurface
	size    float64

	frame int
	tick  int
	delay int
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.delay > 1 {
		g.delay--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.delay++
	}
	g.tick++
	if g.tick >= g.delay {
		g.tick = 0
		g.frame = (g.frame + 1) % common.AnimationFrames
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	s := g.surface.Target(screen)
	gap := (float64(screenWidth) - 4*g.size) / 5
	y := (float64(screenHeight) - g.size) / 2
	for i, d := range facings {
		x := gap + float64(i)*(g.size+gap)
		if !s.DrawSprite(obj.WalkFrame(d, g.frame), x, y, g.size, g.size, d == obj.FacingLeft) {
			s.FillRect(x, y, g.size, g.size, obj.FallbackActor)
		}
		s.Text(d.String(), x, y+g.size+16, color.White)
	}
	s.Text("+/- frame delay", 10, 20, color.Gray{Y: 160})
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	sheet := flag.String("sheet", assets.PlayerPath, "player sheet (4x4 cells)")
	scale := flag.Int("scale", 4, "display scale of one sheet cell")
	flag.Parse()

	g := &previewGame{
		surface: obj.NewImageSurface(nil, assets.LoadOptional(*sheet)),
		size:    float64(common.SpriteCell * *scale),
		delay:   common.FrameDelay,
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Player Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
