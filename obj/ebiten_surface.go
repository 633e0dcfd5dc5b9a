package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/levels"
	"golang.org/x/image/font/basicfont"
)

var debugFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// ImageSurface draws onto an ebiten image. Atlas and Sheet may be nil, in
// which case tiles and sprites report false and the compositor falls back
// to flat colours.
type ImageSurface struct {
	Dst   *ebiten.Image
	Atlas *ebiten.Image
	Sheet *ebiten.Image

	AtlasCell  int
	SpriteCell int
}

func NewImageSurface(atlas, sheet *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		Atlas:      atlas,
		Sheet:      sheet,
		AtlasCell:  common.AtlasCell,
		SpriteCell: common.SpriteCell,
	}
}

// Target sets the image drawn to for the current frame.
func (s *ImageSurface) Target(dst *ebiten.Image) *ImageSurface {
	s.Dst = dst
	return s
}

func cellImage(sheet *ebiten.Image, row, col, cell int) *ebiten.Image {
	if sheet == nil || cell <= 0 {
		return nil
	}
	r := image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell)
	if !r.In(sheet.Bounds()) {
		return nil
	}
	return sheet.SubImage(r).(*ebiten.Image)
}

func (s *ImageSurface) DrawTile(t levels.TileRef, x, y, size float64) bool {
	row, col, ok := t.RowCol()
	if !ok {
		return false
	}
	img := cellImage(s.Atlas, row, col, s.AtlasCell)
	if img == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	scale := size / float64(s.AtlasCell)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	s.Dst.DrawImage(img, op)
	return true
}

func (s *ImageSurface) DrawSprite(f SpriteFrame, x, y, w, h float64, flipX bool) bool {
	img := cellImage(s.Sheet, f.Row, f.Col, s.SpriteCell)
	if img == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	sx := w / float64(s.SpriteCell)
	sy := h / float64(s.SpriteCell)
	if flipX {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+w, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	op.Filter = ebiten.FilterNearest
	s.Dst.DrawImage(img, op)
	return true
}

func (s *ImageSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(s.Dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *ImageSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.Dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.Dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(s.Dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *ImageSurface) Text(str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.Dst, str, debugFace, op)
}
