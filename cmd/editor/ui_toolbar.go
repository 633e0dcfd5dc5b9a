package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/topdown/editor"
)

func buildToolBar(theme *widget.Theme, fontFace *text.Face, h uiHandlers, initialTool editor.Tool, initialMode editor.DrawMode) (*widget.Container, *ToolBar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(320, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	names := make([]string, 0, len(editor.Tools))
	for _, t := range editor.Tools {
		names = append(names, t.String())
	}
	tb := &ToolBar{}
	tb.active = -1
	row, group, buttons := newRadioRow(theme, fontFace, names, 64, func(idx int) {
		tb.active = idx
		if h.OnTool != nil {
			h.OnTool(editor.Tool(idx))
		}
	})
	tb.group = group
	tb.buttons = buttons
	toolbar.AddChild(row)

	tb.drawModeBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(initialMode.String(), fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			h.command(editor.CmdToggleDrawMode)()
		}),
	)
	toolbar.AddChild(tb.drawModeBtn)

	tb.SetTool(initialTool)
	return toolbar, tb
}
