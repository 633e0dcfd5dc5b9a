package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/topdown/editor"
)

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, h uiHandlers, s *editor.Session) *LeftPanelUI {
	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10, Right: 10}),
			),
		),
	)

	slotInput := addSlotNameSection(leftPanel, fontFace, s.Map.Name)

	fileRow := newRow(6)
	fileRow.AddChild(newButton(theme, fontFace, "Save", h.command(editor.CmdSave)))
	fileRow.AddChild(newButton(theme, fontFace, "Load", h.command(editor.CmdLoad)))
	fileRow.AddChild(newButton(theme, fontFace, "New", h.command(editor.CmdNew)))
	leftPanel.AddChild(fileRow)

	ioRow := newRow(6)
	ioRow.AddChild(newButton(theme, fontFace, "Export", h.command(editor.CmdExport)))
	ioRow.AddChild(newButton(theme, fontFace, "Import", h.command(editor.CmdOpen)))
	ioRow.AddChild(newButton(theme, fontFace, "Test", h.command(editor.CmdTestMap)))
	leftPanel.AddChild(ioRow)

	layers := addLayersSection(leftPanel, theme, fontFace, h, s.Layer)

	editRow := newRow(6)
	editRow.AddChild(newButton(theme, fontFace, "Undo", h.command(editor.CmdUndo)))
	editRow.AddChild(newButton(theme, fontFace, "Redo", h.command(editor.CmdRedo)))
	editRow.AddChild(newButton(theme, fontFace, "Spawn", h.command(editor.CmdSpawn)))
	leftPanel.AddChild(editRow)

	clipRow := newRow(6)
	clipRow.AddChild(newButton(theme, fontFace, "Copy", h.command(editor.CmdCopy)))
	clipRow.AddChild(newButton(theme, fontFace, "Paste", h.command(editor.CmdPaste)))
	leftPanel.AddChild(clipRow)

	leftPanel.AddChild(newLabel("Selection", fontFace))
	selection := widget.NewText(widget.TextOpts.Text(s.SelectionInfo(), fontFace, color.White))
	leftPanel.AddChild(selection)

	status := widget.NewText(
		widget.TextOpts.Text("", fontFace, color.RGBA{200, 200, 120, 255}),
		widget.TextOpts.MaxWidth(float64(leftPanelWidth-20)),
	)
	leftPanel.AddChild(status)

	return &LeftPanelUI{
		Container: leftPanel,
		Layers:    layers,
		SlotInput: slotInput,
		Status:    status,
		Selection: selection,
	}
}
