package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
)

const (
	leftPanelWidth  = 220
	rightPanelWidth = 272
	toolbarHeight   = 48
	atlasCellSize   = 32
)

// EditorUI holds the ebitenui tree and the widgets the editor updates
// every frame.
type EditorUI struct {
	UI      *ebitenui.UI
	ToolBar *ToolBar
	Left    *LeftPanelUI
}

func BuildEditorUI(s *editor.Session, h uiHandlers) *EditorUI {
	ui := &ebitenui.UI{}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, h, s.Tool, s.DrawMode)
	leftPanel := buildLeftPanelUI(ui.PrimaryTheme, &fontFace, h, s)

	rightPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{50, 50, 56, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 8}),
			),
		),
	)
	rightPanel.AddChild(newLabel("Tileset (shift-drag for a stamp)", &fontFace))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel.Container)
	root.AddChild(rightPanel)
	root.AddChild(toolbarContainer)
	ui.Container = root

	return &EditorUI{UI: ui, ToolBar: toolBar, Left: leftPanel}
}

// Sync copies session state into the widgets.
func (e *EditorUI) Sync(s *editor.Session, v *MapView, status string) {
	e.ToolBar.SetTool(s.Tool)
	e.ToolBar.SetDrawMode(s.DrawMode)
	e.Left.Layers.SetLayer(s.Layer)
	e.Left.Layers.SetAutoLayer(s.AutoLayer)
	e.Left.Layers.SetGrid(v.ShowGrid)
	e.Left.Layers.SetCollision(v.ShowCollision)
	e.Left.Layers.SetVisible(levels.Ground, v.LayerVisible(levels.Ground))
	e.Left.Layers.SetVisible(levels.Objects, v.LayerVisible(levels.Objects))
	e.Left.Selection.Label = s.SelectionInfo()
	e.Left.Status.Label = status
}

// TypingText reports whether a text input has focus, in which case hotkeys
// are suppressed.
func (e *EditorUI) TypingText() bool {
	if fw := e.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return true
		}
	}
	return false
}
