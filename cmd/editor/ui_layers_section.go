package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
)

var layerLabels = []string{"Ground", "Objects", "Collision"}

func addLayersSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, h uiHandlers, initial levels.Layer) *LayerBar {
	parent.AddChild(newLabel("Layer", fontFace))

	lb := &LayerBar{}
	lb.active = -1
	row, group, buttons := newRadioRow(theme, fontFace, layerLabels, 60, func(idx int) {
		lb.active = idx
		if h.OnLayer != nil {
			h.OnLayer(levels.Layers[idx])
		}
	})
	lb.group = group
	lb.buttons = buttons
	parent.AddChild(row)

	lb.autoLayerBtn = newButton(theme, fontFace, "Auto layer: On", h.OnAutoLayer)
	parent.AddChild(lb.autoLayerBtn)

	viewRow := newRow(6)
	lb.gridBtn = newButton(theme, fontFace, "Grid: On", h.command(editor.CmdToggleGrid))
	lb.collisionBtn = newButton(theme, fontFace, "Collision: On", h.command(editor.CmdToggleCollision))
	viewRow.AddChild(lb.gridBtn)
	viewRow.AddChild(lb.collisionBtn)
	parent.AddChild(viewRow)

	showRow := newRow(6)
	lb.groundBtn = newButton(theme, fontFace, "Ground: On", h.showLayer(levels.Ground))
	lb.objectsBtn = newButton(theme, fontFace, "Objects: On", h.showLayer(levels.Objects))
	showRow.AddChild(lb.groundBtn)
	showRow.AddChild(lb.objectsBtn)
	parent.AddChild(showRow)

	lb.SetLayer(initial)
	return lb
}
