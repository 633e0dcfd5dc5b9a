package main

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
)

// radioBar keeps a radio group in step with session state. Change events
// fired by set echo the current state back, so handlers must be idempotent.
type radioBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	active  int
}

func (rb *radioBar) set(idx int) {
	if rb == nil || rb.group == nil || idx < 0 || idx >= len(rb.buttons) || idx == rb.active {
		return
	}
	rb.group.SetActive(rb.buttons[idx])
	rb.active = idx
}

// ToolBar is the row of tool buttons above the canvas.
type ToolBar struct {
	radioBar
	drawModeBtn *widget.Button
}

func (tb *ToolBar) SetTool(t editor.Tool) {
	if tb == nil {
		return
	}
	tb.set(int(t))
}

func (tb *ToolBar) SetDrawMode(m editor.DrawMode) {
	if tb == nil || tb.drawModeBtn == nil {
		return
	}
	if text := tb.drawModeBtn.Text(); text != nil {
		text.Label = m.String()
	}
}

// LayerBar holds the layer selector and the toggles next to it.
type LayerBar struct {
	radioBar
	autoLayerBtn *widget.Button
	gridBtn      *widget.Button
	collisionBtn *widget.Button
	groundBtn    *widget.Button
	objectsBtn   *widget.Button
}

func (lb *LayerBar) SetLayer(l levels.Layer) {
	if lb == nil {
		return
	}
	lb.set(int(l))
}

func setToggleLabel(btn *widget.Button, name string, on bool) {
	if btn == nil {
		return
	}
	label := name + ": Off"
	if on {
		label = name + ": On"
	}
	if text := btn.Text(); text != nil {
		text.Label = label
	}
}

func (lb *LayerBar) SetAutoLayer(on bool) {
	if lb != nil {
		setToggleLabel(lb.autoLayerBtn, "Auto layer", on)
	}
}

func (lb *LayerBar) SetGrid(on bool) {
	if lb != nil {
		setToggleLabel(lb.gridBtn, "Grid", on)
	}
}

func (lb *LayerBar) SetCollision(on bool) {
	if lb != nil {
		setToggleLabel(lb.collisionBtn, "Collision", on)
	}
}

// SetVisible updates the show/hide button of a tile layer.
func (lb *LayerBar) SetVisible(l levels.Layer, on bool) {
	if lb == nil {
		return
	}
	switch l {
	case levels.Ground:
		setToggleLabel(lb.groundBtn, "Ground", on)
	case levels.Objects:
		setToggleLabel(lb.objectsBtn, "Objects", on)
	}
}

// LeftPanelUI is the composed left panel and its stateful widgets.
type LeftPanelUI struct {
	Container *widget.Container
	Layers    *LayerBar
	SlotInput *widget.TextInput
	Status    *widget.Text
	Selection *widget.Text
}

// uiHandlers are the callbacks the panels invoke.
type uiHandlers struct {
	OnTool      func(editor.Tool)
	OnLayer     func(levels.Layer)
	OnAutoLayer func()
	OnShowLayer func(levels.Layer)
	OnCommand   func(editor.Command)
}

func (h uiHandlers) showLayer(l levels.Layer) func() {
	return func() {
		if h.OnShowLayer != nil {
			h.OnShowLayer(l)
		}
	}
}

func (h uiHandlers) command(c editor.Command) func() {
	return func() {
		if h.OnCommand != nil {
			h.OnCommand(c)
		}
	}
}
