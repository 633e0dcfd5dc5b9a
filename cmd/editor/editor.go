package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/topdown/editor"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
)

var editorBackground = color.RGBA{24, 24, 28, 255}

// statusFrames is how long a status message stays up (about four seconds).
const statusFrames = 240

// EditorGame is the ebiten front-end around an editing session.
type EditorGame struct {
	session *editor.Session
	ws      *Workspace
	view    *MapView
	atlas   *AtlasPanel
	surface *obj.ImageSurface
	clip    *systemClipboard
	ui      *EditorUI

	width, height int

	status      string
	statusTimer int
}

func NewEditorGame(ws *Workspace, surface *obj.ImageSurface, clip *systemClipboard, width, height int) *EditorGame {
	g := &EditorGame{
		session: ws.Session,
		ws:      ws,
		view:    NewMapView(),
		atlas:   NewAtlasPanel(surface.Atlas, atlasCellSize),
		surface: surface,
		clip:    clip,
	}
	g.ui = BuildEditorUI(g.session, uiHandlers{
		OnTool:  g.session.SetTool,
		OnLayer: g.session.SetLayer,
		OnAutoLayer: func() {
			g.session.AutoLayer = !g.session.AutoLayer
		},
		OnShowLayer: func(l levels.Layer) {
			g.view.ToggleLayer(l)
		},
		OnCommand: g.run,
	})
	g.resize(width, height)
	return g
}

func (g *EditorGame) resize(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	g.view.SetBounds(leftPanelWidth, toolbarHeight, w-leftPanelWidth-rightPanelWidth, h-toolbarHeight-24)
	g.atlas.X = w - rightPanelWidth + 8
	g.atlas.Y = 40
}

func (g *EditorGame) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTimer = statusFrames
	log.Printf("[editor] %s", g.status)
}

// report shows err in the status line, or msg when err is nil.
func (g *EditorGame) report(err error, msg string) {
	if err != nil {
		g.setStatus("error: %v", err)
		return
	}
	g.setStatus("%s", msg)
}

func (g *EditorGame) run(cmd editor.Command) {
	s := g.session
	switch cmd {
	case editor.CmdCopy:
		if s.Copy() {
			g.clip.Put(s.Clipboard())
			cb := s.Clipboard()
			g.setStatus("copied %dx%d", cb.Width, cb.Height)
		}
		return
	case editor.CmdPaste:
		if cb := g.clip.Get(); cb != nil {
			s.SetClipboard(cb)
		}
		s.Paste()
		return
	}
	if s.Exec(cmd) {
		return
	}

	name := g.ui.Left.SlotInput.GetText()
	switch cmd {
	case editor.CmdSave:
		err := g.ws.Save(name)
		g.report(err, fmt.Sprintf("saved %q", s.Map.Name))
	case editor.CmdLoad:
		err := g.ws.LoadSlot(name)
		g.report(err, fmt.Sprintf("loaded %q", name))
		g.view.Camera.SetPosition(0, 0)
	case editor.CmdOpen:
		err := g.ws.Import()
		g.report(err, "imported "+g.ws.ImportPath)
	case editor.CmdExport:
		err := g.ws.Export()
		g.report(err, "exported "+g.ws.ExportPath)
	case editor.CmdNew:
		err := g.ws.NewMap()
		g.report(err, fmt.Sprintf("new %dx%d map", s.Map.Width, s.Map.Height))
		g.view.Camera.SetPosition(0, 0)
	case editor.CmdTestMap:
		g.report(g.ws.TestMap(), "test map written")
	case editor.CmdToggleGrid:
		g.view.ShowGrid = !g.view.ShowGrid
	case editor.CmdToggleCollision:
		g.view.ShowCollision = !g.view.ShowCollision
	}
	switch cmd {
	case editor.CmdLoad, editor.CmdOpen, editor.CmdNew:
		g.ui.Left.SlotInput.SetText(s.Map.Name)
	}
}

func (g *EditorGame) Update() error {
	g.ui.UI.Update()

	if !g.ui.TypingText() {
		for _, cmd := range justPressedCommands() {
			g.run(cmd)
		}
	}

	mx, my := ebiten.CursorPosition()
	if !g.atlas.Update(g.session, mx, my) {
		g.view.Update(g.session, mx, my)
	}

	if g.statusTimer > 0 {
		g.statusTimer--
		if g.statusTimer == 0 {
			g.status = ""
		}
	}
	g.ui.Sync(g.session, g.view, g.status)
	return nil
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	screen.Fill(editorBackground)
	g.view.Draw(screen, g.surface, g.session)
	g.ui.UI.Draw(screen)
	g.atlas.Render(g.surface.Target(screen), g.session)
	ebitenutil.DebugPrintAt(screen, g.session.Status(), leftPanelWidth+8, g.height-18)
}

func (g *EditorGame) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.resize(int(outsideWidth), int(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("should use LayoutF")
}
