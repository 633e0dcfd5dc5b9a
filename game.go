package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/config"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/obj"
	"github.com/milk9111/topdown/storage"
)

var background = color.RGBA{R: 20, G: 24, B: 28, A: 255}

type Game struct {
	frames int

	cfg     config.Config
	store   storage.Store
	watcher *storage.Watcher

	input      *obj.Input
	level      *levels.Map
	player     *obj.Player
	camera     *obj.Camera
	compositor *obj.Compositor
	surface    *obj.ImageSurface

	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg config.Config, store storage.Store, src mapSource) *Game {
	lvl, from := loadStartMap(store, src)
	log.Printf("loaded %s (%dx%d)", from, lvl.Width, lvl.Height)

	player := obj.NewPlayer(lvl)
	player.Speed = cfg.Game.Speed

	g := &Game{
		cfg:        cfg,
		store:      store,
		input:      obj.NewInput(),
		player:     player,
		camera:     obj.NewCamera(cfg.Window.Width, cfg.Window.Height),
		compositor: obj.NewCompositor(),
		surface:    obj.NewImageSurface(assets.LoadOptional(cfg.Assets.Tileset), assets.LoadOptional(cfg.Assets.Player)),
		debug:      cfg.Game.Debug,
	}
	g.setMap(lvl)
	g.pauseUI = NewPauseUI(g)

	if cfg.Game.Watch {
		g.startWatcher()
	}
	return g
}

func (g *Game) startWatcher() {
	fs, ok := g.store.(*storage.FileStore)
	if !ok {
		log.Printf("watch needs the file storage driver, have %s", g.cfg.Storage.Driver)
		return
	}
	w, err := storage.NewWatcher(fs.Dir())
	if err != nil {
		log.Printf("failed to watch %s: %v", fs.Dir(), err)
		return
	}
	g.watcher = w
}

func (g *Game) setMap(m *levels.Map) {
	g.level = m
	g.player.SetMap(m)
	w, h := m.PixelSize()
	g.camera.SetWorldBounds(float64(w), float64(h))
	g.camera.Update(g.player.X, g.player.Y, g.player.Width, g.player.Height)
}

// reload swaps in the current test map, keeping the old map on failure.
func (g *Game) reload() {
	if g.store == nil {
		return
	}
	m, err := storage.LoadMap(g.store, storage.HandoffKey)
	if err != nil {
		log.Printf("failed to reload test map: %v", err)
		return
	}
	g.setMap(m)
	log.Printf("reloaded test map %s", m.Name)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case key, ok := <-g.watcher.Events:
		if ok && key == storage.HandoffKey {
			g.reload()
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch error: %v", err)
		}
	default:
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.input.Update()
	if g.input.DebugToggled {
		g.debug = !g.debug
	}
	g.player.Update(g.input)
	g.camera.Update(g.player.X, g.player.Y, g.player.Width, g.player.Height)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.compositor.RenderFrame(g.surface.Target(screen), g.level, g.camera, g.player, obj.DebugAll(g.debug))

	if g.debug {
		tx, ty := int(g.player.X)/g.level.TileSize, int(g.player.Y)/g.level.TileSize
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  pos (%.0f,%.0f)  tile (%d,%d)  facing %s",
			ebiten.ActualFPS(), g.player.X, g.player.Y, tx, ty, g.player.Facing), 10, g.cfg.Window.Height-20)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.store != nil {
		return g.store.Close()
	}
	return nil
}
