package main

import (
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wondermap/common"
	"wondermap/maps"
)

const (
	baseWidth  = 240
	baseHeight = 160

	interactRange = 24.0
	dialogFrames  = 240
)

// Game owns the one active map and drives it in a fixed per-frame sequence:
// update state, query for a teleport, act on it, render.
type Game struct {
	frames int
	debug  bool

	activeID maps.MapID
	active   maps.Map
	// midLayer is the extra drawable plane requested via CreateLayer; unlike
	// Background/Foreground it is owned here, not by the map.
	midLayer *maps.Layer

	player *Player
	camera *Camera

	watcher *maps.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	dialog    []string
	dialogTTL int
}

func NewGame(start maps.MapID, debug bool) *Game {
	g := &Game{debug: debug}
	g.setMap(start, maps.New(start))
	g.player = NewPlayer(g.active, g.active.Spawn(2))
	g.camera = NewCamera(baseWidth, baseHeight)
	g.camera.SetWorldBounds(g.active.WidthInPixels(), g.active.HeightInPixels())
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := maps.NewWatcher("maps/data", "maps/scripts")
		if err != nil {
			log.Printf("map watcher unavailable: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

// Say lets item scripts surface dialog lines through the opaque scene hook.
func (g *Game) Say(line string) {
	g.dialog = append(g.dialog, line)
	g.dialogTTL = dialogFrames
}

// setMap makes next the active map. The incoming map is fully initialized
// and entered before the outgoing one is torn down, so no frame renders
// without a visible layer.
func (g *Game) setMap(id maps.MapID, next maps.Map) {
	next.Init(g)
	next.Enter(g)
	next.Background().SetPriority(3)
	next.Foreground().SetPriority(1)
	var mid *maps.Layer
	if next.NLayers() > 2 {
		mid = next.CreateLayer(1)
		mid.SetPriority(2)
	}

	if g.active != nil {
		g.active.Leave(g)
		g.active.Deinit(g)
	}
	if g.midLayer != nil {
		g.midLayer.Dispose()
	}

	g.activeID = id
	g.active = next
	g.midLayer = mid
}

func (g *Game) applyTeleport(tp maps.Teleport, pos common.Point) {
	next := maps.New(tp.MapID())
	g.setMap(tp.MapID(), next)
	g.player.Relocate(next, maps.Arrival(tp, next, pos))
	g.camera.SetWorldBounds(next.WidthInPixels(), next.HeightInPixels())
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()

	g.player.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if id, ok := g.nearestItem(); ok {
			g.dialog = nil
			g.active.InteractWithItem(g, id)
		}
	}

	pos := g.player.Position()
	if tp, ok := g.active.OutOfBounds(pos); ok {
		g.applyTeleport(tp, pos)
	}

	px, py := g.player.Pixel()
	g.camera.Follow(px, py)
	for _, l := range g.layers() {
		l.SetCamera(g.camera.X, g.camera.Y)
	}
	g.active.UpdateBackground(common.FixedFromFloat(g.camera.X), common.FixedFromFloat(g.camera.Y))
	g.active.UpdateForeground(common.FixedFromFloat(g.camera.X), common.FixedFromFloat(g.camera.Y))

	if g.dialogTTL > 0 {
		g.dialogTTL--
		if g.dialogTTL == 0 {
			g.dialog = nil
		}
	}
	return nil
}

// nearestItem scans the active map's item layers for something in reach.
func (g *Game) nearestItem() (int, bool) {
	pos := g.player.Position()
	for layer := 0; layer < g.active.NLayers(); layer++ {
		for i := 0; i < g.active.NItems(layer); i++ {
			item := g.active.Item(layer, i)
			dx := (item.Position.X - pos.X).Float64()
			dy := (item.Position.Y - pos.Y).Float64()
			if dx*dx+dy*dy <= interactRange*interactRange {
				return item.ID, true
			}
		}
	}
	return 0, false
}

// drainWatcher applies pending hot-reload events at a fixed point in the
// frame; the watcher goroutine only ever talks over these channels.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("map data changed: %s, reloading %s", name, g.activeID)
			pos := g.player.Position()
			next := maps.New(g.activeID)
			g.setMap(g.activeID, next)
			g.player.Relocate(next, pos)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("map watcher: %v", err)
			}
		default:
			return
		}
	}
}

// layers returns the drawable planes back to front; higher priority means
// further back.
func (g *Game) layers() []*maps.Layer {
	ls := []*maps.Layer{g.active.Background(), g.active.Foreground()}
	if g.midLayer != nil {
		ls = append(ls, g.midLayer)
	}
	sort.Slice(ls, func(i, j int) bool { return ls[i].Priority() > ls[j].Priority() })
	return ls
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff})

	for _, l := range g.layers() {
		l.Draw(screen)
	}
	g.player.Draw(screen, g.camera.X, g.camera.Y)

	for i, line := range g.dialog {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+12*i)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  FPS: %.1f", g.activeID, ebiten.ActualFPS()), 8, baseHeight-16)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
