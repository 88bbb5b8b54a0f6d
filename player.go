package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"wondermap/common"
	"wondermap/maps"
)

const (
	gravity      = 900.0
	moveSpeed    = 90.0
	jumpSpeed    = 230.0
	playerWidth  = 10.0
	playerHeight = 14.0
)

// Player is the demo's tracked entity: a Chipmunk body over static boxes
// built from the active map's collision layer. The map itself only ever
// exposes raw collision codes; all physics lives here.
type Player struct {
	space *cp.Space
	body  *cp.Body
	img   *ebiten.Image
}

func NewPlayer(m maps.Map, spawn common.Point) *Player {
	img := ebiten.NewImage(int(playerWidth), int(playerHeight))
	img.Fill(color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff})
	p := &Player{img: img}
	p.Relocate(m, spawn)
	return p
}

// Relocate rebuilds the physics space for a (possibly different) map and
// places the player there. Called on spawn and after every teleport, so
// per-map physics state never leaks between map instances.
func (p *Player) Relocate(m maps.Map, pos common.Point) {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	buildStaticShapes(space, m)

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X.Float64(), Y: pos.Y.Float64()})
	space.AddBody(body)
	shape := cp.NewBox(body, playerWidth, playerHeight, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	space.AddShape(shape)

	p.space = space
	p.body = body
}

// playfieldLayer is the collision layer the player walks on: the middle
// layer when the map has a dedicated backdrop and foreground, otherwise the
// last one.
func playfieldLayer(m maps.Map) int {
	if m.NLayers() > 2 {
		return 1
	}
	return m.NLayers() - 1
}

// buildStaticShapes turns the playfield collision table into static boxes,
// merging horizontal runs of same-kind tiles so the space holds fewer
// shapes. Platform tiles are solid only near their top edge.
func buildStaticShapes(space *cp.Space, m maps.Map) {
	tiles := m.Collisions(playfieldLayer(m))
	w, h := m.Width(), m.Height()
	ts := float64(maps.TileSize)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			kind := tiles[y*w+x]
			if kind == maps.TileVoid {
				continue
			}
			run := x
			for run < w && tiles[y*w+run] == kind {
				run++
			}

			top := float64(y) * ts
			bottom := top + ts
			if kind == maps.TilePlatform {
				bottom = top + ts/4
			}
			bb := cp.BB{L: float64(x) * ts, B: top, R: float64(run) * ts, T: bottom}
			shape := space.AddShape(cp.NewBox2(space.StaticBody, bb, 0))
			shape.SetFriction(0.8)

			x = run - 1
		}
	}
}

func (p *Player) Update() {
	v := p.body.Velocity()
	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += moveSpeed
	}
	p.body.SetVelocityVector(cp.Vector{X: vx, Y: v.Y})

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && p.grounded() {
		p.body.SetVelocityVector(cp.Vector{X: vx, Y: -jumpSpeed})
	}

	p.space.Step(1.0 / 60.0)
}

func (p *Player) grounded() bool {
	grounded := false
	p.body.EachArbiter(func(arb *cp.Arbiter) {
		n := arb.Normal()
		if n.Y > 0.5 || n.Y < -0.5 {
			grounded = true
		}
	})
	return grounded
}

// Position reports the player's world position in fixed-point, the form the
// map's out-of-bounds check consumes.
func (p *Player) Position() common.Point {
	pos := p.body.Position()
	return common.Point{X: common.FixedFromFloat(pos.X), Y: common.FixedFromFloat(pos.Y)}
}

// Pixel reports the position as floats for the camera.
func (p *Player) Pixel() (float64, float64) {
	pos := p.body.Position()
	return pos.X, pos.Y
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	pos := p.body.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-playerWidth/2-camX, pos.Y-playerHeight/2-camY)
	screen.DrawImage(p.img, op)
}
