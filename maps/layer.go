package maps

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is one renderable plane of a map: a pre-rendered image of the
// layer's tiles plus a draw priority and camera offset. Background and
// foreground layers are owned by their map for its lifetime; layers handed
// out by CreateLayer are owned by the caller, who must Dispose them.
type Layer struct {
	img      *ebiten.Image
	priority int
	cameraX  float64
	cameraY  float64

	// deltas holds a per-pixel-row horizontal shift applied at draw time,
	// the software analog of a hardware horizontal-blank scroll table. Nil
	// until a map asks for it.
	deltas []float64
}

// newLayer renders the tiles of one data layer into a fresh layer handle.
// The layer index is a contract with the map data; out of range aborts.
func newLayer(d *Data, layer int) *Layer {
	if layer < 0 || layer >= len(d.collisions) {
		panic(fmt.Sprintf("maps: %s: create layer %d out of range (%d layers)", d.Name, layer, len(d.collisions)))
	}

	img := ebiten.NewImage(d.Width*TileSize, d.Height*TileSize)
	tile := ebiten.NewImage(TileSize, TileSize)
	tile.Fill(parseHexColor(d.colors[layer]))
	lip := ebiten.NewImage(TileSize, TileSize/4)
	lip.Fill(parseHexColor(d.colors[layer]))

	tiles := d.collisions[layer]
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*TileSize), float64(y*TileSize))
			switch tiles[y*d.Width+x] {
			case TilePlain:
				img.DrawImage(tile, op)
			case TilePlatform:
				// platforms render as a thin lip at the tile's top edge
				img.DrawImage(lip, op)
			}
		}
	}
	tile.Deallocate()
	lip.Deallocate()

	return &Layer{img: img}
}

// SetPriority sets the draw order; higher priorities draw further back.
func (l *Layer) SetPriority(priority int) {
	l.priority = priority
}

func (l *Layer) Priority() int {
	return l.priority
}

// SetCamera positions the layer relative to the camera's top-left corner.
func (l *Layer) SetCamera(x, y float64) {
	l.cameraX = x
	l.cameraY = y
}

// HorizontalDeltas exposes the per-row shift table, allocating it on first
// use. Maps rewrite it every frame for parallax effects; the table is scoped
// to this layer and dies with it.
func (l *Layer) HorizontalDeltas() []float64 {
	if l.deltas == nil {
		l.deltas = make([]float64, l.img.Bounds().Dy())
	}
	return l.deltas
}

// Draw renders the layer. With a delta table present, each pixel row is
// shifted independently, otherwise the whole image draws in one call.
func (l *Layer) Draw(screen *ebiten.Image) {
	if l == nil || l.img == nil {
		return
	}
	if l.deltas == nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-l.cameraX, -l.cameraY)
		screen.DrawImage(l.img, op)
		return
	}

	w := l.img.Bounds().Dx()
	for y, dx := range l.deltas {
		row := l.img.SubImage(image.Rect(0, y, w, y+1)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-l.cameraX+dx, -l.cameraY+float64(y))
		screen.DrawImage(row, op)
	}
}

// Dispose releases the layer's image. The layer must not be drawn afterwards.
func (l *Layer) Dispose() {
	if l == nil || l.img == nil {
		return
	}
	l.img.Deallocate()
	l.img = nil
}

func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0x3c, 0x78, 0xff
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
