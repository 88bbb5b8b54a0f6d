package maps

import (
	"fmt"

	"wondermap/common"
)

// TileSize is the pixel width and height of every tile, on every map.
const TileSize = 16

// Scene is the surrounding game context handed to map lifecycle and
// interaction hooks. Maps treat it as opaque and must not retain it past the
// call; hooks that want to talk back (e.g. item dialog) type-assert optional
// capabilities on it.
type Scene interface{}

// Map is one loaded level: its geometry, collision tables, items, renderable
// layers and transition rules. Exactly one map is active at a time and is
// owned by the game loop.
type Map interface {
	// Dimensions in tiles.
	Width() int
	Height() int

	// Per-tile pixel dimensions; constant across all maps.
	TileWidth() int
	TileHeight() int

	// Dimensions in pixels; always tile count times tile size, exactly.
	WidthInPixels() int
	HeightInPixels() int

	// NLayers is the number of collision/graphics layers.
	NLayers() int
	// NItems is the item count of one layer; layer must be in range.
	NItems(layer int) int
	// Collisions is the raw per-tile semantic codes of one layer, row-major,
	// length Width*Height. Callers must not mutate it.
	Collisions(layer int) []Tile
	// Item returns one item slot of a layer; out-of-range indices panic.
	Item(layer, index int) Item
	// Spawn returns a pre-authored entry point; out-of-range indices panic.
	Spawn(index int) common.Point

	// TileX and TileY convert a pixel coordinate to a tile index, clamped
	// into the map so positions outside the map are safe to probe.
	TileX(x common.Fixed) int
	TileY(y common.Fixed) int

	// Background and Foreground are the two renderable layers the map owns
	// for its lifetime. The loop borrows them, never owns them.
	Background() *Layer
	Foreground() *Layer
	// CreateLayer builds a fresh renderable layer for the given layer index
	// and hands ownership to the caller.
	CreateLayer(layer int) *Layer

	// Lifecycle. Init runs once after construction, Deinit once before the
	// owner drops the map. Enter and Leave bracket being the active map.
	Init(scene Scene)
	Enter(scene Scene)
	Leave(scene Scene)
	Deinit(scene Scene)

	// InteractWithItem dispatches map-specific behavior for an item id.
	// Unrecognized ids are no-ops so new items don't break old maps.
	InteractWithItem(scene Scene, itemID int)

	// Per-frame camera hooks for parallax and similar layer effects.
	UpdateBackground(cameraX, cameraY common.Fixed)
	UpdateForeground(cameraX, cameraY common.Fixed)

	// OutOfBounds reports whether position has left the visitable area and,
	// if so, the teleport that resolves it. Horizontal edges are checked
	// before vertical ones; a coordinate exactly on the far edge is out.
	OutOfBounds(position common.Point) (Teleport, bool)
}

// properties carries the data-driven part of a map and is embedded by every
// concrete map. Concrete maps add lifecycle behavior, item dispatch and edge
// rules on top.
type properties struct {
	data       *Data
	background *Layer
	foreground *Layer
}

// load reads the named map data. The data ships embedded in the binary, so a
// failure here is a build-time inconsistency, not a runtime condition.
func (p *properties) load(name string) {
	d, err := LoadData(name)
	if err != nil {
		panic(fmt.Sprintf("maps: load %q: %v", name, err))
	}
	p.data = d
}

func (p *properties) Width() int  { return p.data.Width }
func (p *properties) Height() int { return p.data.Height }

func (p *properties) TileWidth() int  { return TileSize }
func (p *properties) TileHeight() int { return TileSize }

func (p *properties) WidthInPixels() int  { return p.data.Width * TileSize }
func (p *properties) HeightInPixels() int { return p.data.Height * TileSize }

func (p *properties) NLayers() int {
	return len(p.data.collisions)
}

func (p *properties) NItems(layer int) int {
	return len(p.itemsOn(layer))
}

func (p *properties) Collisions(layer int) []Tile {
	if layer < 0 || layer >= len(p.data.collisions) {
		panic(fmt.Sprintf("maps: %s: layer %d out of range (%d layers)", p.data.Name, layer, len(p.data.collisions)))
	}
	return p.data.collisions[layer]
}

func (p *properties) Item(layer, index int) Item {
	items := p.itemsOn(layer)
	if index < 0 || index >= len(items) {
		panic(fmt.Sprintf("maps: %s: item %d out of range on layer %d (%d items)", p.data.Name, index, layer, len(items)))
	}
	return items[index]
}

func (p *properties) Spawn(index int) common.Point {
	if index < 0 || index >= len(p.data.spawns) {
		panic(fmt.Sprintf("maps: %s: spawn %d out of range (%d spawns)", p.data.Name, index, len(p.data.spawns)))
	}
	return p.data.spawns[index]
}

func (p *properties) itemsOn(layer int) []Item {
	if layer < 0 || layer >= len(p.data.items) {
		panic(fmt.Sprintf("maps: %s: layer %d out of range (%d layers)", p.data.Name, layer, len(p.data.items)))
	}
	return p.data.items[layer]
}

// TileX converts a pixel x coordinate to a tile column, clamped into
// [0, Width-1]. The clamping is deliberate: collision and teleport logic may
// probe positions momentarily outside the map (e.g. mid-transition) without
// a bounds branch at every call site.
func (p *properties) TileX(x common.Fixed) int {
	return common.Clamp(x.Integer()/TileSize, 0, p.data.Width-1)
}

// TileY converts a pixel y coordinate to a tile row, clamped into
// [0, Height-1].
func (p *properties) TileY(y common.Fixed) int {
	return common.Clamp(y.Integer()/TileSize, 0, p.data.Height-1)
}

func (p *properties) Background() *Layer { return p.background }
func (p *properties) Foreground() *Layer { return p.foreground }

func (p *properties) CreateLayer(layer int) *Layer {
	return newLayer(p.data, layer)
}

// initLayers builds the owned background and foreground layers: the first
// and last graphics layers of the map data.
func (p *properties) initLayers() {
	p.background = newLayer(p.data, 0)
	p.foreground = newLayer(p.data, len(p.data.collisions)-1)
}

// disposeLayers releases the owned layers; called from Deinit so the order
// deinit-then-release is structural.
func (p *properties) disposeLayers() {
	if p.background != nil {
		p.background.Dispose()
		p.background = nil
	}
	if p.foreground != nil {
		p.foreground.Dispose()
		p.foreground = nil
	}
}

// edgeRule wires one map edge to a destination. spawn selects the entry
// point in the target map, sourceSpawn the local spawn whose coordinate
// seeds the teleport's position delta.
type edgeRule struct {
	target      MapID
	spawn       int
	sourceSpawn int
}

// edges holds the configured edge transitions of a concrete map. Unset edges
// are simply not transitions; a map may configure zero to four of them.
type edges struct {
	west  *edgeRule
	east  *edgeRule
	north *edgeRule
	south *edgeRule
}

// edgeTeleport resolves an out-of-bounds position against the configured
// edges. Horizontal violations shadow vertical ones, so corner cases resolve
// deterministically, and at most one teleport is produced per call. The far
// edge is exclusive: x == WidthInPixels is already outside.
func (p *properties) edgeTeleport(e edges, position common.Point) (Teleport, bool) {
	switch {
	case position.X < 0:
		if r := e.west; r != nil {
			return Horizontal(r.target, r.spawn, p.Spawn(r.sourceSpawn)), true
		}
	case position.X >= common.FixedFromInt(p.WidthInPixels()):
		if r := e.east; r != nil {
			return Horizontal(r.target, r.spawn, p.Spawn(r.sourceSpawn)), true
		}
	case position.Y < 0:
		if r := e.north; r != nil {
			return Vertical(r.target, r.spawn, p.Spawn(r.sourceSpawn)), true
		}
	case position.Y >= common.FixedFromInt(p.HeightInPixels()):
		if r := e.south; r != nil {
			return Vertical(r.target, r.spawn, p.Spawn(r.sourceSpawn)), true
		}
	}
	return Teleport{}, false
}
