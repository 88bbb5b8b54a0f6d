package main

import (
	"testing"

	"wondermap/common"
	"wondermap/maps"
)

// stubMap records lifecycle calls so the swap protocol can be checked
// without a graphics context.
type stubMap struct {
	name string
	log  *[]string
	bg   maps.Layer
	fg   maps.Layer
}

func (s *stubMap) Width() int          { return 1 }
func (s *stubMap) Height() int         { return 1 }
func (s *stubMap) TileWidth() int      { return maps.TileSize }
func (s *stubMap) TileHeight() int     { return maps.TileSize }
func (s *stubMap) WidthInPixels() int  { return maps.TileSize }
func (s *stubMap) HeightInPixels() int { return maps.TileSize }
func (s *stubMap) NLayers() int        { return 2 }
func (s *stubMap) NItems(int) int      { return 0 }

func (s *stubMap) Collisions(int) []maps.Tile {
	return []maps.Tile{maps.TileVoid}
}

func (s *stubMap) Item(int, int) maps.Item     { panic("no items") }
func (s *stubMap) Spawn(int) common.Point      { return common.Point{} }
func (s *stubMap) TileX(common.Fixed) int      { return 0 }
func (s *stubMap) TileY(common.Fixed) int      { return 0 }
func (s *stubMap) Background() *maps.Layer     { return &s.bg }
func (s *stubMap) Foreground() *maps.Layer     { return &s.fg }
func (s *stubMap) CreateLayer(int) *maps.Layer { return &maps.Layer{} }

func (s *stubMap) Init(maps.Scene)   { *s.log = append(*s.log, s.name+".init") }
func (s *stubMap) Enter(maps.Scene)  { *s.log = append(*s.log, s.name+".enter") }
func (s *stubMap) Leave(maps.Scene)  { *s.log = append(*s.log, s.name+".leave") }
func (s *stubMap) Deinit(maps.Scene) { *s.log = append(*s.log, s.name+".deinit") }

func (s *stubMap) InteractWithItem(maps.Scene, int)   {}
func (s *stubMap) UpdateBackground(x, y common.Fixed) {}
func (s *stubMap) UpdateForeground(x, y common.Fixed) {}
func (s *stubMap) OutOfBounds(common.Point) (maps.Teleport, bool) {
	return maps.Teleport{}, false
}

// The incoming map must be fully initialized and entered before the
// outgoing map is torn down, and the old map must be left before deinit.
func TestSetMapSwapProtocol(t *testing.T) {
	var log []string
	old := &stubMap{name: "old", log: &log}
	next := &stubMap{name: "next", log: &log}

	g := &Game{}
	g.setMap(maps.Wonderland, old)
	log = log[:0]

	g.setMap(maps.ShionHouse, next)

	want := []string{"next.init", "next.enter", "old.leave", "old.deinit"}
	if len(log) != len(want) {
		t.Fatalf("lifecycle calls = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("lifecycle calls = %v, want %v", log, want)
		}
	}

	if g.active != maps.Map(next) {
		t.Fatal("next map is not active after the swap")
	}
	if g.activeID != maps.ShionHouse {
		t.Fatalf("activeID = %v, want %v", g.activeID, maps.ShionHouse)
	}
}
