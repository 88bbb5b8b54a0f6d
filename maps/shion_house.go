package maps

import "wondermap/common"

// shionHouse is a small interior map. Its front door (east edge) leads back
// to wonderland and the cellar hatch (south edge) drops into it; the other
// edges are walls and configure no transitions.
type shionHouse struct {
	properties
	edges edges
}

func newShionHouse() *shionHouse {
	m := &shionHouse{}
	m.load("shion_house")
	m.edges = edges{
		east:  &edgeRule{target: Wonderland, spawn: 0, sourceSpawn: 2},
		south: &edgeRule{target: Wonderland, spawn: 1, sourceSpawn: 0},
	}
	return m
}

func (m *shionHouse) Init(scene Scene) {
	m.initLayers()
}

func (m *shionHouse) Enter(scene Scene) {}

func (m *shionHouse) Leave(scene Scene) {}

func (m *shionHouse) Deinit(scene Scene) {
	m.disposeLayers()
}

func (m *shionHouse) InteractWithItem(scene Scene, itemID int) {}

func (m *shionHouse) UpdateBackground(cameraX, cameraY common.Fixed) {}

func (m *shionHouse) UpdateForeground(cameraX, cameraY common.Fixed) {}

func (m *shionHouse) OutOfBounds(position common.Point) (Teleport, bool) {
	return m.edgeTeleport(m.edges, position)
}
