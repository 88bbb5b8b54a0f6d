package maps

import (
	"fmt"
	"log"

	"wondermap/common"
)

// Item ids placed on wonderland's item layer.
const (
	WonderlandOldLady = iota
	WonderlandBootSeller
)

// wonderland is the reference overworld map: scripted characters, a parallax
// backdrop and horizontal transitions on both side edges.
type wonderland struct {
	properties
	edges   edges
	scripts map[int]*itemScript
}

func newWonderland() *wonderland {
	m := &wonderland{}
	m.load("wonderland")
	m.edges = edges{
		west: &edgeRule{target: ShionHouse, spawn: 1, sourceSpawn: 0},
		// TODO: retarget the east edge at the castle entrance once that map
		// is authored.
		east: &edgeRule{target: ShionHouse, spawn: 2, sourceSpawn: 1},
	}
	return m
}

func (m *wonderland) Init(scene Scene) {
	m.initLayers()

	m.scripts = make(map[int]*itemScript)
	for id, name := range map[int]string{
		WonderlandOldLady:    "old_lady",
		WonderlandBootSeller: "boot_seller",
	} {
		sc, err := newItemScript(name)
		if err != nil {
			log.Printf("maps: wonderland: %v", err)
			continue
		}
		m.scripts[id] = sc
	}
}

func (m *wonderland) Enter(scene Scene) {}

func (m *wonderland) Leave(scene Scene) {}

func (m *wonderland) Deinit(scene Scene) {
	m.scripts = nil
	m.disposeLayers()
}

func (m *wonderland) InteractWithItem(scene Scene, itemID int) {
	sc, ok := m.scripts[itemID]
	if !ok {
		// unrecognized items are ignored so stale map data stays harmless
		return
	}
	if err := sc.run(scene, itemID); err != nil {
		fmt.Printf("maps: wonderland: item %d script error: %v\n", itemID, err)
	}
}

// UpdateBackground scrolls the backdrop at a fraction of the camera speed by
// rewriting the background layer's per-row shift table.
func (m *wonderland) UpdateBackground(cameraX, cameraY common.Fixed) {
	shift := cameraX.Float64() * m.data.Parallax
	deltas := m.background.HorizontalDeltas()
	for i := range deltas {
		deltas[i] = shift
	}
}

func (m *wonderland) UpdateForeground(cameraX, cameraY common.Fixed) {}

func (m *wonderland) OutOfBounds(position common.Point) (Teleport, bool) {
	return m.edgeTeleport(m.edges, position)
}
