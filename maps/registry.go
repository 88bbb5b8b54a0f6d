package maps

import "fmt"

// MapID identifies a concrete map. It is the only handle that crosses the
// package boundary (teleport targets, save data), so values are stable:
// append new ids, never reorder.
type MapID int

const (
	ShionHouse MapID = iota
	Wonderland
)

func (id MapID) String() string {
	switch id {
	case ShionHouse:
		return "shion_house"
	case Wonderland:
		return "wonderland"
	}
	return fmt.Sprintf("MapID(%d)", int(id))
}

// ParseID resolves a map name, e.g. from a CLI flag, back to its id.
func ParseID(name string) (MapID, bool) {
	for _, id := range AllIDs() {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// AllIDs lists every registered map id, in declaration order.
func AllIDs() []MapID {
	return []MapID{ShionHouse, Wonderland}
}

// New constructs a fresh, independent map for id and transfers ownership to
// the caller. The caller must run Init before first use and Deinit before
// dropping the map. The registry is a closed mapping: adding a map means
// adding both the id and the case here, and an unknown id is a build-time
// inconsistency, so it aborts.
func New(id MapID) Map {
	switch id {
	case ShionHouse:
		return newShionHouse()
	case Wonderland:
		return newWonderland()
	default:
		panic(fmt.Sprintf("maps: unknown map id: %d", int(id)))
	}
}
