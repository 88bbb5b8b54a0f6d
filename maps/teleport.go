package maps

import "wondermap/common"

// TeleportType selects which axis of the traveller's position is carried
// across a transition.
type TeleportType int

const (
	StaticTransition TeleportType = iota
	HorizontalTransition
	VerticalTransition
)

// Teleport is a pending map transition. It is built transiently by a map's
// out-of-bounds check or by item interaction logic and consumed immediately
// by the game loop; it owns nothing and is safe to copy.
type Teleport struct {
	ttype      TeleportType
	mapID      MapID
	spawnIndex int

	// The delta is the x position of the source spawn for vertical
	// transitions, the y position of the source spawn for horizontal
	// transitions, and is irrelevant for static transitions. It is used to
	// compute the difference of position between the source and destination
	// of teleportations, so e.g. jump height is preserved.
	positionDelta common.Fixed
}

// NewTeleport builds a static teleport that drops the traveller exactly on
// the destination spawn.
func NewTeleport(mapID MapID, spawnIndex int) Teleport {
	return Teleport{ttype: StaticTransition, mapID: mapID, spawnIndex: spawnIndex}
}

// Horizontal builds a teleport that preserves the traveller's vertical offset
// relative to the source spawn.
func Horizontal(destinationMapID MapID, destinationSpawnIndex int, sourceSpawnPosition common.Point) Teleport {
	return Teleport{
		ttype:         HorizontalTransition,
		mapID:         destinationMapID,
		spawnIndex:    destinationSpawnIndex,
		positionDelta: sourceSpawnPosition.Y,
	}
}

// Vertical builds a teleport that preserves the traveller's horizontal offset
// relative to the source spawn.
func Vertical(destinationMapID MapID, destinationSpawnIndex int, sourceSpawnPosition common.Point) Teleport {
	return Teleport{
		ttype:         VerticalTransition,
		mapID:         destinationMapID,
		spawnIndex:    destinationSpawnIndex,
		positionDelta: sourceSpawnPosition.X,
	}
}

func (t Teleport) Type() TeleportType {
	return t.ttype
}

func (t Teleport) MapID() MapID {
	return t.mapID
}

func (t Teleport) SpawnIndex() int {
	return t.spawnIndex
}

func (t Teleport) PositionDelta() common.Fixed {
	return t.positionDelta
}

// Arrival computes where the traveller lands in the destination map: the
// destination spawn, offset on one axis by how far the traveller was from the
// source spawn when the teleport fired.
func Arrival(t Teleport, destination Map, position common.Point) common.Point {
	spawn := destination.Spawn(t.SpawnIndex())
	switch t.Type() {
	case HorizontalTransition:
		spawn.Y += position.Y - t.PositionDelta()
	case VerticalTransition:
		spawn.X += position.X - t.PositionDelta()
	}
	return spawn
}
