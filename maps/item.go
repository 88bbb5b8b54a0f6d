package maps

import "wondermap/common"

// Item is a positioned point of interest placed on a map layer. Items are
// authored in the map data, created when the map is constructed, and
// read-only afterwards.
type Item struct {
	Position common.Point
	ID       int
}
