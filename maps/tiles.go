package maps

// Tile is the semantic kind of one collision cell.
type Tile uint8

const (
	// TileVoid is empty space.
	TileVoid Tile = iota
	// TilePlain is solid from every side.
	TilePlain
	// TilePlatform is solid from above only.
	TilePlatform
)
