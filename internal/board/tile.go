// Package board provides the sparse 3D terrain model and the searches run
// over it: adjacency, shortest path, reachable area and mask projection.
package board

// Tile represents a terrain cell marker.
type Tile int

const (
	// TileEmpty is the implicit value of any position not in the terrain.
	TileEmpty Tile = -1
	// TileFilled marks a solid, standable tile.
	TileFilled Tile = 1
)

// IsFilled returns true if the tile can be stood on.
func (t Tile) IsFilled() bool {
	return t == TileFilled
}

// Tag classifies an overlay position for the current turn.
type Tag int

const (
	TagMovable    Tag = 0
	TagFriendly   Tag = 1
	TagEnemy      Tag = 2
	TagTargetable Tag = 3
	TagSelf       Tag = 4
)

// String returns a human-readable tag name.
func (t Tag) String() string {
	switch t {
	case TagMovable:
		return "movable"
	case TagFriendly:
		return "friendly"
	case TagEnemy:
		return "enemy"
	case TagTargetable:
		return "targetable"
	case TagSelf:
		return "self"
	default:
		return "unknown"
	}
}
