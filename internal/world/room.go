package world

// Room is a single cell of the dungeon grid.
// Rooms handed out by the Dungeon are snapshots; flags change only through
// Dungeon methods.
type Room struct {
	X, Y int

	wall       bool
	discovered bool
	monster    bool
	treasure   bool
	opening    bool
}

func newRoom(x, y int) Room {
	return Room{X: x, Y: y, wall: true}
}

// IsWall returns true if the room was never carved.
func (r Room) IsWall() bool { return r.wall }

// IsDiscovered returns true once the room has been revealed to the player.
func (r Room) IsDiscovered() bool { return r.discovered }

// HasMonster returns true if a monster waits in the room.
func (r Room) HasMonster() bool { return r.monster }

// HasTreasure returns true if the treasure lies in the room.
func (r Room) HasTreasure() bool { return r.treasure }

// IsOpening returns true for the entrance/exit room.
func (r Room) IsOpening() bool { return r.opening }

// HasFeature returns true if the room carries any feature flag.
func (r Room) HasFeature() bool {
	return r.monster || r.treasure || r.opening
}

// Tile returns the glyph for the room's current state.
func (r Room) Tile() Tile {
	switch {
	case r.wall:
		return TileWall
	case r.opening:
		return TileOpening
	case r.treasure:
		return TileTreasure
	case r.monster:
		return TileMonster
	default:
		return TileFloor
	}
}
