// Package world provides maze generation, feature placement and movement rules
// for the dungeon grid.
package world

// Tile represents the glyph a room is drawn with in ASCII layouts.
type Tile rune

const (
	// TileWall represents an uncarved wall.
	TileWall Tile = '#'
	// TileFloor represents a carved room without features.
	TileFloor Tile = '.'
	// TileOpening represents the dungeon entrance and exit.
	TileOpening Tile = 'O'
	// TileTreasure represents the room holding the treasure.
	TileTreasure Tile = 'T'
	// TileMonster represents a room guarded by a monster.
	TileMonster Tile = 'M'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t {
	case TileFloor, TileOpening, TileTreasure, TileMonster:
		return true
	default:
		return false
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
