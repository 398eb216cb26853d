package world

// neighbourhood holds the offsets of the 8 rooms surrounding a cell.
var neighbourhood = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// DiscoverAdjacentRooms reveals every in-bounds room in the 8-neighbourhood of
// (x, y). Called once per turn for the player's position.
func (d *Dungeon) DiscoverAdjacentRooms(x, y int) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	d.discoverAround(x, y)
	return nil
}

func (d *Dungeon) discoverAround(x, y int) {
	for _, offset := range neighbourhood {
		nx, ny := x+offset[0], y+offset[1]
		if InBounds(nx, ny) {
			d.rooms[nx][ny].discovered = true
		}
	}
}

// CanMove returns true if one step from (x, y) in dir lands on a carved room.
func (d *Dungeon) CanMove(x, y int, dir Direction) bool {
	if !dir.IsValid() {
		return false
	}
	dx, dy := dir.Delta()
	return d.IsPassable(x+dx, y+dy)
}

// ValidMoves returns the enabled directions from (x, y) in menu order.
// An empty result means the position is a dead end with no way out.
func (d *Dungeon) ValidMoves(x, y int) []Direction {
	moves := make([]Direction, 0, 4)
	for _, dir := range AllDirections() {
		if d.CanMove(x, y, dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Step returns the position reached from (x, y) in dir, or ok=false when the
// target is a wall or off the grid.
func (d *Dungeon) Step(x, y int, dir Direction) (nx, ny int, ok bool) {
	if !d.CanMove(x, y, dir) {
		return x, y, false
	}
	dx, dy := dir.Delta()
	return x + dx, y + dy, true
}
