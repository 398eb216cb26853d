package world

// placeFeatures picks the opening, the treasure room and up to NumMonsters
// monster rooms among the carved rooms. The three sets never overlap.
// When too few rooms remain, fewer monsters (or no treasure) are placed.
func (d *Dungeon) placeFeatures() error {
	candidates := d.OpenRooms()
	if len(candidates) == 0 {
		return ErrNoOpenRooms
	}

	// Opening
	idx := d.rng.Intn(len(candidates))
	opening := candidates[idx]
	d.rooms[opening.X][opening.Y].opening = true
	d.rooms[opening.X][opening.Y].discovered = true
	d.openingX, d.openingY = opening.X, opening.Y
	d.discoverAround(opening.X, opening.Y)
	candidates = removeAt(candidates, idx)

	// Treasure
	if len(candidates) == 0 {
		return nil
	}
	idx = d.rng.Intn(len(candidates))
	treasure := candidates[idx]
	d.rooms[treasure.X][treasure.Y].treasure = true
	candidates = removeAt(candidates, idx)

	// Monsters, sampled without replacement
	for i := 0; i < NumMonsters && len(candidates) > 0; i++ {
		idx = d.rng.Intn(len(candidates))
		monster := candidates[idx]
		d.rooms[monster.X][monster.Y].monster = true
		d.monsters++
		candidates = removeAt(candidates, idx)
	}

	return nil
}

// removeAt removes the element at i, keeping order.
func removeAt(rooms []Room, i int) []Room {
	return append(rooms[:i], rooms[i+1:]...)
}
