package world

// carveFrame is one level of the backtracking walk: a cell plus the
// directions still to be tried from it.
type carveFrame struct {
	x, y int
	dirs []Direction
	next int
}

// carve picks a random start cell and carves the maze from it.
func (d *Dungeon) carve() {
	d.carveFrom(d.rng.Intn(Size), d.rng.Intn(Size))
}

// carveFrom runs the randomized backtracker from (sx, sy) using an explicit
// stack. Each visited cell shuffles the four directions once; for each
// direction whose cell two steps away is still a wall, the wall in between is
// opened and the walk continues from the far cell.
func (d *Dungeon) carveFrom(sx, sy int) {
	d.startX, d.startY = sx, sy
	d.open(sx, sy)

	stack := []carveFrame{d.newCarveFrame(sx, sy)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := top.dirs[top.next]
		top.next++

		dx, dy := dir.Delta()
		nx, ny := top.x+dx*2, top.y+dy*2
		if !InBounds(nx, ny) || !d.rooms[nx][ny].wall {
			continue
		}

		d.open(top.x+dx, top.y+dy)
		d.open(nx, ny)
		stack = append(stack, d.newCarveFrame(nx, ny))
	}
}

func (d *Dungeon) newCarveFrame(x, y int) carveFrame {
	dirs := AllDirections()
	d.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	return carveFrame{x: x, y: y, dirs: dirs}
}
