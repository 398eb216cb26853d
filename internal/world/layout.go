package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned when an ASCII layout cannot be turned into a dungeon.
var ErrInvalidLayout = errors.New("invalid layout")

// ParseLayout builds a dungeon from Size rows of Size glyphs each, using the
// Tile characters. Exactly one opening is required and at most one treasure is
// allowed, and every open room must be reachable from the opening. The opening
// and its neighbours start discovered, as after Generate.
// The returned dungeon has no random source and must not be regenerated.
func ParseLayout(rows []string) (*Dungeon, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidLayout, Size, len(rows))
	}

	d := NewDungeon(nil)
	treasures := 0
	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != Size {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, y, len(glyphs), Size)
		}
		for x, glyph := range glyphs {
			tile := Tile(glyph)
			if tile == TileWall {
				continue
			}
			if !tile.IsPassable() {
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrInvalidLayout, glyph, x, y)
			}

			room := &d.rooms[x][y]
			room.wall = false
			switch tile {
			case TileOpening:
				if d.openingX >= 0 {
					return nil, fmt.Errorf("%w: more than one opening", ErrInvalidLayout)
				}
				room.opening = true
				d.openingX, d.openingY = x, y
			case TileTreasure:
				treasures++
				room.treasure = true
			case TileMonster:
				room.monster = true
				d.monsters++
			}
		}
	}

	if d.openingX < 0 {
		return nil, fmt.Errorf("%w: no opening", ErrInvalidLayout)
	}
	if treasures > 1 {
		return nil, fmt.Errorf("%w: %d treasures", ErrInvalidLayout, treasures)
	}

	if x, y, ok := d.unreachableRoom(d.openingX, d.openingY); ok {
		kind := "room"
		if d.rooms[x][y].HasFeature() {
			kind = "feature room"
		}
		return nil, fmt.Errorf("%w: %s (%d, %d) unreachable from opening", ErrInvalidLayout, kind, x, y)
	}

	d.startX, d.startY = d.openingX, d.openingY
	d.rooms[d.openingX][d.openingY].discovered = true
	d.discoverAround(d.openingX, d.openingY)
	return d, nil
}

// unreachableRoom returns the first open room, in row order, that cannot be
// walked to from (sx, sy).
func (d *Dungeon) unreachableRoom(sx, sy int) (x, y int, ok bool) {
	var seen [Size][Size]bool
	seen[sx][sy] = true
	queue := [][2]int{{sx, sy}}
	for len(queue) > 0 {
		cx, cy := queue[0][0], queue[0][1]
		queue = queue[1:]
		for _, dir := range AllDirections() {
			nx, ny, moved := d.Step(cx, cy, dir)
			if moved && !seen[nx][ny] {
				seen[nx][ny] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !d.rooms[x][y].wall && !seen[x][y] {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// String renders the full grid, one row per line, ignoring discovery.
func (d *Dungeon) String() string {
	var sb strings.Builder
	sb.Grow(Size * (Size + 1))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteRune(d.rooms[x][y].Tile().Rune())
		}
		if y < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
