package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rubycrawl/internal/logger"
	"github.com/samdwyer/rubycrawl/internal/telemetry"
)

const (
	// Size is the width and height of the dungeon grid.
	Size = 10

	// NumMonsters is the number of monster rooms placed when space allows.
	NumMonsters = 3
)

var (
	// ErrOutOfBounds is returned when a position outside the grid is requested.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrNoOpenRooms is returned when features are placed on a grid with no carved room.
	ErrNoOpenRooms = errors.New("no open rooms")
)

// Dungeon owns the room grid. All flag changes after generation go through its
// methods.
type Dungeon struct {
	rooms [Size][Size]Room
	rng   *rand.Rand

	startX, startY     int
	openingX, openingY int
	monsters           int
}

// NewDungeon creates a dungeon filled with walls.
// The random source is shared with the rest of the session and must not be
// used concurrently.
func NewDungeon(rng *rand.Rand) *Dungeon {
	d := &Dungeon{
		rng:      rng,
		startX:   -1,
		startY:   -1,
		openingX: -1,
		openingY: -1,
	}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			d.rooms[x][y] = newRoom(x, y)
		}
	}
	return d
}

// Generate carves the maze and places the opening, treasure and monsters.
func (d *Dungeon) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.carve()
	if err := d.placeFeatures(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("place features: %w", err)
	}

	open := len(d.OpenRooms())
	span.SetAttributes(
		attribute.Int("dungeon.start_x", d.startX),
		attribute.Int("dungeon.start_y", d.startY),
		attribute.Int("dungeon.open_rooms", open),
		attribute.Int("dungeon.monsters", d.monsters),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	logger.Debug("Dungeon generated",
		"start_x", d.startX, "start_y", d.startY,
		"open_rooms", open, "monsters", d.monsters)

	return nil
}

// InBounds returns true if the position lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

func outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
}

// Room returns a snapshot of the room at the given position.
func (d *Dungeon) Room(x, y int) (Room, error) {
	if !InBounds(x, y) {
		return Room{}, outOfBounds(x, y)
	}
	return d.rooms[x][y], nil
}

// IsPassable returns true if the position is on the grid and carved.
func (d *Dungeon) IsPassable(x, y int) bool {
	return InBounds(x, y) && !d.rooms[x][y].wall
}

// Start returns the cell the carving began from, or (-1, -1) before carving.
func (d *Dungeon) Start() (int, int) {
	return d.startX, d.startY
}

// Opening returns the position of the opening, or (-1, -1) before placement.
func (d *Dungeon) Opening() (int, int) {
	return d.openingX, d.openingY
}

// MonsterCount returns the number of rooms still guarded by a monster.
func (d *Dungeon) MonsterCount() int {
	return d.monsters
}

// OpenRooms returns snapshots of all carved rooms in column-major order.
func (d *Dungeon) OpenRooms() []Room {
	rooms := make([]Room, 0, Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if !d.rooms[x][y].wall {
				rooms = append(rooms, d.rooms[x][y])
			}
		}
	}
	return rooms
}

// SetDiscovered reveals a single room. Discovery is never undone.
func (d *Dungeon) SetDiscovered(x, y int) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	d.rooms[x][y].discovered = true
	return nil
}

// ClearTreasure removes the treasure flag after the player picks it up.
func (d *Dungeon) ClearTreasure(x, y int) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	d.rooms[x][y].treasure = false
	return nil
}

// ClearMonster removes the monster flag after the monster is slain.
func (d *Dungeon) ClearMonster(x, y int) error {
	if !InBounds(x, y) {
		return outOfBounds(x, y)
	}
	if d.rooms[x][y].monster {
		d.rooms[x][y].monster = false
		d.monsters--
	}
	return nil
}

// open carves a single cell.
func (d *Dungeon) open(x, y int) {
	d.rooms[x][y].wall = false
}
