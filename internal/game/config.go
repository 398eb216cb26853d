package game

import (
	"github.com/samdwyer/rubycrawl/internal/dice"
	"github.com/samdwyer/rubycrawl/internal/gamedata"
	"github.com/samdwyer/rubycrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	PlayerName string

	// StarterItemPicks is how many starter items are chosen during the exposition.
	StarterItemPicks int

	// AskTextSpeed offers a Slow/Normal/Fast menu before the introduction.
	AskTextSpeed bool

	// SessionID tags logs and traces. Generated when empty.
	SessionID string

	// Roller replaces the seeded dice. Tests inject scripted rolls here.
	Roller dice.Roller

	// Dungeon replaces the generated maze, e.g. one built with world.ParseLayout.
	Dungeon *world.Dungeon

	// Roster and Items replace the embedded game data.
	Roster *gamedata.Roster
	Items  *gamedata.ItemsFile
}

// DefaultConfig returns the standard session settings with a random seed.
func DefaultConfig() Config {
	return Config{
		PlayerName:       "Isolde",
		StarterItemPicks: 3,
	}
}
