// Package game provides the session loop and turn sequencing.
package game

// State represents the current game state.
type State int

const (
	// StateExposition is the introduction, where starter items are picked.
	StateExposition State = iota
	// StateDungeon is the turn loop inside the maze.
	StateDungeon
	// StateSuccess means the player left with the treasure.
	StateSuccess
	// StateSlain means the player died in a fight or got trapped.
	StateSlain
	// StateEscape means the player left without the treasure.
	StateEscape
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExposition:
		return "exposition"
	case StateDungeon:
		return "dungeon"
	case StateSuccess:
		return "success"
	case StateSlain:
		return "slain"
	case StateEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for the three endings.
func (s State) IsTerminal() bool {
	return s == StateSuccess || s == StateSlain || s == StateEscape
}
