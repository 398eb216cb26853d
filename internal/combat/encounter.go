// Package combat resolves fights between the player and a single monster.
package combat

import (
	"errors"

	"github.com/samdwyer/rubycrawl/internal/entity"
)

// ErrWrongPhase is returned when an encounter is stepped in a phase that does
// not allow the requested action.
var ErrWrongPhase = errors.New("combat: wrong encounter phase")

// Phase represents the current phase of an encounter.
type Phase int

const (
	// PhaseStart - the monster has been spawned, nobody has acted yet
	PhaseStart Phase = iota
	// PhasePlayerTurn - waiting for the player to pick an attack mode
	PhasePlayerTurn
	// PhaseMonsterTurn - the monster survived and strikes back
	PhaseMonsterTurn
	// PhaseWon - the monster is dead
	PhaseWon
	// PhaseLost - the player is dead
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseMonsterTurn:
		return "monster_turn"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver returns true for the two terminal phases.
func (p Phase) IsOver() bool {
	return p == PhaseWon || p == PhaseLost
}

// Mode is the attack style the player picks each round.
type Mode int

const (
	// Calculated rolls 2d4: steady damage.
	Calculated Mode = iota
	// Frenzy rolls 1d12: wilder damage.
	Frenzy
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Calculated:
		return "calculated"
	case Frenzy:
		return "frenzy"
	default:
		return "unknown"
	}
}

// Modes lists the attack modes in menu order.
var Modes = []Mode{Calculated, Frenzy}

// Encounter holds the state of one fight. It lives only while the fight runs.
type Encounter struct {
	Monster *entity.Monster
	Phase   Phase
	Rounds  int // Player turns taken
}

// NewEncounter creates an encounter against monster in PhaseStart.
func NewEncounter(monster *entity.Monster) *Encounter {
	return &Encounter{
		Monster: monster,
		Phase:   PhaseStart,
	}
}

// Begin moves a freshly spawned encounter to the player's turn.
func (e *Encounter) Begin() error {
	if e.Phase != PhaseStart {
		return ErrWrongPhase
	}
	e.Phase = PhasePlayerTurn
	return nil
}

// Strike is the outcome of one attack.
type Strike struct {
	Hit    bool
	Damage int    // Zero on a miss
	Weapon string // Player strikes only
	Health int    // Defender's health after the strike
}

// RoundResult describes one player turn and, if the monster survived it, the
// monster's reply.
type RoundResult struct {
	Mode    Mode
	Player  Strike
	Monster *Strike // Nil when the monster died before acting
	Phase   Phase   // Phase after the round
}
