package entity

import (
	"github.com/samdwyer/rubycrawl/internal/gamedata"
)

// Monster is the opponent of a single encounter. It exists only for the
// duration of the fight and is never stored on a room.
type Monster struct {
	Def    *gamedata.MonsterDef // Identity drawn from the roster (nil in tests)
	Name   string
	Health int
	Attack int // Fixed for the whole encounter
}

// NewMonster creates a monster from a roster definition with rolled stats.
func NewMonster(def *gamedata.MonsterDef, health, attack int) *Monster {
	return &Monster{
		Def:    def,
		Name:   def.Name,
		Health: health,
		Attack: attack,
	}
}

// IsAlive returns true while health is above zero.
func (m *Monster) IsAlive() bool {
	return m.Health > 0
}

// TakeDamage lowers health by amount. Health may drop below zero.
func (m *Monster) TakeDamage(amount int) {
	if amount > 0 {
		m.Health -= amount
	}
}

// Label returns the coloured name for messages.
func (m *Monster) Label() string {
	if m.Def != nil {
		return m.Def.Label()
	}
	return m.Name
}
