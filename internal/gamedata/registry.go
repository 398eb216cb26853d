package gamedata

import (
	"errors"
)

// Roster holds the fixed list of monsters an encounter can draw from.
type Roster struct {
	monsters []MonsterDef
}

// NewRoster creates a roster from loaded monster definitions.
func NewRoster(monsters []MonsterDef) *Roster {
	return &Roster{monsters: monsters}
}

// LoadRoster loads and creates a roster from the embedded monsters.json.
func LoadRoster() (*Roster, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewRoster(monsters), nil
}

// At returns the i-th monster definition, or nil when i is out of range.
// Callers draw i uniformly in [0, Count()).
func (r *Roster) At(i int) *MonsterDef {
	if i < 0 || i >= len(r.monsters) {
		return nil
	}
	return &r.monsters[i]
}

// Count returns the number of monsters in the roster.
func (r *Roster) Count() int {
	return len(r.monsters)
}
