package gamedata

import (
	"github.com/samdwyer/rubycrawl/internal/markup"
)

// MonsterDef defines a monster identity loaded from JSON. Combat stats are
// rolled per encounter and are not part of the definition.
type MonsterDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "goblin")
	Name  string `json:"name"`  // Display name (e.g., "Goblin")
	Color string `json:"color"` // Hex color code (e.g., "#00FF00")
}

// Label returns the display name wrapped in its colour tag.
func (m *MonsterDef) Label() string {
	return markup.Wrap(m.Color, m.Name)
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
