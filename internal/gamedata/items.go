package gamedata

import (
	"errors"

	"github.com/samdwyer/rubycrawl/internal/markup"
)

// ItemDef defines an inventory item loaded from JSON.
type ItemDef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Label returns the display name wrapped in its colour tag. Labels are what
// the player's inventory stores.
func (i ItemDef) Label() string {
	return markup.Wrap(i.Color, i.Name)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	StarterItems   []ItemDef `json:"starterItems"`
	Treasure       ItemDef   `json:"treasure"`
	FallbackWeapon ItemDef   `json:"fallbackWeapon"`
}

// LoadItems loads the starter items, the treasure and the fallback weapon from
// the embedded items.json file.
func LoadItems() (*ItemsFile, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	if len(file.StarterItems) == 0 {
		return nil, errors.New("no starter items in items.json")
	}
	if file.Treasure.Name == "" {
		return nil, errors.New("no treasure in items.json")
	}
	return &file, nil
}

// StarterLabels returns the labels of all starter items in file order.
func (f *ItemsFile) StarterLabels() []string {
	labels := make([]string, len(f.StarterItems))
	for i, item := range f.StarterItems {
		labels[i] = item.Label()
	}
	return labels
}
