package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadRoster(t *testing.T) {
	roster, err := LoadRoster()
	if err != nil {
		t.Fatalf("Failed to load roster: %v", err)
	}

	if roster.Count() != 3 {
		t.Errorf("Expected 3 monsters, got %d", roster.Count())
	}

	byID := make(map[string]*MonsterDef)
	for i := 0; i < roster.Count(); i++ {
		def := roster.At(i)
		byID[def.ID] = def
	}
	for _, id := range []string{"dragon", "goblin", "rabbit"} {
		if byID[id] == nil {
			t.Errorf("Expected monster %q not found", id)
		}
	}

	goblin := byID["goblin"]
	if goblin == nil {
		t.Fatal("Goblin not in roster")
	}
	if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}
	if goblin.Label() != "[#55ff55]Goblin[-]" {
		t.Errorf("Unexpected goblin label %q", goblin.Label())
	}

	if roster.At(0) == nil || roster.At(roster.Count()-1) == nil {
		t.Error("At() should return every index in range")
	}
	if roster.At(-1) != nil || roster.At(roster.Count()) != nil {
		t.Error("At() should return nil out of range")
	}
}

func TestLoadItems(t *testing.T) {
	items, err := LoadItems()
	if err != nil {
		t.Fatalf("Failed to load items: %v", err)
	}

	if len(items.StarterItems) != 7 {
		t.Errorf("Expected 7 starter items, got %d", len(items.StarterItems))
	}
	if items.Treasure.Name != "Enchanted Ruby" {
		t.Errorf("Expected the Enchanted Ruby as treasure, got %q", items.Treasure.Name)
	}
	if items.FallbackWeapon.Name == "" {
		t.Error("Fallback weapon missing")
	}

	labels := items.StarterLabels()
	if len(labels) != len(items.StarterItems) {
		t.Fatalf("StarterLabels() returned %d labels", len(labels))
	}
	if labels[1] != "[#ff5555]Sword of Might[-]" {
		t.Errorf("Unexpected label %q", labels[1])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[MonstersFile]("missing.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if got, _ := ParseHexColor("#FF0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ParseHexColor(#FF0000) = %v, want pure red", got)
	}
	if got := ColorOr("nope", tcell.ColorWhite); got != tcell.ColorWhite {
		t.Errorf("ColorOr fallback = %v, want white", got)
	}
}
