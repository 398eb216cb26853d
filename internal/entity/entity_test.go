package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/rubycrawl/internal/gamedata"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Isolde")

	assert.Equal(t, StartingHealth, p.Health())
	assert.True(t, p.IsAlive())
	assert.False(t, p.HasTreasure())
	assert.Empty(t, p.Inventory())
}

func TestPlayerDamageHasNoFloor(t *testing.T) {
	p := NewPlayer("Isolde")

	p.TakeDamage(4)
	assert.Equal(t, 6, p.Health())

	p.TakeDamage(0)
	p.TakeDamage(-3)
	assert.Equal(t, 6, p.Health(), "non-positive damage never heals")

	p.TakeDamage(9)
	assert.Equal(t, -3, p.Health())
	assert.False(t, p.IsAlive())
}

func TestPlayerInventory(t *testing.T) {
	p := NewPlayer("Isolde")
	p.AddItem("Old Boot")
	p.TakeTreasure("Enchanted Ruby")

	assert.True(t, p.HasTreasure())
	assert.Equal(t, []string{"Old Boot", "Enchanted Ruby"}, p.Inventory())

	items := p.Inventory()
	items[0] = "tampered"
	assert.Equal(t, "Old Boot", p.Inventory()[0], "Inventory returns a copy")
}

func TestPlayerMoveTo(t *testing.T) {
	p := NewPlayer("Isolde")
	p.MoveTo(3, 7)

	x, y := p.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)
}

func TestMonster(t *testing.T) {
	def := &gamedata.MonsterDef{ID: "goblin", Name: "Goblin", Color: "#55ff55"}
	m := NewMonster(def, 6, 4)

	assert.Equal(t, "Goblin", m.Name)
	assert.Equal(t, "[#55ff55]Goblin[-]", m.Label())
	assert.True(t, m.IsAlive())

	m.TakeDamage(5)
	assert.Equal(t, 1, m.Health)
	m.TakeDamage(5)
	assert.Equal(t, -4, m.Health)
	assert.False(t, m.IsAlive())

	bare := &Monster{Name: "Shade"}
	assert.Equal(t, "Shade", bare.Label())
}
