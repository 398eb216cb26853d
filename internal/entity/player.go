// Package entity provides the player character and the monsters it fights.
package entity

// StartingHealth is the player's health at the start of a session.
const StartingHealth = 10

// Player is the adventurer exploring the dungeon.
type Player struct {
	Name   string
	Symbol rune // Display symbol on the map

	x, y        int
	health      int
	inventory   []string
	hasTreasure bool
}

// NewPlayer creates a player with full health and an empty inventory.
// The position is set once the dungeon places its opening.
func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Symbol: '@',
		health: StartingHealth,
	}
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.x, p.y
}

// MoveTo places the player on the given room. Callers validate the target.
func (p *Player) MoveTo(x, y int) {
	p.x, p.y = x, y
}

// Health returns the current health. It may be zero or negative after death.
func (p *Player) Health() int {
	return p.health
}

// IsAlive returns true while health is above zero.
func (p *Player) IsAlive() bool {
	return p.health > 0
}

// TakeDamage lowers health by amount with no floor. Non-positive amounts are ignored.
func (p *Player) TakeDamage(amount int) {
	if amount > 0 {
		p.health -= amount
	}
}

// AddItem appends an item label to the inventory.
func (p *Player) AddItem(label string) {
	p.inventory = append(p.inventory, label)
}

// Inventory returns a copy of the item labels in pickup order.
func (p *Player) Inventory() []string {
	items := make([]string, len(p.inventory))
	copy(items, p.inventory)
	return items
}

// TakeTreasure records that the player holds the treasure and pockets its label.
func (p *Player) TakeTreasure(label string) {
	p.hasTreasure = true
	p.AddItem(label)
}

// HasTreasure returns true once the treasure has been taken. It is never cleared.
func (p *Player) HasTreasure() bool {
	return p.hasTreasure
}
