package game

import (
	"fmt"

	"github.com/samdwyer/rubycrawl/internal/combat"
	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/markup"
)

// Prompts and menu labels.
const (
	promptAttack  = "How do you wish to attack?"
	promptOpening = "You stand before the dungeon entrance. What will you do?"
	optionLeave   = "Leave the dungeon"
	optionStay    = "Stay and explore"
	optionLeaveIt = "Leave it be"
	msgStay       = "You decide to continue exploring the dungeon."
	msgEscape     = "You escape with your life, but without the treasure..."
	msgTrapped    = "You are trapped!"
	promptSpeed   = "Select a text speed"
)

// speedOptions labels config.Speeds in order.
var speedOptions = []string{
	markup.Wrap(markup.Red, "Slow"),
	markup.Wrap(markup.Green, "Normal"),
	markup.Wrap(markup.Cyan, "Fast"),
}

func speedMessage(choice int) string {
	return fmt.Sprintf("You selected option %d. Great choice!", choice+1)
}

func starterPrompt(remaining int) string {
	return fmt.Sprintf("You may choose from the following %d items:", remaining)
}

func treasurePrompt(treasure string) string {
	return fmt.Sprintf("The brilliant %s lies before you. What do you do?", treasure)
}

func takeOption(treasure string) string {
	return "Take the " + treasure
}

func pocketMessage(treasure string) string {
	return fmt.Sprintf("You carefully pocket the %s.", treasure)
}

func leaveTreasureMessage(treasure string) string {
	return fmt.Sprintf("You decide to leave the %s where it lies.", treasure)
}

func successMessage(treasure string) string {
	return fmt.Sprintf("You leave the dungeon with the %s in hand!", treasure)
}

func encounterMessage(m *entity.Monster) string {
	return fmt.Sprintf("A %s blocks your path. It appears %s (%d) and %s (%d)!",
		m.Label(),
		combat.DescribeMonsterHealth(m.Health), m.Health,
		combat.DescribeMonsterAttack(m.Attack), m.Attack)
}

// roundMessages narrates one combat round in the order it happened.
func roundMessages(player *entity.Player, m *entity.Monster, r combat.RoundResult) []string {
	var lines []string

	if r.Player.Hit {
		lines = append(lines, fmt.Sprintf("%s strikes with the %s scoring a %s (%d)!",
			player.Name, r.Player.Weapon, combat.DescribeHit(r.Player.Damage), r.Player.Damage))
	} else {
		lines = append(lines, fmt.Sprintf("%s misses the %s!", player.Name, m.Label()))
	}
	lines = append(lines, fmt.Sprintf("The %s is looking %s (%d).",
		m.Label(), combat.DescribeCondition(r.Player.Health, false), r.Player.Health))

	if r.Monster == nil {
		return lines
	}
	if r.Monster.Hit {
		lines = append(lines, fmt.Sprintf("The %s hits %s for %d damage!", m.Label(), player.Name, r.Monster.Damage))
	} else {
		lines = append(lines, fmt.Sprintf("The %s misses %s!", m.Label(), player.Name))
	}
	lines = append(lines, fmt.Sprintf("%s is looking %s (%d).",
		player.Name, combat.DescribeCondition(r.Monster.Health, true), r.Monster.Health))
	return lines
}

func victoryMessages(player *entity.Player, m *entity.Monster) []string {
	return []string{
		fmt.Sprintf("The %s is slain!", m.Label()),
		fmt.Sprintf("%s finished the encounter looking %s (%d).",
			player.Name, combat.DescribeCondition(player.Health(), true), player.Health()),
	}
}

func defeatMessages(player *entity.Player, m *entity.Monster) []string {
	return []string{
		fmt.Sprintf("%s is slain!", player.Name),
		fmt.Sprintf("The %s finished the encounter looking %s (%d). It laughs as %s falls!",
			m.Label(), combat.DescribeCondition(m.Health, false), m.Health, player.Name),
	}
}
