package combat

import "github.com/samdwyer/rubycrawl/internal/markup"

// DescribeMonsterHealth sizes up a freshly spawned monster.
func DescribeMonsterHealth(health int) string {
	switch {
	case health > 12:
		return markup.Wrap(markup.Red, "bulky")
	case health >= 8:
		return markup.Wrap(markup.Yellow, "athletic")
	default:
		return markup.Wrap(markup.Green, "scrawny")
	}
}

// DescribeMonsterAttack describes how dangerous a monster looks.
func DescribeMonsterAttack(attack int) string {
	switch {
	case attack >= 5:
		return markup.Wrap(markup.Red, "aggressive")
	case attack >= 3:
		return markup.Wrap(markup.Yellow, "lively")
	default:
		return markup.Wrap(markup.Green, "weak")
	}
}

// DescribeCondition describes a combatant's remaining health. Colours are
// from the player's point of view: good news is green.
func DescribeCondition(health int, isPlayer bool) string {
	good, bad := markup.Green, markup.Red
	if !isPlayer {
		good, bad = bad, good
	}
	switch {
	case health >= 8:
		return markup.Wrap(good, "strong")
	case health >= 5:
		return markup.Wrap(markup.Red, "weak")
	default:
		return markup.Wrap(bad, "badly hurt")
	}
}

// DescribeHit grades a player hit by its damage.
func DescribeHit(damage int) string {
	switch {
	case damage > 10:
		return markup.Wrap(markup.Cyan, "legendary hit")
	case damage > 7:
		return markup.Wrap(markup.Green, "crushing blow")
	case damage > 4:
		return markup.Wrap(markup.Yellow, "solid strike")
	default:
		return markup.Wrap(markup.Red, "glancing hit")
	}
}

// ModeLabel returns the menu label of an attack mode.
func ModeLabel(m Mode) string {
	if m == Frenzy {
		return markup.Wrap(markup.Green, "Wild Frenzy")
	}
	return markup.Wrap(markup.Red, "Calculated Attack")
}

// ModeLabels returns the labels of Modes in order.
func ModeLabels() []string {
	labels := make([]string, len(Modes))
	for i, m := range Modes {
		labels[i] = ModeLabel(m)
	}
	return labels
}
