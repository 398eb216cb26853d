// Package dice provides the random draws used by combat.
package dice

import "math/rand"

// Roller rolls dice. Combat depends on this interface so tests can inject
// fixed results.
type Roller interface {
	// Roll rolls count dice with the given number of sides and returns the sum.
	Roll(count, sides int) int
}

// randomRoller implements Roller on top of a shared random source.
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller drawing from rng. The source is not safe for
// concurrent use.
func NewRandomRoller(rng *rand.Rand) Roller {
	return &randomRoller{rng: rng}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides int) int {
	if count < 1 || sides < 1 {
		return 0
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.rng.Intn(sides) + 1
	}
	return total
}

// Check rolls a d100 and reports whether it lands at or under percent.
func Check(r Roller, percent int) bool {
	return r.Roll(1, 100) <= percent
}

// Between draws uniformly from the inclusive range [lo, hi] with a single die.
func Between(r Roller, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Roll(1, hi-lo+1) - 1
}
