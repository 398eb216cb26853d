// Package mockdice provides test doubles for dice.Roller.
package mockdice

import (
	"fmt"
	"sync"

	"github.com/samdwyer/rubycrawl/internal/dice"
)

var _ dice.Roller = (*ScriptedRoller)(nil)

// ScriptedRoller implements dice.Roller for testing with predetermined totals.
// Each Roll call consumes one scripted value.
type ScriptedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewScriptedRoller creates a roller that returns rolls in order.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// SetNextRoll appends a roll result.
func (m *ScriptedRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the script and rewinds.
func (m *ScriptedRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Remaining returns the number of unconsumed rolls.
func (m *ScriptedRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Roll implements dice.Roller. It panics when the script is exhausted or the
// scripted total cannot come from count dice of the given sides, so a broken
// script fails the test at the offending call.
func (m *ScriptedRoller) Roll(count, sides int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		panic(fmt.Sprintf("mockdice: no scripted roll left for %dd%d (used %d)", count, sides, m.rollIndex))
	}

	roll := m.rolls[m.rollIndex]
	if roll < count || roll > count*sides {
		panic(fmt.Sprintf("mockdice: scripted roll %d impossible for %dd%d (index %d)", roll, count, sides, m.rollIndex))
	}

	m.rollIndex++
	return roll
}
