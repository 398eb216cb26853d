package ui

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// menu tracks the cursor of an option menu.
type menu struct {
	count    int
	disabled []int
	selected int
}

// newMenu places the cursor on the first enabled option.
func newMenu(count int, disabled []int) *menu {
	m := &menu{count: count, disabled: disabled}
	for i := 0; i < count; i++ {
		if !m.isDisabled(i) {
			m.selected = i
			break
		}
	}
	return m
}

func (m *menu) isDisabled(i int) bool {
	return slices.Contains(m.disabled, i)
}

// handleKey applies one key press and reports whether the selection was
// confirmed. Left and Right move the cursor, digits 1-9 jump to an option and
// Enter confirms unless the option is disabled.
func (m *menu) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyLeft:
		if m.selected > 0 {
			m.selected--
		}
	case tcell.KeyRight:
		if m.selected < m.count-1 {
			m.selected++
		}
	case tcell.KeyEnter:
		return !m.isDisabled(m.selected)
	case tcell.KeyRune:
		if r >= '1' && r <= '9' {
			if idx := int(r - '1'); idx < m.count {
				m.selected = idx
			}
		}
	}
	return false
}
