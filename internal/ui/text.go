package ui

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/samdwyer/rubycrawl/internal/markup"
)

// word is a run of non-space characters. It may change colour midway, as in
// "[#ff5555]Ruby[-]!".
type word []markup.Span

// width returns the number of terminal cells the word covers.
func (w word) width() int {
	return uniseg.StringWidth(w.String())
}

func (w word) String() string {
	var sb strings.Builder
	for _, s := range w {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// splitLines breaks marked-up text into lines of words. Explicit newlines
// start a new line; other whitespace separates words.
func splitLines(text string) [][]word {
	var (
		lines [][]word
		line  []word
		cur   word
	)
	flushWord := func() {
		if len(cur) > 0 {
			line = append(line, cur)
			cur = nil
		}
	}
	flushLine := func() {
		flushWord()
		lines = append(lines, line)
		line = nil
	}

	for _, span := range markup.Parse(text) {
		var sb strings.Builder
		flushText := func() {
			if sb.Len() > 0 {
				cur = append(cur, markup.Span{Text: sb.String(), Color: span.Color})
				sb.Reset()
			}
		}
		for _, r := range span.Text {
			switch {
			case r == '\n':
				flushText()
				flushLine()
			case unicode.IsSpace(r):
				flushText()
				flushWord()
			default:
				sb.WriteRune(r)
			}
		}
		flushText()
	}
	flushLine()
	return lines
}

// layoutWords wraps text into rows no wider than width. A single word wider
// than width gets a row of its own.
func layoutWords(text string, width int) [][]word {
	var rows [][]word
	for _, line := range splitLines(text) {
		var row []word
		col := 0
		for _, w := range line {
			ww := w.width()
			if len(row) > 0 && col+1+ww > width {
				rows = append(rows, row)
				row, col = nil, 0
			}
			if len(row) > 0 {
				col++
			}
			row = append(row, w)
			col += ww
		}
		rows = append(rows, row)
	}
	return rows
}
