package plain

import (
	"strings"
	"unicode"

	"github.com/samdwyer/rubycrawl/internal/markup"
)

// splitWords breaks one line of marked-up text on whitespace. Each word keeps
// its own colour tags, so "[#ff5555]Enchanted Ruby[-]!" yields
// "[#ff5555]Enchanted[-]" and "[#ff5555]Ruby[-]!".
func splitWords(line string) []string {
	var (
		words []string
		cur   strings.Builder
	)
	flushWord := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, span := range markup.Parse(line) {
		var piece strings.Builder
		flushPiece := func() {
			if piece.Len() > 0 {
				cur.WriteString(markup.Wrap(span.Color, piece.String()))
				piece.Reset()
			}
		}
		for _, r := range span.Text {
			if unicode.IsSpace(r) {
				flushPiece()
				flushWord()
				continue
			}
			piece.WriteRune(r)
		}
		flushPiece()
	}
	flushWord()
	return words
}
