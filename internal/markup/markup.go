// Package markup handles inline colour tags in game text.
//
// A tag has the form [#rrggbb] and colours the text up to the next [-] tag or
// the next colour tag. Brackets that do not form a tag are kept as text.
package markup

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Palette used by game messages.
const (
	Red     = "#ff5555"
	Green   = "#55ff55"
	Yellow  = "#ffff55"
	Cyan    = "#55ffff"
	Magenta = "#ff55ff"
	Gray    = "#aaaaaa"
	Amber   = "#c8a000"
)

// Span is a run of text drawn in one colour. An empty Color means the
// presenter's default.
type Span struct {
	Text  string
	Color string
}

// Wrap colours text with the given hex colour.
func Wrap(color, text string) string {
	if color == "" || text == "" {
		return text
	}
	return "[" + color + "]" + text + "[-]"
}

// Parse splits s into coloured spans. Adjacent text with the same colour is
// merged and empty spans are dropped.
func Parse(s string) []Span {
	var spans []Span
	var current strings.Builder
	color := ""

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Color == color {
			spans[n-1].Text += current.String()
		} else {
			spans = append(spans, Span{Text: current.String(), Color: color})
		}
		current.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] == '[' {
			if end := strings.IndexByte(s[i:], ']'); end > 0 {
				tag := s[i+1 : i+end]
				if tag == "-" {
					flush()
					color = ""
					i += end + 1
					continue
				}
				if isHexColor(tag) {
					flush()
					color = strings.ToLower(tag)
					i += end + 1
					continue
				}
			}
		}
		current.WriteByte(s[i])
		i++
	}
	flush()

	return spans
}

// Strip removes all tags, returning the plain text.
func Strip(s string) string {
	var sb strings.Builder
	for _, span := range Parse(s) {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// Len returns the display width of s in terminal cells, ignoring tags. Wide
// glyphs count two cells and combining marks none.
func Len(s string) int {
	return uniseg.StringWidth(Strip(s))
}

func isHexColor(tag string) bool {
	if len(tag) != 7 || tag[0] != '#' {
		return false
	}
	for _, c := range tag[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
