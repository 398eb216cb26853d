// Package plain provides a line-mode presenter for terminals where a
// full-screen interface is unwanted. Output is coloured with gookit/color and
// keys are read in raw mode.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/game"
	"github.com/samdwyer/rubycrawl/internal/markup"
	"github.com/samdwyer/rubycrawl/internal/world"
)

const (
	clearScreen = "\033[H\033[2J"
	clearLine   = "\r\033[2K"
	newline     = "\r\n"

	defaultWidth = 80
)

var (
	styleWall     = color.Style{color.FgDarkGray}
	styleFloor    = color.Style{color.FgGray}
	styleOpening  = color.Style{color.FgCyan, color.OpBold}
	styleTreasure = color.Style{color.FgRed, color.OpBold}
	styleMonster  = color.Style{color.FgMagenta, color.OpBold}
	stylePlayer   = color.Style{color.FgYellow, color.OpBold}
	styleSubtle   = color.Style{color.FgGray}
	styleDisabled = color.Style{color.FgDarkGray}
	styleSelected = color.Style{color.OpBold, color.OpUnderscore}
)

var _ game.Presenter = (*Presenter)(nil)

// Presenter implements game.Presenter by writing ANSI text to out and
// decoding key presses from in.
type Presenter struct {
	out       io.Writer
	keys      chan key
	wordDelay time.Duration
	width     int
}

// NewPresenter creates a presenter. Keys are read from in on a background
// goroutine until it returns an error.
func NewPresenter(in io.Reader, out io.Writer, wordDelay time.Duration) *Presenter {
	p := &Presenter{
		out:       out,
		keys:      make(chan key, 16),
		wordDelay: wordDelay,
		width:     defaultWidth,
	}
	go p.readKeys(bufio.NewReader(in))
	return p
}

// SetWidth sets the column at which text wraps.
func (p *Presenter) SetWidth(width int) {
	if width > 20 {
		p.width = width
	}
}

func (p *Presenter) readKeys(r *bufio.Reader) {
	defer close(p.keys)
	for {
		k, err := readKey(r)
		if err != nil {
			return
		}
		p.keys <- k
	}
}

// waitKey returns the next key, a zero key with ok=false when timeout fires,
// or game.ErrQuit for Esc, Ctrl-C and closed input.
func (p *Presenter) waitKey(ctx context.Context, timeout <-chan time.Time) (key, bool, error) {
	select {
	case <-ctx.Done():
		return key{}, false, ctx.Err()
	case <-timeout:
		return key{}, false, nil
	case k, ok := <-p.keys:
		if !ok || k.kind == keyEscape || k.kind == keyCtrlC {
			return key{}, false, game.ErrQuit
		}
		return k, true, nil
	}
}

// SetWordDelay implements game.Presenter.
func (p *Presenter) SetWordDelay(d time.Duration) {
	p.wordDelay = d
}

// ShowMap implements game.Presenter.
func (p *Presenter) ShowMap(d *world.Dungeon, pl *entity.Player) {
	var sb strings.Builder
	sb.WriteString(clearScreen)

	px, py := pl.Position()
	for y := 0; y < world.Size; y++ {
		sb.WriteString("  ")
		for x := 0; x < world.Size; x++ {
			if x == px && y == py {
				sb.WriteString(stylePlayer.Sprint(string(pl.Symbol)))
			} else {
				room, err := d.Room(x, y)
				if err != nil {
					continue
				}
				sb.WriteString(roomGlyph(room))
			}
			sb.WriteByte(' ')
		}
		sb.WriteString(newline)
	}

	sb.WriteString(newline + "  " + pl.Name + "  Health " + fmt.Sprint(pl.Health()))
	if items := pl.Inventory(); len(items) > 0 {
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = render(item)
		}
		sb.WriteString("  Items " + strings.Join(labels, ", "))
	}
	sb.WriteString(newline + newline)

	fmt.Fprint(p.out, sb.String())
}

// roomGlyph returns the coloured glyph of a room, blank while undiscovered.
func roomGlyph(room world.Room) string {
	if !room.IsDiscovered() {
		return " "
	}
	tile := room.Tile()
	glyph := string(tile.Rune())
	switch tile {
	case world.TileWall:
		return styleWall.Sprint(glyph)
	case world.TileOpening:
		return styleOpening.Sprint(glyph)
	case world.TileTreasure:
		return styleTreasure.Sprint(glyph)
	case world.TileMonster:
		return styleMonster.Sprint(glyph)
	default:
		return styleFloor.Sprint(glyph)
	}
}

// ShowText implements game.Presenter.
func (p *Presenter) ShowText(ctx context.Context, text string) error {
	skip := p.wordDelay <= 0
	col := 0
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			fmt.Fprint(p.out, newline)
			col = 0
		}
		for _, w := range splitWords(line) {
			width := markup.Len(w)
			if col > 0 && col+1+width > p.width {
				fmt.Fprint(p.out, newline)
				col = 0
			}
			if col > 0 {
				fmt.Fprint(p.out, " ")
				col++
			}
			fmt.Fprint(p.out, render(w))
			col += width

			if skip {
				continue
			}
			var err error
			if skip, err = p.pause(ctx); err != nil {
				return err
			}
		}
	}
	fmt.Fprint(p.out, newline+styleSubtle.Sprint(">>> [Press Enter to continue]")+newline)

	for {
		k, _, err := p.waitKey(ctx, nil)
		if err != nil {
			return err
		}
		if k.kind == keyEnter {
			fmt.Fprint(p.out, newline)
			return nil
		}
	}
}

// pause waits one word delay and reports whether Tab was pressed.
func (p *Presenter) pause(ctx context.Context) (bool, error) {
	timer := time.NewTimer(p.wordDelay)
	defer timer.Stop()
	for {
		k, ok, err := p.waitKey(ctx, timer.C)
		if err != nil || !ok {
			return false, err
		}
		if k.kind == keyTab {
			return true, nil
		}
	}
}

// Choose implements game.Presenter. Options are shown on one line and the
// line is redrawn as the cursor moves.
func (p *Presenter) Choose(ctx context.Context, prompt string, options []string, disabled []int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("plain: menu without options")
	}

	fmt.Fprint(p.out, render(prompt)+newline)

	selected := 0
	for selected < len(options)-1 && slices.Contains(disabled, selected) {
		selected++
	}
	for {
		fmt.Fprint(p.out, clearLine+optionLine(options, disabled, selected))

		k, _, err := p.waitKey(ctx, nil)
		if err != nil {
			return 0, err
		}
		switch k.kind {
		case keyLeft:
			selected = max(0, selected-1)
		case keyRight:
			selected = min(len(options)-1, selected+1)
		case keyRune:
			if k.r >= '1' && k.r <= '9' && int(k.r-'1') < len(options) {
				selected = int(k.r - '1')
			}
		case keyEnter:
			if !slices.Contains(disabled, selected) {
				fmt.Fprint(p.out, newline+newline)
				return selected, nil
			}
		}
	}
}

// optionLine renders options as "(1) a  >(2) b", dimming disabled ones.
func optionLine(options []string, disabled []int, selected int) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		label := fmt.Sprintf("(%d) ", i+1)
		switch {
		case slices.Contains(disabled, i):
			parts[i] = styleDisabled.Sprint(" " + label + markup.Strip(opt))
		case i == selected:
			parts[i] = styleSelected.Sprint(">"+label) + render(opt)
		default:
			parts[i] = " " + label + render(opt)
		}
	}
	return strings.Join(parts, "  ")
}

// AwaitDirection implements game.Presenter.
func (p *Presenter) AwaitDirection(ctx context.Context) (world.Direction, error) {
	fmt.Fprint(p.out, styleSubtle.Sprint("Arrow keys or WASD move. Esc quits.")+newline)
	for {
		k, _, err := p.waitKey(ctx, nil)
		if err != nil {
			return world.Up, err
		}
		if dir, ok := direction(k); ok {
			return dir, nil
		}
	}
}

func direction(k key) (world.Direction, bool) {
	switch k.kind {
	case keyUp:
		return world.Up, true
	case keyRight:
		return world.Right, true
	case keyDown:
		return world.Down, true
	case keyLeft:
		return world.Left, true
	case keyRune:
		switch k.r {
		case 'w', 'W':
			return world.Up, true
		case 'd', 'D':
			return world.Right, true
		case 's', 'S':
			return world.Down, true
		case 'a', 'A':
			return world.Left, true
		}
	}
	return world.Up, false
}

// render converts colour markup into ANSI colours.
func render(text string) string {
	var sb strings.Builder
	for _, span := range markup.Parse(text) {
		if span.Color == "" {
			sb.WriteString(span.Text)
			continue
		}
		sb.WriteString(color.HEX(span.Color).Sprint(span.Text))
	}
	return sb.String()
}
