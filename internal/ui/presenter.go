package ui

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rubycrawl/internal/entity"
	"github.com/samdwyer/rubycrawl/internal/game"
	"github.com/samdwyer/rubycrawl/internal/markup"
	"github.com/samdwyer/rubycrawl/internal/world"
)

const (
	continueHint = ">>> [Press Enter to continue, Tab to skip]"
	moveHint     = "Arrow keys move. Esc quits."
	menuHint     = "Left/Right or 1-9 to pick, Enter to confirm."
)

var _ game.Presenter = (*Presenter)(nil)

// Presenter implements game.Presenter on a full-screen terminal: the map and
// status on top, text and menus underneath.
type Presenter struct {
	screen    *Screen
	renderer  *Renderer
	wordDelay time.Duration

	dungeon *world.Dungeon
	player  *entity.Player
}

// NewPresenter creates a presenter that reveals text one word every wordDelay.
// A zero delay shows text at once.
func NewPresenter(screen *Screen, wordDelay time.Duration) *Presenter {
	return &Presenter{
		screen:    screen,
		renderer:  NewRenderer(screen),
		wordDelay: wordDelay,
	}
}

// SetWordDelay implements game.Presenter.
func (p *Presenter) SetWordDelay(d time.Duration) {
	p.wordDelay = d
}

// ShowMap implements game.Presenter.
func (p *Presenter) ShowMap(d *world.Dungeon, pl *entity.Player) {
	p.dungeon, p.player = d, pl
	p.redrawMap()
	p.screen.Show()
}

func (p *Presenter) redrawMap() {
	if p.dungeon == nil || p.player == nil {
		return
	}
	p.renderer.DrawMap(p.dungeon, p.player)
	p.renderer.DrawStatus(p.player)
}

// ShowText implements game.Presenter. Words appear one at a time until Tab is
// pressed, then the block waits for Enter.
func (p *Presenter) ShowText(ctx context.Context, text string) error {
	p.clearText()
	p.redrawMap()

	skip := p.wordDelay <= 0
	row := textTop
	for _, line := range layoutWords(text, p.textWidth()) {
		col := textLeft
		for i, w := range line {
			if i > 0 {
				col++
			}
			col = p.renderer.drawWord(col, row, w, defaultStyle)
			if skip {
				continue
			}
			p.screen.Show()
			var err error
			if skip, err = p.pause(ctx); err != nil {
				return err
			}
		}
		row++
	}

	p.renderer.DrawText(textLeft, row+1, continueHint, dimStyle)
	p.screen.Show()

	for {
		key, err := p.waitKey(ctx, nil)
		if err != nil {
			return err
		}
		if key.Key() == tcell.KeyEnter {
			return nil
		}
	}
}

// pause waits one word delay. It reports true when Tab was pressed.
func (p *Presenter) pause(ctx context.Context) (bool, error) {
	timer := time.NewTimer(p.wordDelay)
	defer timer.Stop()
	for {
		key, err := p.waitKey(ctx, timer.C)
		if err != nil {
			return false, err
		}
		if key == nil {
			return false, nil
		}
		if key.Key() == tcell.KeyTab {
			return true, nil
		}
	}
}

// Choose implements game.Presenter.
func (p *Presenter) Choose(ctx context.Context, prompt string, options []string, disabled []int) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("ui: menu without options")
	}

	p.clearText()
	p.redrawMap()
	row := p.drawBlock(textTop, prompt) + 1
	p.renderer.DrawText(textLeft, row+len(options)+1, menuHint, dimStyle)

	m := newMenu(len(options), disabled)
	for {
		p.drawOptions(row, options, m)
		p.screen.Show()

		key, err := p.waitKey(ctx, nil)
		if err != nil {
			return 0, err
		}
		if m.handleKey(key.Key(), key.Rune()) {
			return m.selected, nil
		}
	}
}

// drawOptions draws one option per row, marking the cursor and dimming
// disabled entries.
func (p *Presenter) drawOptions(row int, options []string, m *menu) {
	p.renderer.ClearRows(row, row+len(options)-1)
	for i, opt := range options {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		label := prefix + "(" + strconv.Itoa(i+1) + ") "
		y := row + i
		switch {
		case m.isDisabled(i):
			p.renderer.DrawText(textLeft, y, label+markup.Strip(opt), dimStyle)
		case i == m.selected:
			x := p.renderer.DrawText(textLeft, y, label, defaultStyle.Bold(true))
			p.renderer.DrawMarkup(x, y, opt, defaultStyle.Bold(true).Underline(true))
		default:
			x := p.renderer.DrawText(textLeft, y, label, defaultStyle)
			p.renderer.DrawMarkup(x, y, opt, defaultStyle)
		}
	}
}

// AwaitDirection implements game.Presenter.
func (p *Presenter) AwaitDirection(ctx context.Context) (world.Direction, error) {
	p.renderer.ClearRows(hintRow, hintRow)
	p.renderer.DrawText(mapLeft, hintRow, moveHint, dimStyle)
	p.screen.Show()
	defer func() {
		p.renderer.ClearRows(hintRow, hintRow)
		p.screen.Show()
	}()

	for {
		key, err := p.waitKey(ctx, nil)
		if err != nil {
			return world.Up, err
		}
		if dir, ok := directionFor(key.Key(), key.Rune()); ok {
			return dir, nil
		}
	}
}

// directionFor maps arrow keys and WASD to directions.
func directionFor(key tcell.Key, r rune) (world.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyRight:
		return world.Right, true
	case tcell.KeyDown:
		return world.Down, true
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRune:
		switch r {
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

// waitKey blocks for the next key press. It returns a nil key when timeout
// fires and game.ErrQuit on Esc, Ctrl-C or a closed screen. Resizes are
// handled here.
func (p *Presenter) waitKey(ctx context.Context, timeout <-chan time.Time) (*tcell.EventKey, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout:
			return nil, nil
		case ev, ok := <-p.screen.Events():
			if !ok {
				return nil, game.ErrQuit
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				p.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev.Key()) {
					return nil, game.ErrQuit
				}
				return ev, nil
			}
		}
	}
}

func isQuitKey(key tcell.Key) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC
}

// drawBlock draws marked-up text wrapped at the text width and returns the
// row after it.
func (p *Presenter) drawBlock(row int, text string) int {
	for _, line := range layoutWords(text, p.textWidth()) {
		col := textLeft
		for i, w := range line {
			if i > 0 {
				col++
			}
			col = p.renderer.drawWord(col, row, w, defaultStyle)
		}
		row++
	}
	return row
}

func (p *Presenter) clearText() {
	_, height := p.screen.Size()
	p.renderer.ClearRows(textTop, height-1)
}

func (p *Presenter) textWidth() int {
	width, _ := p.screen.Size()
	if w := width - 2*textLeft; w > 20 {
		return w
	}
	return 20
}
