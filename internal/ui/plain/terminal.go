package plain

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// Terminal is a presenter bound to the process's stdin and stdout.
type Terminal struct {
	*Presenter

	fd    int
	state *term.State
}

// OpenTerminal puts stdin into raw mode and returns a presenter reading from
// it. Close restores the terminal.
func OpenTerminal(wordDelay time.Duration) (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("plain: stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("plain: enable raw mode: %w", err)
	}

	p := NewPresenter(os.Stdin, os.Stdout, wordDelay)
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		p.SetWidth(width - 4)
	}

	return &Terminal{Presenter: p, fd: fd, state: state}, nil
}

// Close restores the terminal to its previous mode.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	fmt.Fprint(t.out, newline)
	return err
}
