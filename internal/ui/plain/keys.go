package plain

import (
	"bufio"
)

// keyKind identifies a decoded key press.
type keyKind int

const (
	keyRune keyKind = iota
	keyUp
	keyDown
	keyRight
	keyLeft
	keyEnter
	keyTab
	keyEscape
	keyCtrlC
)

type key struct {
	kind keyKind
	r    rune
}

// readKey decodes one key press from raw terminal input. Arrow keys arrive as
// CSI (ESC [) or SS3 (ESC O) sequences. A lone ESC is the escape key.
func readKey(r *bufio.Reader) (key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return key{}, err
	}

	switch b {
	case '\r', '\n':
		return key{kind: keyEnter}, nil
	case '\t':
		return key{kind: keyTab}, nil
	case 3:
		return key{kind: keyCtrlC}, nil
	case 0x1b:
		return readEscape(r)
	}

	if err := r.UnreadByte(); err != nil {
		return key{}, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return key{}, err
	}
	return key{kind: keyRune, r: ch}, nil
}

func readEscape(r *bufio.Reader) (key, error) {
	if r.Buffered() == 0 {
		return key{kind: keyEscape}, nil
	}
	b2, err := r.ReadByte()
	if err != nil {
		return key{kind: keyEscape}, nil
	}
	if b2 != '[' && b2 != 'O' {
		// Alt+key or a stray escape: drop the escape.
		if err := r.UnreadByte(); err != nil {
			return key{}, err
		}
		return key{kind: keyEscape}, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return key{}, err
	}
	switch b3 {
	case 'A':
		return key{kind: keyUp}, nil
	case 'B':
		return key{kind: keyDown}, nil
	case 'C':
		return key{kind: keyRight}, nil
	case 'D':
		return key{kind: keyLeft}, nil
	}

	// Unknown sequence: skip parameter bytes up to the final byte.
	for b3 < 0x40 || b3 > 0x7e {
		if b3, err = r.ReadByte(); err != nil {
			return key{}, err
		}
	}
	return key{kind: keyRune, r: 0}, nil
}
