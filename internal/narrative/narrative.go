// Package narrative loads the story text shown between game phases.
//
// Each resource is a text file. Paragraphs are separated by a blank line and
// are shown one block at a time.
package narrative

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Resource ids used by the game.
const (
	Introduction = "exposition/introduction"
	CallToAction = "exposition/call_to_action"
	Success      = "ending/success"
	Slain        = "ending/slain"
	Escape       = "ending/escape"
)

// ErrNotFound is returned for an unknown resource id.
var ErrNotFound = errors.New("narrative: resource not found")

//go:embed text
var embedded embed.FS

// Loader reads narrative resources from a file system.
type Loader struct {
	fsys fs.FS
}

// New creates a loader over fsys. Resource ids map to "<id>.txt".
func New(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewEmbedded creates a loader over the text compiled into the binary.
func NewEmbedded() *Loader {
	sub, err := fs.Sub(embedded, "text")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// NewDir creates a loader reading from dir on disk.
// Use it to swap in translated or rewritten story text.
func NewDir(dir string) *Loader {
	return New(os.DirFS(dir))
}

// Paragraphs loads the resource id and splits it into paragraphs.
func (l *Loader) Paragraphs(id string) ([]string, error) {
	name := path.Clean(id) + ".txt"
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return Split(string(data)), nil
}

// Split normalises line endings and splits text on blank lines. Paragraphs
// are trimmed and empty ones dropped.
func Split(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphs
}
