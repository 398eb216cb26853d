package narrative

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "One paragraph.", []string{"One paragraph."}},
		{"two", "First.\n\nSecond.", []string{"First.", "Second."}},
		{"crlf", "First.\r\n\r\nSecond.\r\n", []string{"First.", "Second."}},
		{"bare cr", "First.\r\rSecond.", []string{"First.", "Second."}},
		{"extra blank lines", "\n\nFirst.\n\n\n\nSecond.\n\n", []string{"First.", "Second."}},
		{"keeps single newlines", "Line one\nline two.\n\nNext.", []string{"Line one\nline two.", "Next."}},
		{"trims", "   padded   \n\n\tTabbed\t", []string{"padded", "Tabbed"}},
		{"empty", "", nil},
		{"whitespace only", " \n\n \n\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.in))
		})
	}
}

func TestEmbeddedResources(t *testing.T) {
	l := NewEmbedded()

	for _, id := range []string{Introduction, CallToAction, Success, Slain, Escape} {
		t.Run(id, func(t *testing.T) {
			paragraphs, err := l.Paragraphs(id)
			require.NoError(t, err)
			assert.NotEmpty(t, paragraphs)
			for _, p := range paragraphs {
				assert.NotEmpty(t, p)
			}
		})
	}
}

func TestParagraphsFromFS(t *testing.T) {
	l := New(fstest.MapFS{
		"ending/success.txt": {Data: []byte("You won.\r\n\r\nThe end.")},
	})

	paragraphs, err := l.Paragraphs(Success)
	require.NoError(t, err)
	assert.Equal(t, []string{"You won.", "The end."}, paragraphs)

	_, err = l.Paragraphs(Slain)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = l.Paragraphs("../outside")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewDir(t *testing.T) {
	l := NewDir(t.TempDir())

	_, err := l.Paragraphs(Introduction)
	assert.ErrorIs(t, err, ErrNotFound)
}
