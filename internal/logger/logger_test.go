package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestInitializeFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	cfg := DefaultConfig()
	cfg.FilePath = path
	require.NoError(t, Initialize(cfg))
	t.Cleanup(func() { logger = nil })

	Info("Dungeon generated", "open_rooms", 42)
	Debug("filtered out at INFO")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Dungeon generated")
	assert.Contains(t, string(data), "open_rooms=42")
	assert.NotContains(t, string(data), "filtered out")
}

func TestInitializeRequiresPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FilePath = ""
	assert.Error(t, Initialize(cfg))
}

func TestHelpersBeforeInitialize(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warning("x")
		Error("x")
	})
	assert.Nil(t, With("k", "v"))
}
