package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"Warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelInfo)

	l.Debug("hidden")
	l.With("component", "tui").Info("toggle", "id", "item1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "toggle", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "tui", entry["component"])
	assert.Equal(t, "item1", entry["id"])
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf, LevelDebug)
	assert.Same(t, base, base.With())

	child := base.With("a", 1, 2, "ignored-non-string-key")
	child.Warn("w")
	base.Error("e")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"a":1`))
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	l, err := NewLogger(path, LevelDebug)
	require.NoError(t, err)

	l.Debug("hello", "n", 1)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("dropped")
	assert.NoError(t, l.Close())
}
