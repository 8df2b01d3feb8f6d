package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("chatty"))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.Debug().Msg("hidden")
	storeLogger := Component(logger, "storage")
	storeLogger.Info().Int("plants", 3).Msg("loaded")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "loaded", entry["message"])
	assert.Equal(t, "storage", entry["component"])
	assert.EqualValues(t, 3, entry["plants"])
	assert.Contains(t, entry, "time")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantpal.log")

	logger, cleanup, err := NewFile("warn", path)
	require.NoError(t, err)
	logger.Warn().Msg("written")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNewFileBadPath(t *testing.T) {
	_, cleanup, err := NewFile("warn", filepath.Join(t.TempDir(), "missing", "x.log"))
	require.Error(t, err)
	cleanup()
}
