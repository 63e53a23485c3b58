package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates log file and parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "procsweep.log")

		logger, err := NewLogger(path, LevelDebug)
		require.NoError(t, err)
		defer logger.Close()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("empty path disables logging", func(t *testing.T) {
		logger, err := NewLogger("", LevelDebug)
		require.NoError(t, err)

		assert.Nil(t, logger.file)
		assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		_, err := NewLogger(filepath.Join(t.TempDir(), "x.log"), "loud")
		assert.Error(t, err)
	})
}

func TestLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procsweep.log")

	logger, err := NewLogger(path, LevelInfo)
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	logger.Info().Str("pid", "42").Msg("terminating process")
	logger.Error().Msg("failed")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "terminating process", entry["message"])
	assert.Equal(t, "42", entry["pid"])
	assert.Equal(t, "procsweep", entry["app"])
	assert.Contains(t, entry, "time")
}

func TestLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procsweep.log")

	for i := 0; i < 2; i++ {
		logger, err := NewLogger(path, LevelInfo)
		require.NoError(t, err)
		logger.Info().Msg("run")
		require.NoError(t, logger.Close())
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(content, []byte("\n")))
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := NewLogger(filepath.Join(t.TempDir(), "a.log"), LevelInfo)
	require.NoError(t, err)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
	assert.NoError(t, Nop().Close())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"trace", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
