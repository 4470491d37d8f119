package obs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("json", "debug", &buf)
	logger.Debug().Str("money", "EUR -0.19").Msg("computed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "EUR -0.19", entry["money"])
	assert.Equal(t, "computed", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(" Console ", "info", &buf)
	logger.Info().Str("money", "USD 1.00").Msg("computed")

	out := buf.String()
	assert.Contains(t, out, "computed")
	assert.Contains(t, out, "money=")
	assert.Contains(t, out, "USD 1.00")
}

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		logger := NewLogger("json", tt.level, &bytes.Buffer{})
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("json", "warn", &buf)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
