// Package obs builds the structured logger used by the command line tools.
package obs

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger configures a zerolog logger writing to w using the provided format and level.
// Formats "console" and "text" produce human readable output, anything else produces JSON.
// Unknown levels fall back to info.
func NewLogger(format, level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
