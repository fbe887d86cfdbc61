package common

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped zerolog logger at the named level.
// Unknown or empty levels fall back to info. A nil writer logs to stderr.
//
// Parameters:
//   - level: a zerolog level name such as "debug" or "warn"
//   - w: destination for log lines
//
// Returns:
//   - zerolog.Logger: the configured logger
func NewLogger(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
