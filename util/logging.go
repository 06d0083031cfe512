package util

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// NewLogger returns a zerolog logger writing to w. Human-readable console
// output is used unless jsonOutput is set. An empty level means "info".
func NewLogger(w io.Writer, level string, jsonOutput bool) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), errors.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if !jsonOutput {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
