// Package logger builds the structured logger used across spaceman.
//
// The terminal belongs to the game, so log lines go to a file as JSON, or
// nowhere when no file is configured.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level writing to path.
// An empty path discards all output. The returned close function releases
// the file and is safe to call when path is empty.
func New(level, path string) (zerolog.Logger, func() error, error) {
	lvl := ParseLevel(level)

	if path == "" {
		return zerolog.New(io.Discard).Level(lvl), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	log := zerolog.New(f).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return log, f.Close, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
