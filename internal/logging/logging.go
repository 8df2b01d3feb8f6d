// Package logging configures the structured logger shared by plantpal components.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps routine operations quiet on the terminal.
const DefaultLevel = "warn"

// New creates a logger writing JSON lines to w at the given level.
// An empty or unknown level falls back to DefaultLevel.
func New(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel converts a level name into a zerolog level.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	return lvl
}

// NewFile creates a logger appending to path. The returned cleanup func closes
// the file; callers must defer it.
func NewFile(level, path string) (zerolog.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return New(level, f), func() { _ = f.Close() }, nil
}

// Component derives a sub-logger tagged with a component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
