// Package log configures the process-wide zerolog logger.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level  string    // optional log level ("debug", "info", etc.)
	Output io.Writer // optional writer (defaults to os.Stderr)
	RunID  string    // optional; generated when empty
}

var (
	once sync.Once
	base zerolog.Logger
)

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	return zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str(FieldService, "filmcompressor").
		Str(FieldRunID, runID).
		Logger()
}

// Configure initialises the global logger exactly once.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		base = New(cfg)
	})
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// OpenFile opens path for appending, creating its parent directory.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str(FieldComponent, component).Logger()
}
