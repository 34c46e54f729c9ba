// Package logging wraps slog with the fields the visualizer logs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with run-specific helpers.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Open appends to the file at path. An empty path returns a Noop logger,
// since the terminal UI owns stdout and stderr.
func Open(path, level string) (*Logger, error) {
	if path == "" {
		return Noop(), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	l := New(f, ParseLevel(level))
	l.closer = f
	return l, nil
}

// Noop discards all output.
func Noop() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun tags records with the size and target of a search run.
func (l *Logger) WithRun(size, target int) *Logger {
	return &Logger{Logger: l.Logger.With("size", size, "target", target)}
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
