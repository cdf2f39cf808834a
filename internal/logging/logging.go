// Package logging builds memento's slog logger. The terminal belongs to the
// UI while it runs, so records go to a rotating file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// EnvLevel overrides the configured level.
const EnvLevel = "MEMENTO_LOG_LEVEL"

// Options controls logger construction.
type Options struct {
	Level   string
	File    string
	Version string
}

// New returns a JSON logger writing to opts.File through a rotating writer,
// and a closer for that writer. An empty File discards every record.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(opts.Level)
	if env := strings.TrimSpace(os.Getenv(EnvLevel)); env != "" {
		level = ParseLevel(env)
	}

	path := strings.TrimSpace(opts.File)
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	w := &lj.Logger{Filename: path, MaxSize: 5, MaxBackups: 3, MaxAge: 28, Compress: true}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(h).With(slog.String("app", "memento"))
	if opts.Version != "" {
		logger = logger.With(slog.String("ver", opts.Version))
	}
	return logger, w, nil
}

// ParseLevel converts a level name to slog.Level. Unknown names are info.
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

// WithComponent tags a logger with the subsystem name.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
