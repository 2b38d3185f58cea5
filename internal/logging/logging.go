// Package logging provides structured logging with slog for chime.
//
// Hook invocations are short-lived side channels: logs go to a file under
// the data directory, and only when debug is enabled. stdout is never a
// log target because it carries the terminal title escape sequence.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Config holds the logging configuration.
type Config struct {
	// Level is the minimum level to record.
	Level slog.Level

	// FilePath is the log file; empty means discard.
	FilePath string

	// Component is added to every record as "component".
	Component string
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New builds a logger from cfg. Any failure to open the log file degrades
// to a discarding logger; logging must never break the handler.
func New(cfg Config) *slog.Logger {
	if cfg.FilePath == "" {
		return Discard()
	}
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
		return Discard()
	}
	f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard()
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.Level})
	log := slog.New(handler)
	if cfg.Component != "" {
		log = log.With("component", cfg.Component)
	}
	return log
}

// ForHook returns the hook-mode logger: a debug-level file logger under
// logsDir when debug is on, a discarding logger otherwise.
func ForHook(logsDir string, debug bool) *slog.Logger {
	if !debug {
		return Discard()
	}
	return New(Config{
		Level:     slog.LevelDebug,
		FilePath:  filepath.Join(logsDir, "chime.log"),
		Component: "hook",
	})
}
