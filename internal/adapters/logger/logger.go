// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultLevel keeps a normal launch silent so only the script's own output is visible.
const DefaultLevel = slog.LevelWarn

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing to stderr at DefaultLevel.
func New() *Logger {
	return NewWithWriter(os.Stderr, DefaultLevel)
}

// NewWithWriter creates a Logger writing records to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		err := zerr.Wrap(domain.ErrInvalidConfig, "unknown log level")
		return DefaultLevel, zerr.With(err, "log_level", name)
	}
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.logger.Debug(msg)
}

// Error logs an error together with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	zerr.Log(context.Background(), l.logger, err)
}
