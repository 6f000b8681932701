// Package slogobs implements observability.Logger on top of the standard
// library's log/slog.
package slogobs

import (
	"context"
	"log/slog"

	"github.com/leadlab/footprint/observability"
)

// Logger adapts a *slog.Logger to the observability.Logger interface.
type Logger struct {
	logger *slog.Logger
}

// New creates a slog-backed logger. A nil argument uses slog.Default().
func New(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

// Ensure Logger implements observability.Logger.
var _ observability.Logger = (*Logger)(nil)

func (l *Logger) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *Logger) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *Logger) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *Logger) Error(ctx context.Context, msg string, attrs ...observability.Attribute) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *Logger) log(ctx context.Context, level slog.Level, msg string, attrs []observability.Attribute) {
	logAttrs := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		logAttrs = append(logAttrs, slog.Any(attr.Key, attr.Value))
	}
	l.logger.LogAttrs(ctx, level, msg, logAttrs...)
}
