package observability

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var loggerContextKey = contextKey{}

// WithLogger returns a new context with the given logger attached.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// FromContext extracts the Logger from the context, falling back to a
// no-op logger so call sites never need a nil check.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return NoopLogger{}
	}
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok && logger != nil {
		return logger
	}
	return NoopLogger{}
}
