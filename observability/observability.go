package observability

import "context"

// Logger provides structured logging capabilities.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Attribute represents a key-value pair for structured log metadata.
type Attribute struct {
	Key   string
	Value interface{}
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float attribute.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute under the conventional "error" key.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: nil}
	}
	return Attribute{Key: "error", Value: err.Error()}
}

// NoopLogger discards everything. It is the default when no logger is
// attached to the context.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Attribute) {}
func (NoopLogger) Info(context.Context, string, ...Attribute)  {}
func (NoopLogger) Warn(context.Context, string, ...Attribute)  {}
func (NoopLogger) Error(context.Context, string, ...Attribute) {}
