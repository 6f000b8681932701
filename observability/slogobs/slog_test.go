package slogobs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/leadlab/footprint/observability"
)

func TestLoggerWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := context.Background()
	logger.Debug(ctx, "checking page", observability.String("url", "https://example.com"))
	logger.Warn(ctx, "thin page", observability.Int("length", 42))

	out := buf.String()
	for _, want := range []string{"checking page", "url=https://example.com", "thin page", "length=42", "level=DEBUG", "level=WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewNilUsesDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
