package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	got := JSONToString(payload{Name: "acme", Count: 3})
	want := `{"name":"acme","count":3}`
	if got != want {
		t.Errorf("JSONToString = %q, want %q", got, want)
	}

	indented := JSONToString(payload{Name: "acme"}, true)
	if !strings.Contains(indented, "\n  ") {
		t.Errorf("indented output not pretty-printed: %q", indented)
	}

	// Unmarshalable values degrade to an error string instead of panicking.
	errOut := JSONToString(func() {})
	if !strings.Contains(errOut, "error") {
		t.Errorf("expected error payload, got %q", errOut)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long string truncated", "hello world", 5, "hello... (truncated, total: 11 chars)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}

	// Non-positive maxLen falls back to the default cap.
	long := strings.Repeat("x", DefaultMaxStringLength+10)
	got := TruncateString(long, 0)
	if len(got) <= DefaultMaxStringLength || !strings.Contains(got, "truncated") {
		t.Errorf("default cap not applied: %d chars", len(got))
	}
	if TruncateStringDefault("short") != "short" {
		t.Error("TruncateStringDefault altered a short string")
	}
}
