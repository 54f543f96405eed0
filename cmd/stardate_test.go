package cmd

import (
	"testing"
	"time"
)

func TestResolveStardateInput(t *testing.T) {
	now := time.Date(2025, time.September, 15, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "empty is now", input: "", want: now},
		{name: "rfc3339 timestamp", input: "2025-01-01T09:36:00+01:00", want: time.Date(2025, time.January, 1, 8, 36, 0, 0, time.UTC)},
		{name: "plain date is midnight utc", input: "2025-09-15", want: time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveStardateInput(tt.input, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}

	if _, err := resolveStardateInput("stardate 5", now); err == nil {
		t.Fatalf("expected error for unrecognized input")
	}
}
