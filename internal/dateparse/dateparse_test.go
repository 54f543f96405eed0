package dateparse

import (
	"errors"
	"testing"
	"time"

	"captainslog/journal"
)

func TestParse(t *testing.T) {
	t.Parallel()

	// Wednesday
	now := time.Date(2025, 1, 15, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		input string
		want  journal.DateKey
	}{
		{input: "today", want: journal.NewDateKey(2025, 1, 15)},
		{input: " Yesterday ", want: journal.NewDateKey(2025, 1, 14)},
		{input: "tomorrow", want: journal.NewDateKey(2025, 1, 16)},
		{input: "this week", want: journal.NewDateKey(2025, 1, 13)},
		{input: "last week", want: journal.NewDateKey(2025, 1, 8)},
		{input: "next week", want: journal.NewDateKey(2025, 1, 22)},
		{input: "last month", want: journal.NewDateKey(2024, 12, 15)},
		{input: "next month", want: journal.NewDateKey(2025, 2, 15)},
		{input: "last year", want: journal.NewDateKey(2024, 1, 15)},
		{input: "next year", want: journal.NewDateKey(2026, 1, 15)},
		{input: "3 days ago", want: journal.NewDateKey(2025, 1, 12)},
		{input: "1 day from now", want: journal.NewDateKey(2025, 1, 16)},
		{input: "2 weeks ago", want: journal.NewDateKey(2025, 1, 1)},
		{input: "1 week from now", want: journal.NewDateKey(2025, 1, 22)},
		{input: "2024-02-29", want: journal.NewDateKey(2024, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, now)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParse_ClampsMonthEnd(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 31, 9, 0, 0, 0, time.UTC)
	got, err := Parse("last month", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != journal.NewDateKey(2025, 2, 28) {
		t.Fatalf("expected clamped date, got %s", got)
	}

	leap := time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)
	got, err = Parse("next year", leap)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != journal.NewDateKey(2025, 2, 28) {
		t.Fatalf("expected Feb 28, got %s", got)
	}
}

func TestParse_UsesLocalCalendarDate(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("UTC-8", -8*3600)
	now := time.Date(2025, 1, 15, 20, 0, 0, 0, zone)
	got, err := Parse("today", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != journal.NewDateKey(2025, 1, 15) {
		t.Fatalf("expected the local date, got %s", got)
	}
}

func TestParse_Unrecognized(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "someday", "x days ago", "2025-13-01", "3 months ago"} {
		if _, err := Parse(input, time.Now()); !errors.Is(err, ErrUnrecognized) {
			t.Fatalf("expected ErrUnrecognized for %q, got %v", input, err)
		}
	}
}

func TestParseOptional(t *testing.T) {
	t.Parallel()

	got, err := ParseOptional("  ", time.Now())
	if err != nil || got != nil {
		t.Fatalf("expected nil for blank input, got %v, %v", got, err)
	}
}
