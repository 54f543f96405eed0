package cmd

import (
	"testing"
	"time"

	"captainslog/journal"
)

func TestResolveCalendarMonth(t *testing.T) {
	now := time.Date(2025, time.September, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		year      int
		month     int
		wantYear  int
		wantMonth time.Month
		wantErr   bool
	}{
		{name: "defaults to now", wantYear: 2025, wantMonth: time.September},
		{name: "explicit month keeps current year", month: 2, wantYear: 2025, wantMonth: time.February},
		{name: "explicit year and month", year: 2024, month: 12, wantYear: 2024, wantMonth: time.December},
		{name: "month too large", month: 13, wantErr: true},
		{name: "negative month", month: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, err := resolveCalendarMonth(tt.year, tt.month, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Fatalf("expected %d-%02d, got %d-%02d", tt.wantYear, tt.wantMonth, year, month)
			}
		})
	}
}

func TestMonthFilterCoversWholeMonth(t *testing.T) {
	filter := monthFilter(2024, time.February)

	if filter.Since == nil || *filter.Since != journal.NewDateKey(2024, time.February, 1) {
		t.Fatalf("unexpected since: %v", filter.Since)
	}
	if filter.Until == nil || *filter.Until != journal.NewDateKey(2024, time.February, 29) {
		t.Fatalf("unexpected until: %v", filter.Until)
	}
	if filter.Journal != "" || filter.Date != nil {
		t.Fatalf("expected only a date range, got %+v", filter)
	}
}
