package importer

import (
	"strings"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 utc", input: "2025-01-01T09:00:00Z", want: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)},
		{name: "rfc3339 offset", input: "2025-01-01T09:00:00+02:00", want: time.Date(2025, 1, 1, 7, 0, 0, 0, time.UTC)},
		{name: "sqlite style", input: "2025-01-01 09:00:05", want: time.Date(2025, 1, 1, 9, 0, 5, 0, time.UTC)},
		{name: "minutes", input: "2025-01-01 09:00", want: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)},
		{name: "date only", input: "2025-01-01", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty", input: "", wantErr: true},
		{name: "invalid", input: "01.01.2025", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseTimestamp(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("unexpected timestamp for %q: want %s, got %s", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseImagePaths(t *testing.T) {
	t.Parallel()

	got := parseImagePaths(" a.png ;; b.png")
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.png" {
		t.Fatalf("unexpected paths %v", got)
	}
	if got := parseImagePaths(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestDedent(t *testing.T) {
	t.Parallel()

	got := dedent([]string{"   first", "", "     nested", "   last"})
	want := []string{"first", "", "  nested", "last"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDedentIgnoresColumnZeroHeadings(t *testing.T) {
	t.Parallel()

	got := dedent([]string{"*** Agenda", "", "   • step", "     nested"})
	want := []string{"*** Agenda", "", "• step", "  nested"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
