package stardate

import (
	"math"
	"testing"
	"time"
)

func TestToStardateKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{name: "epoch", at: Epoch, want: 0},
		{name: "day before epoch", at: time.Date(1966, 9, 7, 0, 0, 0, 0, time.UTC), want: -1},
		{name: "new year 2025", at: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: 21300},
		{name: "noon", at: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), want: 21086.5},
		{name: "afternoon", at: time.Date(2025, 9, 15, 15, 30, 0, 0, time.UTC), want: 21557.645833},
		{name: "offset zone", at: time.Date(2025, 1, 1, 2, 0, 0, 0, time.FixedZone("CEST", 2*3600)), want: 21300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(ToStardate(tt.at))
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestToStardateIsMonotonic(t *testing.T) {
	t.Parallel()

	start := time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC)
	previous := ToStardate(start)
	for i := 1; i < 5000; i++ {
		next := ToStardate(start.Add(time.Duration(i) * 7 * time.Hour))
		if next <= previous {
			t.Fatalf("stardate did not increase at step %d: %f <= %f", i, next, previous)
		}
		previous = next
	}

	a := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	if ToStardate(a) >= ToStardate(a.Add(time.Second)) {
		t.Fatalf("expected one second to advance the stardate")
	}
}

func TestToStardateIsDeterministic(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 9, 15, 15, 30, 0, 0, time.UTC)
	if ToStardate(at) != ToStardate(at) {
		t.Fatalf("expected identical results for identical input")
	}
}

func TestToStardateFarFromEpoch(t *testing.T) {
	t.Parallel()

	// Beyond the range of time.Duration.
	far := time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC)
	want := float64(far.Unix()-Epoch.Unix()) / 86400
	if got := float64(ToStardate(far)); math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected %f, got %f", want, got)
	}
	if got := FromStardate(ToStardate(far)); !got.Equal(far) {
		t.Fatalf("expected round trip to %s, got %s", far, got)
	}
}

func TestFromStardateRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 9, 15, 15, 30, 0, 0, time.UTC)
	if got := FromStardate(ToStardate(at)); !got.Equal(at) {
		t.Fatalf("expected %s, got %s", at, got)
	}
	if got := FromStardate(21300); !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected instant for 21300: %s", got)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		value        Value
		whole, fract string
	}{
		{name: "plain", value: 21557.645833, whole: "21557", fract: "65"},
		{name: "carry", value: 21299.999, whole: "21300", fract: "00"},
		{name: "negative", value: -1, whole: "-1", fract: "00"},
		{name: "small negative", value: -0.25, whole: "-0", fract: "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole, fract := tt.value.Split(DisplayDigits)
			if whole != tt.whole || fract != tt.fract {
				t.Fatalf("expected %s.%s, got %s.%s", tt.whole, tt.fract, whole, fract)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Value(21086.5).String(); got != "21086.50" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	got, err := Parse(" 21300.5 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 21300.5 {
		t.Fatalf("unexpected value %f", got)
	}
	for _, input := range []string{"", "abc", "NaN", "Inf"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
