package journal

import (
	"fmt"
	"time"
)

// DateKey is a calendar date used for grouping and date filters. It is
// compared field by field, never through a formatted string.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DateKeyOf returns the UTC calendar date of t.
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.UTC().Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// NewDateKey normalizes out-of-range values the same way time.Date does.
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDateKey parses a YYYY-MM-DD date.
func ParseDateKey(value string) (DateKey, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return DateKey{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateKeyOf(parsed), nil
}

func (k DateKey) Compare(other DateKey) int {
	switch {
	case k.Year != other.Year:
		return cmpInt(k.Year, other.Year)
	case k.Month != other.Month:
		return cmpInt(int(k.Month), int(other.Month))
	default:
		return cmpInt(k.Day, other.Day)
	}
}

func (k DateKey) Before(other DateKey) bool { return k.Compare(other) < 0 }

func (k DateKey) After(other DateKey) bool { return k.Compare(other) > 0 }

func (k DateKey) IsZero() bool { return k == DateKey{} }

// Start returns midnight UTC of the date.
func (k DateKey) Start() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (k DateKey) Next() DateKey {
	return DateKeyOf(k.Start().AddDate(0, 0, 1))
}

func (k DateKey) Weekday() time.Weekday {
	return k.Start().Weekday()
}

// String renders YYYY-MM-DD for display and flags.
func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
