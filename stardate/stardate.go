// Package stardate maps instants onto the continuous stardate scale used by
// every display surface and the markdown export.
package stardate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// UnitsPerDay is how far the scale advances per calendar day.
	UnitsPerDay = 1.0
	// DisplayDigits is the number of fractional digits shown to users.
	DisplayDigits = 2

	secondsPerDay = 86400
)

// Epoch is stardate 0.
var Epoch = time.Date(1966, time.September, 8, 0, 0, 0, 0, time.UTC)

// Value is a position on the stardate scale.
type Value float64

// ToStardate converts t to a stardate. Instants before Epoch yield negative
// values.
func ToStardate(t time.Time) Value {
	seconds := float64(t.Unix()-Epoch.Unix()) + float64(t.Nanosecond())/1e9
	return Value(seconds / secondsPerDay * UnitsPerDay)
}

// FromStardate converts a stardate back to a UTC instant rounded to the
// nearest second.
func FromStardate(v Value) time.Time {
	seconds := math.Round(float64(v) / UnitsPerDay * secondsPerDay)
	return time.Unix(Epoch.Unix()+int64(seconds), 0).UTC()
}

// Split rounds v to digits fractional digits and returns the whole and
// fractional parts as display strings. A fraction that rounds up to one
// carries into the whole part.
func (v Value) Split(digits int) (whole, fraction string) {
	if digits < 0 {
		digits = 0
	}
	formatted := strconv.FormatFloat(float64(v), 'f', digits, 64)
	whole, fraction, _ = strings.Cut(formatted, ".")
	return whole, fraction
}

// String renders v with DisplayDigits fractional digits.
func (v Value) String() string {
	whole, fraction := v.Split(DisplayDigits)
	if fraction == "" {
		return whole
	}
	return whole + "." + fraction
}

// Parse reads a stardate typed by a user.
func Parse(value string) (Value, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("parse stardate %q: %w", value, err)
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, fmt.Errorf("parse stardate %q: %w", value, strconv.ErrRange)
	}
	return Value(parsed), nil
}
