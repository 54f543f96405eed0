// Package dateparse resolves the date expressions accepted by --date, --since
// and --until.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"captainslog/internal/timeutil"
	"captainslog/journal"
)

var ErrUnrecognized = errors.New("unrecognized date expression")

var offsetPattern = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)\s+(ago|from now)$`)

// Parse resolves input relative to the calendar date of now. Accepted forms
// are today, yesterday, tomorrow, this week (its Monday), last/next
// week|month|year, "N day(s)|week(s) ago|from now" and YYYY-MM-DD.
func Parse(input string, now time.Time) (journal.DateKey, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(input)), " ")
	today := timeutil.StartOfDay(now)

	var resolved time.Time
	switch normalized {
	case "today":
		resolved = today
	case "yesterday":
		resolved = today.AddDate(0, 0, -1)
	case "tomorrow":
		resolved = today.AddDate(0, 0, 1)
	case "this week":
		resolved = timeutil.StartOfWeek(today)
	case "last week":
		resolved = today.AddDate(0, 0, -7)
	case "next week":
		resolved = today.AddDate(0, 0, 7)
	case "last month":
		resolved = timeutil.AddMonthsClamped(today, -1)
	case "next month":
		resolved = timeutil.AddMonthsClamped(today, 1)
	case "last year":
		resolved = timeutil.AddMonthsClamped(today, -12)
	case "next year":
		resolved = timeutil.AddMonthsClamped(today, 12)
	default:
		if match := offsetPattern.FindStringSubmatch(normalized); match != nil {
			amount, err := strconv.Atoi(match[1])
			if err != nil {
				return journal.DateKey{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
			}
			if strings.HasPrefix(match[2], "week") {
				amount *= 7
			}
			if match[3] == "ago" {
				amount = -amount
			}
			resolved = today.AddDate(0, 0, amount)
			break
		}

		key, err := journal.ParseDateKey(normalized)
		if err != nil {
			return journal.DateKey{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
		}
		return key, nil
	}

	return journal.NewDateKey(resolved.Year(), resolved.Month(), resolved.Day()), nil
}

// ParseOptional returns nil for blank input.
func ParseOptional(input string, now time.Time) (*journal.DateKey, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	key, err := Parse(input, now)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
