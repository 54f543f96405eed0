package timeutil

import "time"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// StartOfWeek returns midnight of the Monday on or before value.
func StartOfWeek(value time.Time) time.Time {
	offset := (int(value.Weekday()) + 6) % 7
	return StartOfDay(value).AddDate(0, 0, -offset)
}

func StartOfMonth(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped moves value by months calendar months, clamping the day to
// the length of the target month instead of overflowing like time.AddDate.
func AddMonthsClamped(value time.Time, months int) time.Time {
	first := time.Date(value.Year(), value.Month()+time.Month(months), 1, 0, 0, 0, 0, value.Location())
	day := min(value.Day(), DaysInMonth(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, value.Hour(), value.Minute(), value.Second(), value.Nanosecond(), value.Location())
}
