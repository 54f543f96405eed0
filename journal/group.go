package journal

import "sort"

// DateGroup is the set of entries that share one calendar date.
type DateGroup struct {
	Date    DateKey
	Entries []Entry
}

// GroupByDate buckets entries by the UTC calendar date of their timestamp.
// Groups come out in ascending date order and each group keeps the relative
// order of its entries from the input.
func GroupByDate(entries []Entry) []DateGroup {
	if len(entries) == 0 {
		return []DateGroup{}
	}

	byDay := make(map[DateKey][]Entry)
	days := make([]DateKey, 0, 16)
	for _, entry := range entries {
		day := entry.DateKey()
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], entry)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	groups := make([]DateGroup, 0, len(days))
	for _, day := range days {
		groups = append(groups, DateGroup{Date: day, Entries: byDay[day]})
	}
	return groups
}
