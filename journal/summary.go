package journal

import (
	"sort"
	"strings"
	"time"
)

// DailySummary aggregates the entries of one calendar date.
type DailySummary struct {
	Date       DateKey
	First      time.Time
	Last       time.Time
	EntryCount int
	WordCount  int
	Journals   []string
}

// BuildDailySummaries returns one summary per date in ascending date order.
func BuildDailySummaries(entries []Entry) []DailySummary {
	groups := GroupByDate(entries)
	summaries := make([]DailySummary, 0, len(groups))
	for _, group := range groups {
		summaries = append(summaries, summarizeDay(group))
	}
	return summaries
}

func summarizeDay(group DateGroup) DailySummary {
	summary := DailySummary{
		Date:       group.Date,
		EntryCount: len(group.Entries),
	}

	seen := make(map[string]struct{})
	for i, entry := range group.Entries {
		if i == 0 || entry.Timestamp.Before(summary.First) {
			summary.First = entry.Timestamp
		}
		if i == 0 || entry.Timestamp.After(summary.Last) {
			summary.Last = entry.Timestamp
		}
		summary.WordCount += len(strings.Fields(entry.Content))
		if _, ok := seen[entry.Journal]; !ok {
			seen[entry.Journal] = struct{}{}
			summary.Journals = append(summary.Journals, entry.Journal)
		}
	}
	sort.Strings(summary.Journals)
	return summary
}
