package journal

import "strings"

// Filter holds the optional criteria of a query. Every supplied predicate must
// hold; Date combined with Since/Until is applied conjunctively as well. Query
// is a case-insensitive substring of the title or content.
type Filter struct {
	Journal string
	Date    *DateKey
	Since   *DateKey
	Until   *DateKey
	Query   string
}

// SortOrder selects the timestamp ordering of query results.
type SortOrder int

const (
	OldestFirst SortOrder = iota
	NewestFirst
)

// Empty reports whether the filter has no criteria.
func (f Filter) Empty() bool {
	return f.Journal == "" && f.Date == nil && f.Since == nil && f.Until == nil && strings.TrimSpace(f.Query) == ""
}

// Matches applies the filter to one entry in memory.
func (f Filter) Matches(entry Entry) bool {
	if f.Journal != "" && entry.Journal != f.Journal {
		return false
	}

	day := entry.DateKey()
	if f.Date != nil && day != *f.Date {
		return false
	}
	if f.Since != nil && day.Before(*f.Since) {
		return false
	}
	if f.Until != nil && day.After(*f.Until) {
		return false
	}

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		inTitle := strings.Contains(strings.ToLower(entry.TitleOrEmpty()), query)
		inContent := strings.Contains(strings.ToLower(entry.Content), query)
		if !inTitle && !inContent {
			return false
		}
	}
	return true
}
