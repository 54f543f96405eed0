package journal

import "time"

// DefaultJournal is the category entries land in when none is given.
const DefaultJournal = "Personal"

// Entry is one journal record as stored and exported.
type Entry struct {
	ID         int64
	Timestamp  time.Time
	Title      *string
	Content    string
	AudioPath  *string
	ImagePaths []string
	Journal    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DateKey returns the UTC calendar date of the entry timestamp.
func (e Entry) DateKey() DateKey {
	return DateKeyOf(e.Timestamp)
}

func (e Entry) TitleOrEmpty() string {
	if e.Title == nil {
		return ""
	}
	return *e.Title
}

// StringPtr returns nil for blank values so optional columns stay NULL.
func StringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// JournalOrDefault maps an empty category to DefaultJournal.
func JournalOrDefault(name string) string {
	if name == "" {
		return DefaultJournal
	}
	return name
}
