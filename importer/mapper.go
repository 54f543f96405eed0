package importer

import (
	"fmt"
	"strings"

	"captainslog/journal"
)

// mapRecord turns one tabular row into an entry. Rows without title and
// content are skipped. IDs and bookkeeping timestamps are assigned by the
// store, so the ID, Stardate, CreatedAt and UpdatedAt columns are ignored.
func mapRecord(record Record) (*journal.Entry, bool, error) {
	title := record.Get("title")
	content := strings.TrimSpace(record.Raw("content", "text", "body"))
	if title == "" && content == "" {
		return nil, false, nil
	}

	timestamp, err := parseTimestamp(record.Get("timestamp", "date", "creationdate"))
	if err != nil {
		return nil, false, fmt.Errorf("row %d: parse timestamp: %w", record.RowNumber, err)
	}

	entry := &journal.Entry{
		Timestamp:  timestamp,
		Title:      journal.StringPtr(title),
		Content:    content,
		AudioPath:  journal.StringPtr(record.Get("audiopath", "audio")),
		ImagePaths: parseImagePaths(record.Get("imagepaths", "images")),
		Journal:    record.Get("journal"),
	}
	return entry, true, nil
}
