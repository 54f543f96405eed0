package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"captainslog/journal"
)

// DayOneParser reads the JSON document of a Day One export.
type DayOneParser struct{}

type dayOneExport struct {
	Entries []dayOneEntry `json:"entries"`
}

type dayOneEntry struct {
	UUID         string `json:"uuid"`
	CreationDate string `json:"creationDate"`
	Text         string `json:"text"`
	RichText     string `json:"richText"`
}

type dayOneRichText struct {
	Contents []struct {
		Text       string `json:"text"`
		Attributes *struct {
			Line *struct {
				Header *int `json:"header"`
			} `json:"line"`
		} `json:"attributes"`
	} `json:"contents"`
}

func (p *DayOneParser) Parse(path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dayone file %s: %w", path, err)
	}
	return parseDayOne(data)
}

func parseDayOne(data []byte) (*FileResult, error) {
	var export dayOneExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse dayone json: %w", err)
	}

	result := &FileResult{Entries: make([]journal.Entry, 0, len(export.Entries))}
	seen := make(map[uuid.UUID]struct{}, len(export.Entries))
	for i, raw := range export.Entries {
		result.Read++

		if id, err := uuid.Parse(raw.UUID); err == nil {
			if _, dup := seen[id]; dup {
				result.Skipped++
				result.Problems = append(result.Problems, fmt.Sprintf("entry %d: duplicate uuid %s", i+1, raw.UUID))
				continue
			}
			seen[id] = struct{}{}
		}

		timestamp, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.CreationDate))
		if err != nil {
			result.Skipped++
			result.Problems = append(result.Problems, fmt.Sprintf("entry %d: parse creation date %q: %v", i+1, raw.CreationDate, err))
			continue
		}

		title := norm.NFC.String(titleFromRichText(raw.RichText))
		content := norm.NFC.String(strings.TrimSpace(raw.Text))
		if title != "" {
			content = stripLeadingHeading(content, title)
		}
		if title == "" && content == "" {
			result.Skipped++
			continue
		}

		result.Entries = append(result.Entries, journal.Entry{
			Timestamp: timestamp.UTC(),
			Title:     journal.StringPtr(title),
			Content:   content,
		})
	}
	return result, nil
}

// titleFromRichText returns the text of the first header block.
func titleFromRichText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	var rich dayOneRichText
	if err := json.Unmarshal([]byte(raw), &rich); err != nil {
		return ""
	}
	for _, block := range rich.Contents {
		if block.Attributes == nil || block.Attributes.Line == nil || block.Attributes.Line.Header == nil {
			continue
		}
		if title := strings.TrimSpace(block.Text); title != "" {
			return title
		}
	}
	return ""
}

// stripLeadingHeading drops a first line that repeats the title.
func stripLeadingHeading(content, title string) string {
	first, rest, _ := strings.Cut(content, "\n")
	if strings.TrimSpace(strings.TrimLeft(first, "#")) == title {
		return strings.TrimSpace(rest)
	}
	return content
}
