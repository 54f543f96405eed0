package importer

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"captainslog/journal"
)

var orgDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// OrgParser reads org-journal files: "* Weekday, DD/MM/YYYY" date headings,
// an optional property drawer and "** HH:MM Title" entries. Entry bodies are
// converted to markdown.
type OrgParser struct{}

func (p *OrgParser) Parse(path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read org file %s: %w", path, err)
	}
	return parseOrgJournal(string(data)), nil
}

func parseOrgJournal(content string) *FileResult {
	result := &FileResult{Entries: make([]journal.Entry, 0, 32)}
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var (
		currentDate *journal.DateKey
		pending     *journal.Entry
		body        []string
	)
	flush := func() {
		if pending == nil {
			return
		}
		pending.Content = convertOrgToMarkdown(dedent(body))
		result.Entries = append(result.Entries, *pending)
		pending = nil
		body = nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "* "):
			flush()
			currentDate = parseOrgDateHeading(strings.TrimPrefix(line, "* "))
			if currentDate == nil {
				result.Problems = append(result.Problems, fmt.Sprintf("line %d: unrecognized date heading %q", i+1, line))
			}
			i = skipPropertyDrawer(lines, i+1) - 1

		case strings.HasPrefix(line, "** "):
			flush()
			result.Read++
			if currentDate == nil {
				result.Skipped++
				continue
			}
			entry, err := parseOrgEntryHeading(*currentDate, strings.TrimPrefix(line, "** "))
			if err != nil {
				result.Skipped++
				result.Problems = append(result.Problems, fmt.Sprintf("line %d: %v", i+1, err))
				continue
			}
			pending = entry

		default:
			if pending != nil {
				body = append(body, line)
			}
		}
	}
	flush()

	return result
}

// skipPropertyDrawer returns the index of the first line after a
// :PROPERTIES: drawer starting at from, or from when there is none.
func skipPropertyDrawer(lines []string, from int) int {
	if from >= len(lines) || strings.TrimSpace(lines[from]) != ":PROPERTIES:" {
		return from
	}
	for i := from + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == ":END:" {
			return i + 1
		}
	}
	return from
}

func parseOrgDateHeading(heading string) *journal.DateKey {
	match := orgDatePattern.FindStringSubmatch(heading)
	if match == nil {
		key, err := journal.ParseDateKey(strings.TrimSpace(heading))
		if err != nil {
			return nil
		}
		return &key
	}

	parsed, err := time.Parse("2/1/2006", match[1]+"/"+match[2]+"/"+match[3])
	if err != nil {
		return nil
	}
	key := journal.DateKeyOf(parsed)
	return &key
}

func parseOrgEntryHeading(date journal.DateKey, heading string) (*journal.Entry, error) {
	clock, title, _ := strings.Cut(strings.TrimSpace(heading), " ")
	hour, minute, err := parseClock(clock)
	if err != nil {
		return nil, err
	}

	return &journal.Entry{
		Timestamp: time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.UTC),
		Title:     journal.StringPtr(strings.TrimSpace(title)),
	}, nil
}
