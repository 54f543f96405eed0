package importer

import (
	"fmt"
	"strings"
	"time"

	"captainslog/output"
)

// parseTimestamp reads the timestamp forms found in tabular imports. Values
// without a zone are taken as UTC.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// parseImagePaths splits the image cell written by the tabular exports.
func parseImagePaths(value string) []string {
	paths := []string{}
	for _, part := range strings.Split(value, output.ImagePathSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}

// parseClock reads an HH:MM heading time.
func parseClock(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, 0, fmt.Errorf("parse time %q: %w", value, err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// dedent removes the indentation shared by every non-blank line. Org headings
// at column zero are left alone.
func dedent(lines []string) []string {
	common := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "*") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if common < 0 || indent < common {
			common = indent
		}
	}
	if common <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "*") {
			out[i] = line
			continue
		}
		if len(line) >= common {
			out[i] = line[common:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}
