package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for format tags no renderer handles.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format selects an export renderer.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatOrg      Format = "org"
	FormatCSV      Format = "csv"
	FormatExcel    Format = "excel"
)

// Formats lists every supported format in help-text order.
var Formats = []Format{FormatJSON, FormatMarkdown, FormatOrg, FormatCSV, FormatExcel}

// ParseFormat maps a user supplied tag onto a Format.
func ParseFormat(value string) (Format, error) {
	switch normalizeFormat(value) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "org":
		return FormatOrg, nil
	case "csv":
		return FormatCSV, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, value)
	}
}

// FormatFromPath infers the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Grouped reports whether the format renders entries under date headings.
func (f Format) Grouped() bool {
	return f == FormatMarkdown || f == FormatOrg
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
