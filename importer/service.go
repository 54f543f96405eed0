package importer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"captainslog/journal"
)

const (
	FormatOrg    = "org"
	FormatDayOne = "dayone"
	FormatCSV    = "csv"
	FormatExcel  = "excel"
)

// SupportedFormats lists the accepted --format values.
func SupportedFormats() []string {
	return []string{FormatOrg, FormatDayOne, FormatCSV, FormatExcel}
}

// FileResult is what a parser extracted from one file.
type FileResult struct {
	Read     int
	Skipped  int
	Entries  []journal.Entry
	Problems []string
}

// Parser extracts entries from one source file.
type Parser interface {
	Parse(path string) (*FileResult, error)
}

// TabularParser maps csv and excel rows through a Reader.
type TabularParser struct {
	Reader Reader
}

func (p *TabularParser) Parse(path string) (*FileResult, error) {
	records, err := p.Reader.Read(path)
	if err != nil {
		return nil, err
	}

	result := &FileResult{Read: len(records), Entries: make([]journal.Entry, 0, len(records))}
	for _, record := range records {
		entry, ok, mapErr := mapRecord(record)
		if mapErr != nil {
			result.Skipped++
			result.Problems = append(result.Problems, mapErr.Error())
			continue
		}
		if !ok || entry == nil {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, *entry)
	}
	return result, nil
}

func ParserForFormat(format string) (Parser, error) {
	switch normalizeHeader(format) {
	case FormatOrg:
		return &OrgParser{}, nil
	case FormatDayOne, "json":
		return &DayOneParser{}, nil
	case FormatCSV, FormatExcel, "xlsx", "xlsm":
		reader, err := ReaderForFormat(format)
		if err != nil {
			return nil, err
		}
		return &TabularParser{Reader: reader}, nil
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}
}

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	Entries        []journal.Entry
	Problems       []string
}

type RunOptions struct {
	// Journal overrides the journal of every imported entry.
	Journal string
	// DefaultJournal is used for entries whose source names no journal.
	DefaultJournal string
	// Date keeps only entries on this UTC calendar date.
	Date   *journal.DateKey
	Logger *slog.Logger
}

// Run parses every path and returns the entries to persist. Format may be
// empty, in which case it is inferred per file from its extension.
func Run(paths []string, format string, options RunOptions) (*Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	filter := journal.Filter{Date: options.Date}

	result := &Result{Entries: make([]journal.Entry, 0, 256)}
	for _, path := range paths {
		sourceFormat, err := inferFormat(path, format)
		if err != nil {
			return nil, err
		}
		parser, err := ParserForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		parsed, err := parser.Parse(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += parsed.Read
		result.RowsSkipped += parsed.Skipped
		for _, problem := range parsed.Problems {
			result.Problems = append(result.Problems, fmt.Sprintf("%s: %s", path, problem))
		}

		for _, entry := range parsed.Entries {
			if !filter.Matches(entry) {
				result.RowsSkipped++
				continue
			}
			entry.Journal = resolveJournal(entry.Journal, options)
			result.RowsMapped++
			result.Entries = append(result.Entries, entry)
		}

		logger.Debug("import file parsed", "path", path, "format", sourceFormat, "read", parsed.Read, "entries", len(parsed.Entries), "skipped", parsed.Skipped)
	}

	return result, nil
}

func resolveJournal(fromSource string, options RunOptions) string {
	return journal.JournalOrDefault(firstNonEmpty(options.Journal, fromSource, options.DefaultJournal))
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "org":
		return FormatOrg, nil
	case "json":
		return FormatDayOne, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx", "xlsm":
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
