package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"captainslog/journal"
)

type stubSource struct {
	entries []journal.Entry
	err     error
	calls   int
	order   journal.SortOrder
	filter  journal.Filter
}

func (s *stubSource) ListEntries(filter journal.Filter, order journal.SortOrder) ([]journal.Entry, error) {
	s.calls++
	s.filter = filter
	s.order = order
	return s.entries, s.err
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)
}

func TestExporter_UnsupportedFormatCreatesNoFile(t *testing.T) {
	t.Parallel()

	source := &stubSource{}
	path := filepath.Join(t.TempDir(), "out.pdf")
	exporter := NewExporter(source, ExporterOptions{Version: "dev", Now: fixedNow})

	_, err := exporter.Export(journal.Filter{}, Format("pdf"), path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file at destination, stat returned %v", statErr)
	}
	if source.calls != 0 {
		t.Fatalf("expected no store query, got %d", source.calls)
	}
}

func TestExporter_WritesEmptyJSONDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	exporter := NewExporter(&stubSource{}, ExporterOptions{Version: "0.9.0", Now: fixedNow})

	count, err := exporter.Export(journal.Filter{Journal: "Nobody"}, FormatJSON, path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 entries, got %d", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"version": "0.9.0"`) {
		t.Fatalf("expected version marker, got:\n%s", data)
	}
	if !strings.Contains(string(data), `"entries": []`) {
		t.Fatalf("expected empty entries, got:\n%s", data)
	}
}

func TestExporter_QueriesOldestFirstWithCallerFilter(t *testing.T) {
	t.Parallel()

	since := journal.NewDateKey(2025, 1, 1)
	source := &stubSource{entries: fixtureEntries(t)}
	exporter := NewExporter(source, ExporterOptions{Now: fixedNow})

	var buf bytes.Buffer
	filter := journal.Filter{Journal: "Work", Since: &since}
	count, err := exporter.ExportTo(filter, FormatOrg, &buf)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 entries, got %d", count)
	}
	if source.order != journal.OldestFirst {
		t.Fatalf("expected oldest-first query")
	}
	if source.filter.Journal != "Work" || source.filter.Since == nil || *source.filter.Since != since {
		t.Fatalf("filter not passed through: %+v", source.filter)
	}
	if !strings.HasPrefix(buf.String(), "* Wednesday, 01/01/2025\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestExporter_TruncatesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.md")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale\n", 500)), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	exporter := NewExporter(&stubSource{entries: fixtureEntries(t)[2:]}, ExporterOptions{Now: fixedNow})
	if _, err := exporter.Export(journal.Filter{}, FormatMarkdown, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Fatalf("expected previous content to be replaced")
	}
}

func TestExporter_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("database is locked")
	path := filepath.Join(t.TempDir(), "out.json")
	exporter := NewExporter(&stubSource{err: storeErr}, ExporterOptions{Now: fixedNow})

	_, err := exporter.Export(journal.Filter{}, FormatJSON, path)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file after store failure")
	}
}

func TestExporter_MissingDirectoryIsWriteError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.json")
	exporter := NewExporter(&stubSource{}, ExporterOptions{Now: fixedNow})

	_, err := exporter.Export(journal.Filter{}, FormatJSON, path)
	if err == nil {
		t.Fatalf("expected write error")
	}
	if !strings.Contains(err.Error(), "write export "+path) {
		t.Fatalf("expected destination in error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}
