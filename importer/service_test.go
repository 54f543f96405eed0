package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"captainslog/journal"
	"captainslog/output"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func exportFixture(t *testing.T) []journal.Entry {
	t.Helper()
	return []journal.Entry{
		{
			ID:        1,
			Timestamp: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			Title:     journal.StringPtr("Morning"),
			Content:   "Hello **world**\n\n- one\n- two",
			Journal:   "Work",
		},
		{
			ID:         2,
			Timestamp:  time.Date(2025, 1, 2, 18, 30, 0, 0, time.UTC),
			Content:    "Read [the docs](https://go.dev/doc/) today",
			ImagePaths: []string{"a.png", "b.png"},
			Journal:    "Personal",
		},
	}
}

func TestRun_OrgRoundTripsExport(t *testing.T) {
	t.Parallel()

	renderer, err := output.RendererFor(output.FormatOrg)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	data, err := renderer.Render(exportFixture(t), output.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := writeFile(t, t.TempDir(), "journal.org", data)

	result, err := Run([]string{path}, "", RunOptions{DefaultJournal: "Imported"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.FilesProcessed != 1 || result.RowsRead != 2 || result.RowsMapped != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}

	first := result.Entries[0]
	if !first.Timestamp.Equal(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %s", first.Timestamp)
	}
	if first.TitleOrEmpty() != "Morning" {
		t.Fatalf("unexpected title %q", first.TitleOrEmpty())
	}
	if first.Content != "Hello **world**\n\n- one\n- two" {
		t.Fatalf("unexpected content %q", first.Content)
	}
	if first.Journal != "Imported" {
		t.Fatalf("expected default journal, got %q", first.Journal)
	}

	second := result.Entries[1]
	if second.Title != nil {
		t.Fatalf("expected untitled entry, got %q", *second.Title)
	}
	if second.Content != "Read [the docs](https://go.dev/doc/) today" {
		t.Fatalf("unexpected content %q", second.Content)
	}
}

func TestRun_OrgExportOfNestedBlocksIsStable(t *testing.T) {
	t.Parallel()

	renderer, err := output.RendererFor(output.FormatOrg)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	entries := []journal.Entry{{
		ID:        1,
		Timestamp: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		Title:     journal.StringPtr("Plans"),
		Content:   "# Agenda\n\n- step one\n\n  ```sh\n  make build\n  ```\n\n> # Note\n> stay *calm*\n> - breathe",
		Journal:   "Work",
	}}
	exported, err := renderer.Render(entries, output.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"\n*** Agenda\n", "\n     #+BEGIN_SRC sh\n     make build\n", "\n   *Note*\n"} {
		if !strings.Contains(string(exported), want) {
			t.Fatalf("expected %q in export:\n%s", want, exported)
		}
	}

	path := writeFile(t, t.TempDir(), "journal.org", exported)
	result, err := Run([]string{path}, "", RunOptions{DefaultJournal: "Work"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(result.Entries))
	}

	again, err := renderer.Render(result.Entries, output.RenderOptions{})
	if err != nil {
		t.Fatalf("render imported: %v", err)
	}
	if string(again) != string(exported) {
		t.Fatalf("export changed after import\nfirst:\n%s\nsecond:\n%s", exported, again)
	}
}

func TestRun_CSVRoundTripsExport(t *testing.T) {
	t.Parallel()

	data, err := (&output.CSVRenderer{}).Render(exportFixture(t), output.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := writeFile(t, t.TempDir(), "journal.csv", data)

	result, err := Run([]string{path}, "", RunOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	if result.Entries[0].Journal != "Work" || result.Entries[1].Journal != "Personal" {
		t.Fatalf("expected journals from file, got %q and %q", result.Entries[0].Journal, result.Entries[1].Journal)
	}
	if got := result.Entries[1].ImagePaths; len(got) != 2 || got[1] != "b.png" {
		t.Fatalf("unexpected image paths %v", got)
	}
	if result.Entries[0].Content != "Hello **world**\n\n- one\n- two" {
		t.Fatalf("unexpected content %q", result.Entries[0].Content)
	}
}

func TestRun_ExcelRoundTripsExport(t *testing.T) {
	t.Parallel()

	data, err := (&output.ExcelRenderer{}).Render(exportFixture(t), output.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	path := writeFile(t, t.TempDir(), "journal.xlsx", data)

	result, err := Run([]string{path}, "", RunOptions{Journal: "Archive"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Entries))
	}
	for _, entry := range result.Entries {
		if entry.Journal != "Archive" {
			t.Fatalf("expected journal override, got %q", entry.Journal)
		}
	}
}

func TestRun_DateFilterSkipsOtherDays(t *testing.T) {
	t.Parallel()

	data, _ := (&output.CSVRenderer{}).Render(exportFixture(t), output.RenderOptions{})
	path := writeFile(t, t.TempDir(), "journal.csv", data)

	day := journal.NewDateKey(2025, time.January, 2)
	result, err := Run([]string{path}, "csv", RunOptions{Date: &day})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.RowsMapped != 1 || result.RowsSkipped != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Entries[0].DateKey() != day {
		t.Fatalf("unexpected entry date %s", result.Entries[0].DateKey())
	}
}

func TestRun_UnknownExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "notes.txt", []byte("hello"))
	if _, err := Run([]string{path}, "", RunOptions{}); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}

func TestTabularParser_ReportsBadRows(t *testing.T) {
	t.Parallel()

	content := "Timestamp,Title,Content\n" +
		"2025-01-01T09:00:00Z,Ok,fine\n" +
		"not a date,Broken,bad\n" +
		"2025-01-02T09:00:00Z,,\n"
	path := writeFile(t, t.TempDir(), "rows.csv", []byte(content))

	parser, err := ParserForFormat("csv")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	parsed, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Read != 3 || len(parsed.Entries) != 1 || parsed.Skipped != 2 {
		t.Fatalf("unexpected result: %+v", parsed)
	}
	if len(parsed.Problems) != 1 {
		t.Fatalf("expected one problem, got %v", parsed.Problems)
	}
}
