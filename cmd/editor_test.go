package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"captainslog/internal/frontmatter"
	"captainslog/journal"
)

func TestEditorTempPathIsUnique(t *testing.T) {
	dir := t.TempDir()
	first := editorTempPath(dir)
	second := editorTempPath(dir)

	if first == second {
		t.Fatalf("expected unique temp paths, got %q twice", first)
	}
	if filepath.Dir(first) != dir || !strings.HasPrefix(filepath.Base(first), "captainslog-") || filepath.Ext(first) != ".md" {
		t.Fatalf("unexpected temp path %q", first)
	}
}

func TestEditDocumentReadsEditedBuffer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("editor script requires a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	body := "#!/bin/sh\nprintf '%s\\n' '---' 'journal: Work' 'timestamp: 2025-01-02T07:15:00Z' '---' '' '# Edited' '' 'New body' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o700); err != nil {
		t.Fatalf("write editor script: %v", err)
	}

	doc, err := editDocument(script, frontmatter.Document{
		Metadata: frontmatter.Metadata{Journal: "Personal", Timestamp: time.Date(2025, time.January, 1, 9, 36, 0, 0, time.UTC)},
		Title:    "Original",
		Content:  "Old body",
	})
	if err != nil {
		t.Fatalf("edit document: %v", err)
	}

	if doc.Metadata.Journal != "Work" {
		t.Fatalf("expected journal Work, got %q", doc.Metadata.Journal)
	}
	if want := time.Date(2025, time.January, 2, 7, 15, 0, 0, time.UTC); !doc.Metadata.Timestamp.Equal(want) {
		t.Fatalf("expected timestamp %s, got %s", want, doc.Metadata.Timestamp)
	}
	if doc.Title != "Edited" || doc.Content != "New body" {
		t.Fatalf("unexpected title/content: %q / %q", doc.Title, doc.Content)
	}
}

func TestEditDocumentFailsWhenEditorFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("editor script requires a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "failing-editor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o700); err != nil {
		t.Fatalf("write editor script: %v", err)
	}

	_, err := editDocument(script, frontmatter.Document{
		Metadata: frontmatter.Metadata{Journal: "Personal", Timestamp: time.Now()},
		Content:  "body",
	})
	if err == nil || !strings.Contains(err.Error(), "opening editor failed") {
		t.Fatalf("expected editor failure, got %v", err)
	}
}

func TestApplyDocument(t *testing.T) {
	entry := journal.Entry{ID: 9, Title: journal.StringPtr("Old"), Content: "old", Journal: "Personal", ImagePaths: []string{"a.png"}}
	doc := frontmatter.Document{
		Metadata: frontmatter.Metadata{Journal: "", Timestamp: time.Date(2025, time.January, 1, 9, 36, 0, 0, time.FixedZone("CET", 3600))},
		Title:    "",
		Content:  "new",
	}

	got := applyDocument(entry, doc)

	if got.ID != 9 || len(got.ImagePaths) != 1 {
		t.Fatalf("expected untouched id and images, got %+v", got)
	}
	if got.Journal != journal.DefaultJournal {
		t.Fatalf("expected default journal, got %q", got.Journal)
	}
	if got.Title != nil {
		t.Fatalf("expected cleared title, got %q", *got.Title)
	}
	if got.Timestamp.Location() != time.UTC || got.Timestamp.Hour() != 8 {
		t.Fatalf("expected UTC timestamp, got %s", got.Timestamp)
	}
	if got.Content != "new" {
		t.Fatalf("unexpected content %q", got.Content)
	}
}
