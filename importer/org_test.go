package importer

import (
	"strings"
	"testing"
	"time"

	"captainslog/journal"
)

func TestParseOrgJournal(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"* Sunday, 07/09/2025",
		":PROPERTIES:",
		":CREATED:  20250907",
		":END:",
		"** 14:30 My Title",
		"   First line with *bold* and /italic/",
		"   *** Details",
		"   ~code~ and +gone+",
		"** 16:00",
		"   #+BEGIN_SRC go",
		"   fmt.Println(\"hi\")",
		"   #+END_SRC",
		"** noon Broken",
		"* Monday, 08/09/2025",
		"** 08:15 Quote",
		"   #+BEGIN_QUOTE",
		"   To be",
		"   #+END_QUOTE",
	}, "\n")

	result := parseOrgJournal(content)
	if result.Read != 4 || len(result.Entries) != 3 || result.Skipped != 1 {
		t.Fatalf("unexpected result: read=%d entries=%d skipped=%d", result.Read, len(result.Entries), result.Skipped)
	}

	first := result.Entries[0]
	if !first.Timestamp.Equal(time.Date(2025, 9, 7, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected timestamp %s", first.Timestamp)
	}
	if first.TitleOrEmpty() != "My Title" {
		t.Fatalf("unexpected title %q", first.TitleOrEmpty())
	}
	wantFirst := "First line with **bold** and *italic*\n# Details\n`code` and ~~gone~~"
	if first.Content != wantFirst {
		t.Fatalf("unexpected content:\n%s", first.Content)
	}

	second := result.Entries[1]
	if second.Title != nil {
		t.Fatalf("expected no title, got %q", *second.Title)
	}
	if second.Content != "```go\nfmt.Println(\"hi\")\n```" {
		t.Fatalf("unexpected code content:\n%s", second.Content)
	}

	third := result.Entries[2]
	if third.DateKey() != journal.NewDateKey(2025, time.September, 8) {
		t.Fatalf("unexpected date %s", third.DateKey())
	}
	if third.Content != "> To be" {
		t.Fatalf("unexpected quote content %q", third.Content)
	}
}

func TestParseOrgDateHeading(t *testing.T) {
	t.Parallel()

	got := parseOrgDateHeading("Saturday, 07/09/2025")
	if got == nil || *got != journal.NewDateKey(2025, time.September, 7) {
		t.Fatalf("unexpected date %v", got)
	}
	if parseOrgDateHeading("Someday") != nil {
		t.Fatalf("expected nil for unparseable heading")
	}
	if got := parseOrgDateHeading("2025-09-07"); got == nil || got.Day != 7 {
		t.Fatalf("expected iso heading to parse, got %v", got)
	}
}

func TestConvertOrgToMarkdown_LeavesLinkTargets(t *testing.T) {
	t.Parallel()

	got := convertOrgToMarkdown([]string{"see [[https://a.io/x/y/][the /site/]] and [[https://b.io]]"})
	want := "see [the *site*](https://a.io/x/y/) and <https://b.io>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestConvertOrgToMarkdown_KeepsBlocksInsideListItems(t *testing.T) {
	t.Parallel()

	got := convertOrgToMarkdown([]string{
		"• step one",
		"  #+BEGIN_SRC sh",
		"  make build",
		"  #+END_SRC",
		"• item",
		"  #+BEGIN_QUOTE",
		"  quoted advice",
		"  #+END_QUOTE",
	})
	want := strings.Join([]string{
		"- step one",
		"  ```sh",
		"  make build",
		"  ```",
		"- item",
		"  > quoted advice",
	}, "\n")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
