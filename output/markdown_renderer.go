package output

import (
	"strings"

	"captainslog/journal"
	"captainslog/stardate"
)

const untitled = "Untitled"

// MarkdownRenderer writes one level-2 heading per date and one level-3
// heading per entry.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) renderGroup(buf *documentBuffer, group journal.DateGroup, opts RenderOptions) {
	buf.line("## %s", group.Date.Start().Format("Monday, 02 January 2006"))
	buf.blank()

	for _, entry := range group.Entries {
		title := strings.TrimSpace(entry.TitleOrEmpty())
		if title == "" {
			title = untitled
		}

		when := entry.Timestamp.UTC().Format("15:04")
		if opts.Stardate {
			when = "Stardate " + stardate.ToStardate(entry.Timestamp).String()
		}

		buf.line("### %s - %s", when, title)
		buf.blank()
		if content := strings.TrimRight(entry.Content, "\n"); content != "" {
			buf.line("%s", content)
			buf.blank()
		}
	}
}
