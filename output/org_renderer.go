package output

import (
	"strings"

	"captainslog/journal"
)

const orgBodyIndent = "   "

// OrgRenderer writes the org-journal layout: a level-1 heading and a
// property drawer per date, and a level-2 heading per entry.
type OrgRenderer struct{}

func (r *OrgRenderer) renderGroup(buf *documentBuffer, group journal.DateGroup, opts RenderOptions) {
	day := group.Date.Start()
	buf.line("* %s", day.Format("Monday, 02/01/2006"))
	buf.line(":PROPERTIES:")
	buf.line(":CREATED:  %s", day.Format("20060102"))
	buf.line(":END:")

	for _, entry := range group.Entries {
		heading := "** " + entry.Timestamp.UTC().Format("15:04")
		if title := strings.TrimSpace(entry.TitleOrEmpty()); title != "" {
			heading += " " + title
		}
		buf.line("%s", heading)

		lines := markdownToOrg([]byte(entry.Content), 2)
		for _, l := range lines {
			switch {
			case l.text == "":
				buf.blank()
			case l.heading:
				buf.line("%s", l.text)
			default:
				buf.line("%s%s", orgBodyIndent, l.text)
			}
		}
		if len(lines) > 0 {
			buf.blank()
		}
	}
}
