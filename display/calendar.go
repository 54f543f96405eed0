package display

import (
	"fmt"
	"strings"
	"time"

	"captainslog/internal/timeutil"
	"captainslog/journal"
	"captainslog/stardate"
)

const (
	calendarWidth  = 21
	calendarHeader = "Mo Tu We Th Fr Sa Su"
)

// Calendar prints a Monday-first month grid with days that have entries
// marked by "*", followed by the month's entries.
func (p *Printer) Calendar(year int, month time.Month, entries []journal.Entry) {
	marked := make(map[int]journal.DailySummary)
	var words int
	for _, summary := range journal.BuildDailySummaries(entries) {
		if summary.Date.Year == year && summary.Date.Month == month {
			marked[summary.Date.Day] = summary
			words += summary.WordCount
		}
	}

	first := timeutil.StartOfMonth(time.Date(year, month, 15, 0, 0, 0, 0, time.UTC))
	heading := fmt.Sprintf("%s %d", month, year)
	if p.opts.Stardate {
		heading += " (Stardate " + p.Stardate(stardate.ToStardate(first)) + ")"
	}

	writeLine(p.out, "")
	writeLine(p.out, p.styles.heading.Render(heading))
	writeLine(p.out, p.rule(calendarWidth))
	writeLine(p.out, calendarHeader)

	var line strings.Builder
	offset := (int(first.Weekday()) + 6) % 7
	line.WriteString(strings.Repeat("   ", offset))
	days := timeutil.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		if _, ok := marked[day]; ok {
			line.WriteString(p.styles.marked.Render(fmt.Sprintf("%2d*", day)))
		} else {
			fmt.Fprintf(&line, "%2d ", day)
		}
		if (offset+day)%7 == 0 || day == days {
			writeLine(p.out, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}

	writeLine(p.out, p.rule(calendarWidth))
	writeLine(p.out, "")
	writeLine(p.out, p.styles.marked.Render("*")+" = has entries")

	if len(entries) == 0 {
		return
	}
	writeLine(p.out, "")
	writeLine(p.out, p.styles.heading.Render(fmt.Sprintf("Entries for %d/%02d: %d on %d days, %d words", year, int(month), len(entries), len(marked), words)))
	writeLine(p.out, "")
	p.EntryList(entries)
}
