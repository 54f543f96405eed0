package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"captainslog/journal"
)

// EntryList prints one summary line per entry.
func (p *Printer) EntryList(entries []journal.Entry) {
	for _, entry := range entries {
		writeLine(p.out, p.Summary(entry))
	}
}

// Summary renders the one-line form used by list, search and calendar.
func (p *Printer) Summary(entry journal.Entry) string {
	parts := []string{
		p.styles.id.Render(fmt.Sprintf("[%d]", entry.ID)),
		p.Timestamp(entry.Timestamp),
		p.styles.journal.Render("(" + entry.Journal + ")"),
	}
	line := strings.Join(parts, " ")

	if title := entry.TitleOrEmpty(); title != "" {
		line += " - " + p.styles.title.Render(title)
	}
	if preview := Preview(entry.Content, previewWidth); preview != "" {
		line += " - " + preview
	}
	return line
}

// Preview flattens content to one line and truncates it to width display
// cells.
func Preview(content string, width int) string {
	flat := strings.Join(strings.Fields(content), " ")
	return runewidth.Truncate(flat, width, previewEllipsis)
}

// Entry prints a single entry with its header and rendered Markdown body.
func (p *Printer) Entry(entry journal.Entry) {
	writeLine(p.out, p.rule(ruleWidth))
	p.field("ID", fmt.Sprintf("%d", entry.ID))
	p.field("Date", p.Timestamp(entry.Timestamp))
	p.field("Journal", entry.Journal)
	if title := entry.TitleOrEmpty(); title != "" {
		p.field("Title", p.styles.title.Render(title))
	}
	if entry.AudioPath != nil {
		p.field("Audio", *entry.AudioPath)
	}
	if len(entry.ImagePaths) > 0 {
		p.field("Images", strings.Join(entry.ImagePaths, ", "))
	}
	writeLine(p.out, p.rule(ruleWidth))
	writeLine(p.out, "")
	writeLine(p.out, strings.TrimRight(p.Markdown(entry.Content), "\n"))
	writeLine(p.out, "")
	writeLine(p.out, p.rule(ruleWidth))
}

func (p *Printer) field(label, value string) {
	writeLine(p.out, p.styles.label.Render(label+":")+" "+value)
}

// Markdown renders content for the terminal. The raw content is returned
// when rendering fails.
func (p *Printer) Markdown(content string) string {
	style := glamour.WithStandardStyle("notty")
	if p.opts.Colors {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(
		style,
		glamour.WithColorProfile(colorProfile(p.opts.Colors)),
		glamour.WithWordWrap(p.opts.Width),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
