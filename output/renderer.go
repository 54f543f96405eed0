package output

import (
	"fmt"
	"time"

	"captainslog/journal"
)

// RenderOptions carries the per-export values a renderer may embed.
type RenderOptions struct {
	Version     string
	GeneratedAt time.Time
	Stardate    bool
}

// Renderer turns an ordered entry sequence into a complete document.
type Renderer interface {
	Render(entries []journal.Entry, opts RenderOptions) ([]byte, error)
	Extension() string
}

// groupRenderer renders one date group at a time. Formats built on it get
// their grouping from journal.GroupByDate.
type groupRenderer interface {
	renderGroup(buf *documentBuffer, group journal.DateGroup, opts RenderOptions)
}

// grouped adapts a groupRenderer into a Renderer.
type grouped struct {
	group     groupRenderer
	extension string
}

func (g grouped) Render(entries []journal.Entry, opts RenderOptions) ([]byte, error) {
	buf := &documentBuffer{}
	for _, group := range journal.GroupByDate(entries) {
		if len(group.Entries) == 0 {
			continue
		}
		g.group.renderGroup(buf, group, opts)
	}
	return buf.Bytes(), nil
}

func (g grouped) Extension() string {
	return g.extension
}

// RendererFor returns the renderer for format.
func RendererFor(format Format) (Renderer, error) {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatMarkdown:
		return grouped{group: &MarkdownRenderer{}, extension: "md"}, nil
	case FormatOrg:
		return grouped{group: &OrgRenderer{}, extension: "org"}, nil
	case FormatCSV:
		return &CSVRenderer{}, nil
	case FormatExcel:
		return &ExcelRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
