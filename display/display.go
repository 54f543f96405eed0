package display

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/ncruces/go-strftime"
	"golang.org/x/term"

	"captainslog/stardate"
)

const (
	DefaultWidth      = 80
	minWidth          = 40
	previewWidth      = 40
	previewEllipsis   = "..."
	ruleWidth         = 60
	defaultDateFormat = "%Y-%m-%d %H:%M:%S"
)

// Options controls how entries are printed.
type Options struct {
	Stardate   bool
	Colors     bool
	DateFormat string
	Width      int
	// Location for formatted timestamps; nil means time.Local.
	Location *time.Location
}

// Printer writes entries, entry lists and calendars to one writer.
type Printer struct {
	out    io.Writer
	opts   Options
	styles styles
}

type styles struct {
	id       lipgloss.Style
	date     lipgloss.Style
	fraction lipgloss.Style
	title    lipgloss.Style
	label    lipgloss.Style
	journal  lipgloss.Style
	rule     lipgloss.Style
	heading  lipgloss.Style
	marked   lipgloss.Style
	notice   lipgloss.Style
}

// NewPrinter returns a Printer for w. Colours are only emitted when enabled
// and w is a terminal.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if strings.TrimSpace(opts.DateFormat) == "" {
		opts.DateFormat = defaultDateFormat
	}
	opts.Colors = opts.Colors && isTerminal(w)
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Width <= 0 {
		opts.Width = terminalWidth(w)
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(colorProfile(opts.Colors))

	return &Printer{
		out:    w,
		opts:   opts,
		styles: newStyles(renderer),
	}
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		id:       r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		date:     r.NewStyle().Foreground(lipgloss.Color("252")),
		fraction: r.NewStyle().Faint(true),
		title:    r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		label:    r.NewStyle().Foreground(lipgloss.Color("44")).Bold(true),
		journal:  r.NewStyle().Foreground(lipgloss.Color("178")),
		rule:     r.NewStyle().Foreground(lipgloss.Color("39")),
		heading:  r.NewStyle().Foreground(lipgloss.Color("44")).Bold(true),
		marked:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		notice:   r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func colorProfile(enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

// Notice prints a single highlighted status line.
func (p *Printer) Notice(message string) {
	writeLine(p.out, p.styles.notice.Render(message))
}

// Timestamp formats t in the configured location with the strftime layout, or
// as a stardate with a de-emphasized fraction in stardate mode.
func (p *Printer) Timestamp(t time.Time) string {
	if p.opts.Stardate {
		return p.Stardate(stardate.ToStardate(t))
	}
	return p.styles.date.Render(strftime.Format(p.opts.DateFormat, t.In(p.opts.Location)))
}

func (p *Printer) Stardate(value stardate.Value) string {
	whole, fraction := value.Split(stardate.DisplayDigits)
	return p.styles.date.Render(whole) + p.styles.fraction.Render("."+fraction)
}

func (p *Printer) rule(width int) string {
	return p.styles.rule.Render(strings.Repeat("─", width))
}

func writeLine(w io.Writer, text string) {
	_, _ = io.WriteString(w, text+"\n")
}
