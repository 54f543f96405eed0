package output

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"captainslog/journal"
)

// EntrySource is the query side of the entry store.
type EntrySource interface {
	ListEntries(filter journal.Filter, order journal.SortOrder) ([]journal.Entry, error)
}

type ExporterOptions struct {
	Version  string
	Stardate bool
	Now      func() time.Time
	Logger   *slog.Logger
}

// Exporter queries an EntrySource and writes one rendered document per call.
type Exporter struct {
	source EntrySource
	opts   ExporterOptions
	logger *slog.Logger
}

func NewExporter(source EntrySource, opts ExporterOptions) *Exporter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{source: source, opts: opts, logger: logger}
}

// Export renders the entries matching filter and writes them to path,
// truncating an existing file. The parent directory must exist. It returns
// the number of exported entries.
func (e *Exporter) Export(filter journal.Filter, format Format, path string) (int, error) {
	data, count, err := e.render(filter, format)
	if err != nil {
		return 0, err
	}

	if err := writeFile(path, data); err != nil {
		return 0, err
	}

	e.logger.Info("export written", "path", path, "format", string(format), "entries", count, "bytes", len(data))
	return count, nil
}

// ExportTo is Export with an arbitrary destination such as stdout.
func (e *Exporter) ExportTo(filter journal.Filter, format Format, w io.Writer) (int, error) {
	data, count, err := e.render(filter, format)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("write export: %w", err)
	}
	e.logger.Info("export written", "format", string(format), "entries", count, "bytes", len(data))
	return count, nil
}

func (e *Exporter) render(filter journal.Filter, format Format) ([]byte, int, error) {
	renderer, err := RendererFor(format)
	if err != nil {
		return nil, 0, err
	}

	entries, err := e.source.ListEntries(filter, journal.OldestFirst)
	if err != nil {
		return nil, 0, fmt.Errorf("query entries for export: %w", err)
	}
	e.logger.Debug("export query", "format", string(format), "entries", len(entries), "grouped", format.Grouped())

	data, err := renderer.Render(entries, RenderOptions{
		Version:     e.opts.Version,
		GeneratedAt: e.opts.Now().UTC(),
		Stardate:    e.opts.Stardate,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("render %s export: %w", format, err)
	}
	return data, len(entries), nil
}

func writeFile(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("write export %s: %w", path, closeErr))
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}
