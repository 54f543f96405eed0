package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captainslog/output"
)

var (
	exportFormat  string
	exportOutput  string
	exportDate    string
	exportSince   string
	exportUntil   string
	exportNoMkdir bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export journal entries to JSON, Markdown, Org, CSV or Excel",
	Long: `Export entries from SQLite, oldest first.

Formats:
- json: one document with a version marker and every entry
- markdown: entries grouped under one heading per day
- org: org-journal layout, one "* Weekday, DD/MM/YYYY" heading per day
- csv / excel: one row per entry

The format can be selected explicitly via --format or is inferred from the
--output extension (.json, .md, .org, .csv, .xlsx). Without --output, or with
"-", the export is written to stdout as JSON unless --format says otherwise.
Every journal is exported unless --journal is given.`,
	Example: `
  # Everything as JSON on stdout
  cl export

  # Work journal since January as org-journal
  cl export --journal Work --since 2025-01-01 --output ./work.org

  # Last week as Markdown with stardate headings
  cl export --since "last week" --stardate --output ./log.md

  # Force Excel format independent of extension
  cl export --format excel --output ./journal.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveExportFormat(exportFormat, exportOutput)
		if err != nil {
			return err
		}
		filter, err := buildDateFilter(exportDate, exportSince, exportUntil, time.Now())
		if err != nil {
			return err
		}
		filter.Journal = strings.TrimSpace(journalName)

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		exporter := output.NewExporter(s.store, output.ExporterOptions{
			Version:  Version,
			Stardate: s.stardateMode(),
			Logger:   s.logger,
		})

		if isStdout(exportOutput) {
			_, err := exporter.ExportTo(filter, format, os.Stdout)
			return err
		}

		if !exportNoMkdir {
			if err := os.MkdirAll(filepath.Dir(exportOutput), 0o755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
		}
		count, err := exporter.Export(filter, format, exportOutput)
		if err != nil {
			return err
		}
		fmt.Printf("Export completed. Entries: %d, Format: %s, File: %s\n", count, format, exportOutput)
		return nil
	},
}

// resolveExportFormat prefers the explicit flag, then the output extension,
// and falls back to JSON for stdout.
func resolveExportFormat(formatFlag, outputPath string) (output.Format, error) {
	if strings.TrimSpace(formatFlag) != "" {
		return output.ParseFormat(formatFlag)
	}
	if isStdout(outputPath) {
		return output.FormatJSON, nil
	}
	return output.FormatFromPath(outputPath)
}

func isStdout(path string) bool {
	path = strings.TrimSpace(path)
	return path == "" || path == "-"
}

func formatNames() string {
	names := make([]string, 0, len(output.Formats))
	for _, format := range output.Formats {
		names = append(names, string(format))
	}
	return strings.Join(names, "|")
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: "+formatNames()+" (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path, - for stdout")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Only entries on this date")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "Only entries on or after this date")
	exportCmd.Flags().StringVar(&exportUntil, "until", "", "Only entries on or before this date")
	exportCmd.Flags().BoolVar(&exportNoMkdir, "no-mkdir", false, "Fail instead of creating the output directory")
}
