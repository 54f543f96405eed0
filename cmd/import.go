package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captainslog/importer"
	"captainslog/internal/dateparse"
)

var (
	importFormat string
	importDate   string
)

var importCmd = &cobra.Command{
	Use:   "import <file...>",
	Short: "Import entries from org-journal, DayOne, CSV or Excel files",
	Long: `Read source files, map them to journal entries and persist them in SQLite.

When --format is omitted, the format is inferred from each file extension:
.org (org-journal), .json (DayOne export), .csv, .xlsx.

Entries keep the journal named in the source (csv/excel) and otherwise land in
the selected journal. --journal overrides the journal of every imported entry.`,
	Args: cobra.MinimumNArgs(1),
	Example: `
  # Import an org-journal file into the Personal journal
  cl import ./2025.org

  # Import a DayOne export into the Travel journal
  cl import ./Journal.json --format dayone --journal Travel

  # Import only the entries of one day from a previous CSV export
  cl import ./export.csv --date 2025-01-02
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateImportFormat(importFormat); err != nil {
			return err
		}
		date, err := dateparse.ParseOptional(importDate, time.Now())
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := importer.Run(args, importFormat, importer.RunOptions{
			Journal:        strings.TrimSpace(journalName),
			DefaultJournal: s.journal(),
			Date:           date,
			Logger:         s.logger,
		})
		if err != nil {
			return err
		}

		inserted, err := s.store.InsertEntries(result.Entries)
		if err != nil {
			return err
		}

		for _, problem := range result.Problems {
			s.logger.Warn("import row skipped", "problem", problem)
		}
		fmt.Printf("Import completed. Files: %d, Total: %d, Imported: %d, Skipped: %d, Errors: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			inserted,
			result.RowsSkipped,
			len(result.Problems),
		)
		return nil
	},
}

func validateImportFormat(format string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return nil
	}
	for _, supported := range importer.SupportedFormats() {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported import format %q (supported: %s)", format, strings.Join(importer.SupportedFormats(), "|"))
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: "+strings.Join(importer.SupportedFormats(), "|")+" (optional, inferred from extension)")
	importCmd.Flags().StringVar(&importDate, "date", "", "Only import entries on this date")
}
