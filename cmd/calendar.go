package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"captainslog/internal/timeutil"
	"captainslog/journal"
)

var (
	calendarYear  int
	calendarMonth int
	calendarAll   bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month calendar with the days that have entries",
	Example: `
  # Current month
  cl calendar

  # March 2025 across every journal
  cl calendar --year 2025 --month 3 --all
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		year, month, err := resolveCalendarMonth(calendarYear, calendarMonth, time.Now())
		if err != nil {
			return err
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		filter := monthFilter(year, month)
		if !calendarAll {
			filter.Journal = s.journal()
		}
		entries, err := s.store.ListEntries(filter, journal.OldestFirst)
		if err != nil {
			return err
		}

		s.printer().Calendar(year, month, entries)
		return nil
	},
}

// resolveCalendarMonth fills unset year and month from now.
func resolveCalendarMonth(year, month int, now time.Time) (int, time.Month, error) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return 0, 0, fmt.Errorf("year must be positive, got %d", year)
	}
	return year, time.Month(month), nil
}

func monthFilter(year int, month time.Month) journal.Filter {
	first := journal.NewDateKey(year, month, 1)
	last := journal.NewDateKey(year, month, timeutil.DaysInMonth(year, month))
	return journal.Filter{Since: &first, Until: &last}
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().IntVar(&calendarYear, "year", 0, "Year to display (default: current year)")
	calendarCmd.Flags().IntVar(&calendarMonth, "month", 0, "Month to display, 1-12 (default: current month)")
	calendarCmd.Flags().BoolVar(&calendarAll, "all", false, "Include every journal")
}
