package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"captainslog/journal"
)

var (
	listDate   string
	listSince  string
	listUntil  string
	listPage   int
	listOldest bool
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long: `List entries of the selected journal, newest first.

Date flags accept YYYY-MM-DD or relative expressions such as "today",
"yesterday", "last week", "this week", "next month" or "3 days ago".
When display.entries_per_page is set, output is paged and --page selects the page.`,
	Example: `
  # Entries of today
  cl list --date today

  # Everything in the Work journal since the start of last month
  cl list --journal Work --since "last month"

  # Second page, oldest first
  cl list --oldest --page 2
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		filter, err := buildDateFilter(listDate, listSince, listUntil, time.Now())
		if err != nil {
			return err
		}
		if !listAll {
			filter.Journal = s.journal()
		}

		order := journal.NewestFirst
		if listOldest {
			order = journal.OldestFirst
		}
		entries, err := s.store.ListEntries(filter, order)
		if err != nil {
			return err
		}

		printer := s.printer()
		if len(entries) == 0 {
			printer.Notice("No entries found")
			return nil
		}

		pageEntries, pages, err := paginate(entries, s.cfg.Display.EntriesPerPage, listPage)
		if err != nil {
			return err
		}
		fmt.Printf("Found %d entries:\n\n", len(entries))
		printer.EntryList(pageEntries)
		if pages > 1 {
			fmt.Printf("\nPage %d of %d\n", listPage, pages)
		}
		return nil
	},
}

// paginate returns the 1-based page of entries and the page count. A
// perPage of zero disables paging.
func paginate(entries []journal.Entry, perPage, page int) ([]journal.Entry, int, error) {
	if perPage <= 0 {
		return entries, 1, nil
	}
	pages := max(1, (len(entries)+perPage-1)/perPage)
	if page < 1 || page > pages {
		return nil, pages, fmt.Errorf("page %d out of range (1-%d)", page, pages)
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(entries))
	return entries[start:end], pages, nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDate, "date", "", "Only entries on this date")
	listCmd.Flags().StringVar(&listSince, "since", "", "Only entries on or after this date")
	listCmd.Flags().StringVar(&listUntil, "until", "", "Only entries on or before this date")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page to show when display.entries_per_page is set")
	listCmd.Flags().BoolVar(&listOldest, "oldest", false, "Oldest entries first")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include every journal")
}
