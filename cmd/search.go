package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"captainslog/journal"
)

var searchAll bool

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search entry titles and content",
	Long: `Search entries whose title or content contains the query (case-insensitive).

Only the selected journal is searched unless --all is given.`,
	Args: cobra.MinimumNArgs(1),
	Example: `
  # Search the default journal
  cl search warp core

  # Search every journal
  cl search --all "away team"
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("search query is empty")
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		filter := journal.Filter{Query: query}
		if !searchAll {
			filter.Journal = s.journal()
		}
		entries, err := s.store.ListEntries(filter, journal.NewestFirst)
		if err != nil {
			return err
		}

		printer := s.printer()
		if len(entries) == 0 {
			printer.Notice(fmt.Sprintf("No entries found matching '%s'", query))
			return nil
		}
		fmt.Printf("Found %d entries matching '%s':\n\n", len(entries), query)
		printer.EntryList(entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchAll, "all", false, "Search every journal")
}
