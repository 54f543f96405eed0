package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry with rendered Markdown",
	Args:  cobra.ExactArgs(1),
	Example: `
  # Show entry 12
  cl show 12
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			return err
		}

		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		entry, found, err := s.store.GetEntry(id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("entry %d not found", id)
		}

		s.printer().Entry(entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
