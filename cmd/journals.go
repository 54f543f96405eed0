package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "List journals with their entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.store.ListJournals()
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			s.printer().Notice("No journals yet")
			return nil
		}

		current := s.journal()
		for _, count := range counts {
			marker := " "
			if count.Name == current {
				marker = "*"
			}
			fmt.Printf("%s %s (%d)\n", marker, count.Name, count.Entries)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalsCmd)
}
