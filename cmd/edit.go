package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"captainslog/internal/frontmatter"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry in your editor",
	Long: `Open an existing entry in your editor.

The buffer starts with a YAML header holding the journal and timestamp, which
can be changed as well. The "# Title" line and body are saved back after the
editor exits.`,
	Args: cobra.ExactArgs(1),
	Example: `
  # Edit entry 12
  cl edit 12
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

		doc, err := editDocument(s.cfg.EditorCommand(), frontmatter.Document{
			Metadata: frontmatter.Metadata{Journal: entry.Journal, Timestamp: entry.Timestamp},
			Title:    entry.TitleOrEmpty(),
			Content:  entry.Content,
		})
		if err != nil {
			return err
		}

		if err := s.store.UpdateEntry(applyDocument(entry, doc)); err != nil {
			return err
		}
		fmt.Printf("Entry %d updated successfully\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
