package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captainslog/internal/frontmatter"
	"captainslog/journal"
)

var (
	newTitle string
	newEdit  bool
)

var newCmd = &cobra.Command{
	Use:   "new [content...]",
	Short: "Write a new journal entry",
	Long: `Write a new entry into the selected journal.

Content can be passed as arguments. Without content, or with --edit, the
entry is written in your editor: the buffer starts with a YAML header holding
the journal and timestamp, followed by an optional "# Title" line and the body.`,
	Example: `
  # Quick entry
  cl new "Arrived at Starbase 12" --title "Arrival"

  # Write the entry in $EDITOR for the Work journal
  cl new --edit --journal Work
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.Close()

		entry := journal.Entry{
			Timestamp: time.Now().UTC(),
			Title:     journal.StringPtr(strings.TrimSpace(newTitle)),
			Content:   strings.TrimSpace(strings.Join(args, " ")),
			Journal:   s.journal(),
		}

		if newEdit || entry.Content == "" {
			doc, err := editDocument(s.cfg.EditorCommand(), frontmatter.Document{
				Metadata: frontmatter.Metadata{Journal: entry.Journal, Timestamp: entry.Timestamp},
				Title:    entry.TitleOrEmpty(),
				Content:  entry.Content,
			})
			if err != nil {
				return err
			}
			entry = applyDocument(entry, doc)
		}

		if strings.TrimSpace(entry.Content) == "" {
			return fmt.Errorf("entry content is empty, nothing saved")
		}

		id, err := s.store.CreateEntry(entry)
		if err != nil {
			return err
		}
		fmt.Printf("Entry %d created in journal %s\n", id, entry.Journal)
		return nil
	},
}

// applyDocument copies the edited buffer onto entry.
func applyDocument(entry journal.Entry, doc frontmatter.Document) journal.Entry {
	entry.Journal = journal.JournalOrDefault(doc.Metadata.Journal)
	entry.Timestamp = doc.Metadata.Timestamp.UTC()
	entry.Title = journal.StringPtr(doc.Title)
	entry.Content = doc.Content
	return entry
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Entry title")
	newCmd.Flags().BoolVarP(&newEdit, "edit", "e", false, "Write the entry in your editor")
}
