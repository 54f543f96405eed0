package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"captainslog/display"
	"captainslog/journal"
)

var (
	deleteYes bool
)

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one journal entry",
	Long: `Delete a single entry by ID.

Before deletion, an interactive security prompt requires typing exactly "Y".
Use --yes to skip the prompt in scripts.`,
	Args: cobra.ExactArgs(1),
	Example: `
  # Delete entry 12 (requires interactive confirmation)
  cl delete 12

  # Delete without prompt
  cl delete 12 --yes
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

		if !deleteYes {
			confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, describeEntry(entry))
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("delete aborted: confirmation was not 'Y'")
			}
		}

		deleted, err := s.store.DeleteEntry(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("entry %d not found", id)
		}
		s.logger.Info("entry deleted", "id", id, "journal", entry.Journal)
		fmt.Printf("Entry %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without confirmation prompt")
}

// describeEntry is the prompt label for an entry.
func describeEntry(entry journal.Entry) string {
	label := fmt.Sprintf("entry %d", entry.ID)
	if title := entry.TitleOrEmpty(); title != "" {
		return fmt.Sprintf("%s %q", label, title)
	}
	if preview := display.Preview(entry.Content, 30); preview != "" {
		return fmt.Sprintf("%s %q", label, preview)
	}
	return label
}

func confirmDeletePrompt(input io.Reader, output io.Writer, target string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("delete confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete %s? Type Y to confirm: ", target); err != nil {
		return false, fmt.Errorf("write delete confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, fmt.Errorf("read delete confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
