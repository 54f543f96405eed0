package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captainslog/internal/dateparse"
	"captainslog/stardate"
)

var stardateReverse string

var stardateCmd = &cobra.Command{
	Use:   "stardate [date]",
	Short: "Convert between dates and stardates",
	Long: `Print the stardate of now, of an RFC 3339 timestamp or of a date expression
(YYYY-MM-DD, "yesterday", "last week", ...). Dates resolve to midnight UTC.

With --reverse, convert a stardate back to a UTC timestamp.`,
	Args: cobra.MaximumNArgs(1),
	Example: `
  # Stardate right now
  cl stardate

  # Stardate of a day
  cl stardate 2025-09-15

  # Back to a timestamp
  cl stardate --reverse 21557.65
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(stardateReverse) != "" {
			value, err := stardate.Parse(stardateReverse)
			if err != nil {
				return err
			}
			fmt.Println(stardate.FromStardate(value).Format(time.RFC3339))
			return nil
		}

		var input string
		if len(args) == 1 {
			input = args[0]
		}
		at, err := resolveStardateInput(input, time.Now())
		if err != nil {
			return err
		}
		fmt.Println(stardate.ToStardate(at).String())
		return nil
	},
}

// resolveStardateInput accepts an empty string (now), an RFC 3339 timestamp
// or a date expression.
func resolveStardateInput(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.UTC(), nil
	}
	if parsed, err := time.Parse(time.RFC3339, input); err == nil {
		return parsed.UTC(), nil
	}
	key, err := dateparse.Parse(input, now)
	if err != nil {
		return time.Time{}, err
	}
	return key.Start(), nil
}

func init() {
	rootCmd.AddCommand(stardateCmd)

	stardateCmd.Flags().StringVarP(&stardateReverse, "reverse", "r", "", "Convert a stardate back to a timestamp")
}
