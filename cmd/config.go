package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage captainslog configuration file values.",
	Long: `Create, edit, display, and delete the captainslog configuration file.

The configuration stores application-wide values:
- database.path
- editor.command
- display.colors_enabled / date_format / entries_per_page / stardate_mode
- journal.default
- log.level

Every key can be overridden by an environment variable such as
CAPTAINSLOG_DISPLAY_STARDATE_MODE=true.`,
	Example: `
  # Create default config in $HOME/.captainslog.yaml
  cl config create

  # Show active config and source file
  cl config show

  # Open active config in editor (creates example if missing)
  cl config edit

  # Delete active config file
  cl config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
