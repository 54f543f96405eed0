package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"captainslog/config"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a starter captainslog config file.",
	Long: `Write a starter config file with every captainslog setting:

  database.path             SQLite journal file (default $XDG_DATA_HOME/captainslog/journal.db)
  editor.command            editor for new and edit (default $VISUAL, $EDITOR, vi)
  display.colors_enabled    colour terminal output
  display.date_format       strftime layout for timestamps
  display.entries_per_page  0 lists everything
  display.stardate_mode     show stardates instead of dates
  journal.default           journal used when --journal is not given
  log.level                 debug, info, warn or error

Any key can be overridden with a CAPTAINSLOG_ variable, e.g.
CAPTAINSLOG_JOURNAL_DEFAULT=Work. An existing file is never overwritten.`,
	Example: `
  # Write $HOME/.captainslog.yaml
  cl config create

  # Write a separate config for a work log
  cl --configFile ~/work/captainslog.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig(cmd.OutOrStdout())
	},
}

// saveDefaultConfig writes the starter template unless a config file already
// exists, and reports the database and journal a fresh install will use.
func saveDefaultConfig(w io.Writer) error {
	configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(w, "Config file already exists at: %s\n", configPath)
		return nil
	}

	cfg, err := config.ValidateYAMLContent([]byte(config.ExampleYAML()))
	if err != nil {
		return fmt.Errorf("starter config is invalid: %w", err)
	}
	databasePath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "New config file created at: %s\n", configPath)
	fmt.Fprintf(w, "%s: %s\n", config.KeyDatabasePath, databasePath)
	fmt.Fprintf(w, "%s: %s\n", config.KeyJournalDefault, cfg.Journal.Default)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
