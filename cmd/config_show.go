package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"captainslog/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  cl config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, showing defaults.")
		}
		return printConfig(os.Stdout, cfg)
	},
}

func printConfig(w io.Writer, cfg *config.Config) error {
	databasePath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintf(w, "%s: %s\n", config.KeyDatabasePath, databasePath)
	fmt.Fprintf(w, "%s: %s\n", config.KeyEditorCommand, cfg.EditorCommand())
	fmt.Fprintf(w, "%s: %t\n", config.KeyDisplayColorsEnabled, cfg.Display.ColorsEnabled)
	fmt.Fprintf(w, "%s: %s\n", config.KeyDisplayDateFormat, cfg.Display.DateFormat)
	fmt.Fprintf(w, "%s: %d\n", config.KeyDisplayEntriesPerPage, cfg.Display.EntriesPerPage)
	fmt.Fprintf(w, "%s: %t\n", config.KeyDisplayStardateMode, cfg.Display.StardateMode)
	fmt.Fprintf(w, "%s: %s\n", config.KeyJournalDefault, cfg.Journal.Default)
	fmt.Fprintf(w, "%s: %s\n", config.KeyLogLevel, cfg.Log.Level)
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
