/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"captainslog/config"
)

// Version is stamped into JSON exports.
var Version = "0.1.0"

var (
	cfgFile     string
	dbPath      string
	journalName string
	logLevel    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "cl",
	Short:   "Captain's Log - a terminal journaling application.",
	Version: Version,
	Long: `
**********************************************
*              CAPTAIN'S LOG                 *
**********************************************

Write, browse, search and export journal entries kept in a local SQLite database.
Timestamps can be shown as stardates (days since 1966-09-08 UTC).

Supported export formats:
- json, markdown (.md), org, csv, excel (.xlsx)

Supported import formats:
- org-journal (.org), DayOne JSON (.json), csv, excel (.xlsx)
`,
	Example: `
  # Create configuration file
  cl config create

  # Write a quick entry
  cl new "Engines at warp 5" --title "Status"

  # Write an entry in your editor
  cl new --edit --journal Work

  # List the entries of last week
  cl list --since "last week"

  # Show the calendar of the current month
  cl calendar

  # Export one journal as an org-journal file
  cl export --journal Work --since 2025-01-01 --output ./work.org

  # Import an org-journal file
  cl import ./journal.org
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.captainslog.yaml, then ./.captainslog.yaml)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Override the database file location")
	rootCmd.PersistentFlags().StringVar(&journalName, "journal", "", "Journal category (default from journal.default)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error (default from log.level)")
	rootCmd.PersistentFlags().BoolVar(&stardateFlag, "stardate", false, "Show timestamps as stardates (default from display.stardate_mode)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".captainslog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".captainslog")
	}

	viper.SetEnvPrefix("CAPTAINSLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Defaults apply when no config file exists.
	_ = viper.ReadInConfig()
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func validateLogLevelFlag(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q (supported: debug|info|warn|error)", level)
	}
}
