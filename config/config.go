package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/viper"

	"captainslog/journal"
)

const (
	KeyDatabasePath          = "database.path"
	KeyEditorCommand         = "editor.command"
	KeyDisplayColorsEnabled  = "display.colors_enabled"
	KeyDisplayDateFormat     = "display.date_format"
	KeyDisplayEntriesPerPage = "display.entries_per_page"
	KeyDisplayStardateMode   = "display.stardate_mode"
	KeyJournalDefault        = "journal.default"
	KeyLogLevel              = "log.level"

	DefaultDateFormat = "%Y-%m-%d %H:%M:%S"
	DefaultLogLevel   = "warn"
	defaultEditor     = "vi"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Display  DisplayConfig  `mapstructure:"display"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type EditorConfig struct {
	Command string `mapstructure:"command"`
}

type DisplayConfig struct {
	ColorsEnabled  bool   `mapstructure:"colors_enabled"`
	DateFormat     string `mapstructure:"date_format" validate:"required"`
	EntriesPerPage int    `mapstructure:"entries_per_page" validate:"min=0"`
	StardateMode   bool   `mapstructure:"stardate_mode"`
}

type JournalConfig struct {
	Default string `mapstructure:"default" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# captainslog configuration
database:
  # empty means $XDG_DATA_HOME/captainslog/journal.db
  path: ""

editor:
  # empty means $VISUAL, then $EDITOR, then vi
  command: ""

display:
  colors_enabled: true
  date_format: "%Y-%m-%d %H:%M:%S"
  entries_per_page: 0
  stardate_mode: false

journal:
  default: "Personal"

log:
  level: "warn"
`
}

// DatabasePath returns the configured database file or the per-user default.
func (c *Config) DatabasePath() (string, error) {
	if path := strings.TrimSpace(c.Database.Path); path != "" {
		return expandHome(path)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "captainslog", "journal.db"), nil
}

// EditorCommand returns the configured editor, falling back to $VISUAL,
// $EDITOR and vi.
func (c *Config) EditorCommand() string {
	for _, candidate := range []string{c.Editor.Command, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return defaultEditor
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateDateFormat(cfg.Display.DateFormat); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeyEditorCommand, "")
	v.SetDefault(KeyDisplayColorsEnabled, true)
	v.SetDefault(KeyDisplayDateFormat, DefaultDateFormat)
	v.SetDefault(KeyDisplayEntriesPerPage, 0)
	v.SetDefault(KeyDisplayStardateMode, false)
	v.SetDefault(KeyJournalDefault, journal.DefaultJournal)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

func validateDateFormat(format string) error {
	if !strings.Contains(format, "%") {
		return fmt.Errorf("validation failed: %s %q has no strftime specifiers", KeyDisplayDateFormat, format)
	}
	if _, err := strftime.Layout(format); err != nil {
		return fmt.Errorf("validation failed: %s %q: %w", KeyDisplayDateFormat, format, err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
