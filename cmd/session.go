package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"captainslog/config"
	"captainslog/display"
	"captainslog/internal/dateparse"
	"captainslog/journal"
	"captainslog/storage"
)

var stardateFlag bool

// session bundles what entry commands need: validated config, an open
// store and the logger.
type session struct {
	cfg    *config.Config
	store  *storage.SQLiteStore
	logger *slog.Logger
}

func openSession() (*session, error) {
	if err := validateLogLevelFlag(logLevel); err != nil {
		return nil, err
	}
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}
	logger := newLogger(firstNonEmpty(logLevel, cfg.Log.Level))

	path, err := resolveDatabasePath(dbPath, cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	store, err := storage.OpenSQLite(path, storage.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "path", path)

	return &session{cfg: cfg, store: store, logger: logger}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// journal returns the --journal flag value or the configured default.
func (s *session) journal() string {
	return firstNonEmpty(journalName, s.cfg.Journal.Default, journal.DefaultJournal)
}

func (s *session) stardateMode() bool {
	return stardateFlag || s.cfg.Display.StardateMode
}

func (s *session) printer() *display.Printer {
	return display.NewPrinter(os.Stdout, display.Options{
		Stardate:   s.stardateMode(),
		Colors:     s.cfg.Display.ColorsEnabled,
		DateFormat: s.cfg.Display.DateFormat,
	})
}

func resolveDatabasePath(flagValue string, cfg *config.Config) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue, nil
	}
	return cfg.DatabasePath()
}

// buildDateFilter turns the --date/--since/--until expressions into a filter.
func buildDateFilter(date, since, until string, now time.Time) (journal.Filter, error) {
	var filter journal.Filter
	var err error

	if filter.Date, err = dateparse.ParseOptional(date, now); err != nil {
		return journal.Filter{}, fmt.Errorf("invalid --date: %w", err)
	}
	if filter.Since, err = dateparse.ParseOptional(since, now); err != nil {
		return journal.Filter{}, fmt.Errorf("invalid --since: %w", err)
	}
	if filter.Until, err = dateparse.ParseOptional(until, now); err != nil {
		return journal.Filter{}, fmt.Errorf("invalid --until: %w", err)
	}
	if filter.Since != nil && filter.Until != nil && filter.Until.Before(*filter.Since) {
		return journal.Filter{}, fmt.Errorf("--until %s is before --since %s", filter.Until, filter.Since)
	}
	return filter, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func parseEntryID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", value)
	}
	return id, nil
}
