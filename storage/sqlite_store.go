package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"captainslog/journal"

	_ "modernc.org/sqlite"
)

// timestampLayout keeps stored instants in UTC at second resolution so that
// lexical column order equals chronological order.
const timestampLayout = "2006-01-02T15:04:05Z"

var ErrEntryNotFound = errors.New("entry not found")

type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// JournalCount is the number of entries in one journal.
type JournalCount struct {
	Name    string
	Entries int
}

func OpenSQLite(path string, opts Options) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db, logger: opts.Logger, now: opts.Now}
	if store.logger == nil {
		store.logger = slog.New(slog.DiscardHandler)
	}
	if store.now == nil {
		store.now = time.Now
	}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	store.logger.Debug("sqlite store opened", "path", path)
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	title TEXT,
	content TEXT NOT NULL,
	audio_path TEXT,
	image_paths TEXT,
	journal TEXT NOT NULL DEFAULT 'Personal',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp);
CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := s.ensureJournalColumn(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_entries_journal ON entries(journal);`); err != nil {
		return fmt.Errorf("create journal index: %w", err)
	}

	return nil
}

// ensureJournalColumn upgrades databases created before entries were split
// into journals.
func (s *SQLiteStore) ensureJournalColumn() error {
	rows, err := s.db.Query(`PRAGMA table_info(entries);`)
	if err != nil {
		return fmt.Errorf("query table info: %w", err)
	}
	defer rows.Close()

	hasJournal := false
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scan table info: %w", err)
		}
		if strings.EqualFold(name, "journal") {
			hasJournal = true
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate table info: %w", err)
	}

	if hasJournal {
		return nil
	}

	stmt := fmt.Sprintf(`ALTER TABLE entries ADD COLUMN journal TEXT NOT NULL DEFAULT '%s';`, journal.DefaultJournal)
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("add journal column: %w", err)
	}
	s.logger.Info("migrated entries table", "column", "journal")

	return nil
}

// CreateEntry inserts entry and returns its new ID. A zero Timestamp means
// now; CreatedAt and UpdatedAt are always set by the store.
func (s *SQLiteStore) CreateEntry(entry journal.Entry) (int64, error) {
	now := s.now().UTC()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
	entry.Journal = journal.JournalOrDefault(entry.Journal)

	images, err := encodeImagePaths(entry.ImagePaths)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(insertEntryStmt,
		formatTimestamp(entry.Timestamp),
		entry.Title,
		entry.Content,
		entry.AudioPath,
		images,
		entry.Journal,
		formatTimestamp(now),
		formatTimestamp(now),
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted row id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid inserted row id %d", id)
	}
	return id, nil
}

const insertEntryStmt = `
INSERT INTO entries (
	timestamp,
	title,
	content,
	audio_path,
	image_paths,
	journal,
	created_at,
	updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

// InsertEntries inserts entries in one transaction and returns how many rows
// were written. Imported entries keep their timestamps. On error nothing is
// written and the count is 0.
func (s *SQLiteStore) InsertEntries(entries []journal.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(insertEntryStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	now := formatTimestamp(s.now())
	inserted := 0
	for _, entry := range entries {
		images, err := encodeImagePaths(entry.ImagePaths)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		if _, err := stmt.Exec(
			formatTimestamp(entry.Timestamp),
			entry.Title,
			entry.Content,
			entry.AudioPath,
			images,
			journal.JournalOrDefault(entry.Journal),
			now,
			now,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert entry: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug("entries inserted", "count", inserted)
	return inserted, nil
}

const selectEntryColumns = `
SELECT
	id,
	timestamp,
	title,
	content,
	audio_path,
	image_paths,
	journal,
	created_at,
	updated_at
FROM entries`

// ListEntries returns the entries matching filter in the requested order.
// Ties on timestamp are broken by ID.
func (s *SQLiteStore) ListEntries(filter journal.Filter, order journal.SortOrder) ([]journal.Entry, error) {
	where, args := filterClause(filter)

	direction := "ASC"
	if order == journal.NewestFirst {
		direction = "DESC"
	}
	query := selectEntryColumns + where + fmt.Sprintf("\nORDER BY timestamp %s, id %s;", direction, direction)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]journal.Entry, 0, 64)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterClause builds the WHERE clause for filter. The query is matched as a
// literal substring; SQLite's LIKE folds ASCII letters only.
func filterClause(filter journal.Filter) (string, []any) {
	if filter.Empty() {
		return "", nil
	}

	conditions := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if filter.Journal != "" {
		conditions = append(conditions, "journal = ?")
		args = append(args, filter.Journal)
	}
	if filter.Date != nil {
		conditions = append(conditions, "timestamp >= ? AND timestamp < ?")
		args = append(args, formatTimestamp(filter.Date.Start()), formatTimestamp(filter.Date.Next().Start()))
	}
	if filter.Since != nil {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, formatTimestamp(filter.Since.Start()))
	}
	if filter.Until != nil {
		conditions = append(conditions, "timestamp < ?")
		args = append(args, formatTimestamp(filter.Until.Next().Start()))
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		conditions = append(conditions, `(content LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\')`)
		pattern := "%" + likeEscaper.Replace(query) + "%"
		args = append(args, pattern, pattern)
	}

	return "\nWHERE " + strings.Join(conditions, " AND "), args
}

// GetEntry returns one entry by ID.
func (s *SQLiteStore) GetEntry(id int64) (journal.Entry, bool, error) {
	if id <= 0 {
		return journal.Entry{}, false, fmt.Errorf("entry id must be > 0")
	}

	row := s.db.QueryRow(selectEntryColumns+"\nWHERE id = ?;", id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.Entry{}, false, nil
		}
		return journal.Entry{}, false, fmt.Errorf("query entry %d: %w", id, err)
	}
	return entry, true, nil
}

// UpdateEntry replaces the user-editable fields of the row with entry.ID and
// bumps updated_at.
func (s *SQLiteStore) UpdateEntry(entry journal.Entry) error {
	if entry.ID <= 0 {
		return fmt.Errorf("entry id must be > 0")
	}

	images, err := encodeImagePaths(entry.ImagePaths)
	if err != nil {
		return err
	}

	const updateStmt = `
UPDATE entries
SET timestamp = ?,
	title = ?,
	content = ?,
	audio_path = ?,
	image_paths = ?,
	journal = ?,
	updated_at = ?
WHERE id = ?;`

	res, err := s.db.Exec(
		updateStmt,
		formatTimestamp(entry.Timestamp),
		entry.Title,
		entry.Content,
		entry.AudioPath,
		images,
		journal.JournalOrDefault(entry.Journal),
		formatTimestamp(s.now()),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry %d: %w", entry.ID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes the row with the given ID.
func (s *SQLiteStore) DeleteEntry(id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("entry id must be > 0")
	}

	res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete entry %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rowsAffected > 0, nil
}

// ListJournals returns every journal with its entry count, by name.
func (s *SQLiteStore) ListJournals() ([]JournalCount, error) {
	rows, err := s.db.Query(`SELECT journal, COUNT(*) FROM entries GROUP BY journal ORDER BY journal;`)
	if err != nil {
		return nil, fmt.Errorf("query journals: %w", err)
	}
	defer rows.Close()

	journals := make([]JournalCount, 0, 8)
	for rows.Next() {
		var count JournalCount
		if err := rows.Scan(&count.Name, &count.Entries); err != nil {
			return nil, fmt.Errorf("scan journal: %w", err)
		}
		journals = append(journals, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journals: %w", err)
	}
	return journals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (journal.Entry, error) {
	var (
		entry      journal.Entry
		title      sql.NullString
		audio      sql.NullString
		images     sql.NullString
		tsRaw      string
		createdRaw string
		updatedRaw string
	)

	if err := row.Scan(
		&entry.ID,
		&tsRaw,
		&title,
		&entry.Content,
		&audio,
		&images,
		&entry.Journal,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return journal.Entry{}, err
		}
		return journal.Entry{}, fmt.Errorf("scan entry: %w", err)
	}

	if title.Valid {
		entry.Title = &title.String
	}
	if audio.Valid {
		entry.AudioPath = &audio.String
	}

	var err error
	if entry.ImagePaths, err = decodeImagePaths(images); err != nil {
		return journal.Entry{}, fmt.Errorf("entry %d: %w", entry.ID, err)
	}
	if entry.Timestamp, err = parseTimestamp(tsRaw); err != nil {
		return journal.Entry{}, err
	}
	if entry.CreatedAt, err = parseTimestamp(createdRaw); err != nil {
		return journal.Entry{}, err
	}
	if entry.UpdatedAt, err = parseTimestamp(updatedRaw); err != nil {
		return journal.Entry{}, err
	}

	return entry, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp also accepts the "YYYY-MM-DD HH:MM:SS" form SQLite's
// CURRENT_TIMESTAMP produces.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unrecognized layout", raw)
}

func encodeImagePaths(paths []string) (any, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(paths)
	if err != nil {
		return nil, fmt.Errorf("encode image paths: %w", err)
	}
	return string(data), nil
}

func decodeImagePaths(raw sql.NullString) ([]string, error) {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return []string{}, nil
	}
	paths := []string{}
	if err := json.Unmarshal([]byte(raw.String), &paths); err != nil {
		return nil, fmt.Errorf("decode image paths: %w", err)
	}
	return paths, nil
}
