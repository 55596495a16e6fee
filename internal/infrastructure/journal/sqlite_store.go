package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/pkg/filesystem"
	"github.com/t3lang/t3lang-shell/internal/ports"
)

// SQLiteStore persists provisioning attempts in a SQLite database.
// When the database cannot be opened it degrades to a jsonl FileStore next to it.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// DefaultPath is ~/.t3lang/journal.db.
func DefaultPath() string {
	return filepath.Join(filesystem.StateDir(), "journal.db")
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	fallback := NewFileStore(strings.TrimSuffix(path, filepath.Ext(path)) + ".jsonl")
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: fallback}
	}
	store := &SQLiteStore{db: db, path: path, fallback: fallback}
	if err := store.init(); err != nil {
		_ = db.Close()
		store.db = nil
	}
	return store
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS provisioning (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		action TEXT,
		strategy TEXT,
		outcome TEXT,
		message TEXT,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.JournalRecord) error {
	if s.db == nil {
		return s.fallback.Save(record)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO provisioning
		(timestamp, action, strategy, outcome, message, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.Timestamp.UTC().Format(time.RFC3339Nano),
		string(record.Action),
		string(record.Strategy),
		string(record.Outcome),
		record.Message,
		record.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("journal insert: %w", err)
	}
	return nil
}

// Records returns the newest entries first. A non-positive limit returns all of them.
func (s *SQLiteStore) Records(limit int) ([]domain.JournalRecord, error) {
	if s.db == nil {
		return s.fallback.Records(limit)
	}
	query := "SELECT timestamp, action, strategy, outcome, message, duration_ms FROM provisioning ORDER BY id DESC"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.JournalRecord
	for rows.Next() {
		var rec domain.JournalRecord
		var ts, action, strategy, outcome string
		if err := rows.Scan(&ts, &action, &strategy, &outcome, &rec.Message, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Action = domain.ProvisioningAction(action)
		rec.Strategy = domain.Strategy(strategy)
		rec.Outcome = domain.OutcomeKind(outcome)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback.Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM provisioning")
	return err
}

// Path returns the database path, or the fallback file when the database is unusable.
func (s *SQLiteStore) Path() string {
	if s.db == nil {
		return s.fallback.Path()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.JournalRepository = (*SQLiteStore)(nil)
