// Package sqlite stores the session history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"zenfocus/internal/storage"
)

// ErrNotInitialized is returned when the store is used before Init.
var ErrNotInitialized = errors.New("history store not initialized")

type HistoryStore struct {
	db     *sql.DB
	dbPath string
}

func NewHistoryStore(dbPath string) *HistoryStore {
	return &HistoryStore{dbPath: dbPath}
}

var _ storage.History = (*HistoryStore)(nil)

const createSessionsTableSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME NOT NULL,
	kind TEXT NOT NULL,
	preset_minutes INTEGER NOT NULL,
	remaining_seconds INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions (timestamp);
`

func (s *HistoryStore) Init(ctx context.Context) error {
	dir := filepath.Dir(s.dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create db directory %s: %w", dir, err)
	}

	log.Printf("Opening session history at: %s", s.dbPath)
	db, err := sql.Open("sqlite3", s.dbPath+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createSessionsTableSQL); err != nil {
		db.Close()
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	s.db = db
	return nil
}

func (s *HistoryStore) Append(ctx context.Context, entry storage.Entry) (int64, error) {
	if s.db == nil {
		return 0, ErrNotInitialized
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}

	query := `INSERT INTO sessions (timestamp, kind, preset_minutes, remaining_seconds) VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query, entry.At.UTC(), string(entry.Kind), entry.PresetMinutes, entry.RemainingSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]storage.Entry, error) {
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, timestamp, kind, preset_minutes, remaining_seconds
	          FROM sessions
	          ORDER BY timestamp DESC, id DESC
	          LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var entries []storage.Entry
	for rows.Next() {
		var entry storage.Entry
		var kind string
		if err := rows.Scan(&entry.ID, &entry.At, &kind, &entry.PresetMinutes, &entry.RemainingSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		entry.Kind = storage.Kind(kind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return entries, nil
}

func (s *HistoryStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
