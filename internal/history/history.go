// Package history keeps a local log of blocklist actions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmunix/arrpath/internal/migrations"
	"github.com/vmunix/arrpath/pkg/arr"

	_ "modernc.org/sqlite"
)

// Entry is one blocklisted queue item.
type Entry struct {
	ID             int64     `json:"id"`
	QueueID        int64     `json:"queue_id"`
	Title          string    `json:"title"`
	DownloadClient string    `json:"download_client"`
	Path           string    `json:"path"`
	CreatedAt      time.Time `json:"created_at"`
}

// Filter specifies criteria for listing history.
type Filter struct {
	Title string // exact queue title
	Limit int
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A single connection keeps :memory: databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Store persists history entries.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore creates a history store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Add inserts a new entry and fills in its ID and CreatedAt.
func (s *Store) Add(ctx context.Context, e *Entry) error {
	now := s.now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO blocklist_history (queue_id, title, download_client, path, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		e.QueueID, e.Title, e.DownloadClient, e.Path, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	return nil
}

// RecordBlocklist adds an entry for a removed queue item.
func (s *Store) RecordBlocklist(ctx context.Context, entry arr.QueueEntry, path string) error {
	return s.Add(ctx, &Entry{
		QueueID:        entry.ID,
		Title:          entry.Title,
		DownloadClient: entry.DownloadClient,
		Path:           path,
	})
}

// List returns entries matching the filter, most recent first.
func (s *Store) List(ctx context.Context, f Filter) ([]*Entry, error) {
	query := `SELECT id, queue_id, title, download_client, path, created_at FROM blocklist_history`
	var args []any
	if f.Title != "" {
		query += ` WHERE title = ?`
		args = append(args, f.Title)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.QueueID, &e.Title, &e.DownloadClient, &e.Path, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
