// Package history persists import runs to a local SQLite database so
// earlier merges can be listed from the CLI. Recording is best-effort:
// the importer treats a failed write as a warning, never an error.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/kconfmerge/internal/importer"
	"github.com/vmunix/kconfmerge/internal/migrations"
)

// Entry represents one recorded import run.
type Entry struct {
	ID          int64                   `json:"id"`
	Title       string                  `json:"title"`
	Kconfig     string                  `json:"kconfig"`
	SourceCount int                     `json:"source_count"`
	Records     []importer.SourceRecord `json:"records"`
	CreatedAt   time.Time               `json:"created_at"`
}

// Store persists import runs.
type Store struct {
	db *sql.DB
}

var _ importer.Recorder = (*Store)(nil)

// NewStore creates a store on an existing database handle. The schema
// must already be applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the history database at path, creating the file and its
// parent directory as needed, and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts a completed run.
func (s *Store) RecordRun(ctx context.Context, run importer.Run) error {
	records, err := json.Marshal(run.Records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (title, kconfig, source_count, records, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		run.Title, run.Kconfig, len(run.Records), string(records), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns recorded runs, most recent first. A limit of 0 returns
// everything.
func (s *Store) List(limit int) ([]*Entry, error) {
	query := `SELECT id, title, kconfig, source_count, records, created_at
		FROM runs ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Entry
	for rows.Next() {
		e := &Entry{}
		var records string
		if err := rows.Scan(&e.ID, &e.Title, &e.Kconfig, &e.SourceCount, &records, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(records), &e.Records); err != nil {
			return nil, fmt.Errorf("unmarshal records: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return results, nil
}
