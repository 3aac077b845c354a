// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists parsed bibliography entries in a SQLite index so
// publications can be queried outside the generation pipeline.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubpages/internal/bibtex"
	"github.com/pdiddy/pubpages/internal/classify"
	"github.com/pdiddy/pubpages/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "publications.db"
)

// Store manages the publications SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the publications database at
// cfg.DataDir/index/publications.db, creating the schema if needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			key TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			author TEXT,
			title TEXT,
			year TEXT,
			journal TEXT,
			bucket TEXT,
			raw TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_type ON publications(type)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_bucket ON publications(bucket)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over title and author, kept in sync by triggers.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='publications_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE publications_fts USING fts5(title, author, content=publications, content_rowid=rowid)`,
			`CREATE TRIGGER publications_ai AFTER INSERT ON publications BEGIN
				INSERT INTO publications_fts(rowid, title, author) VALUES (new.rowid, new.title, new.author);
			END`,
			`CREATE TRIGGER publications_ad AFTER DELETE ON publications BEGIN
				INSERT INTO publications_fts(publications_fts, rowid, title, author) VALUES('delete', old.rowid, old.title, old.author);
			END`,
			`CREATE TRIGGER publications_au AFTER UPDATE ON publications BEGIN
				INSERT INTO publications_fts(publications_fts, rowid, title, author) VALUES('delete', old.rowid, old.title, old.author);
				INSERT INTO publications_fts(rowid, title, author) VALUES (new.rowid, new.title, new.author);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IndexSummary holds counts from an indexing run.
type IndexSummary struct {
	Indexed int
	Failed  int
}

// Total returns the number of entries processed.
func (s IndexSummary) Total() int {
	return s.Indexed + s.Failed
}

// Index upserts entries into the database with their bucket label,
// printing per-entry status to w and returning a summary.
func (s *Store) Index(ctx context.Context, entries []types.Entry, firstAuthor string, w io.Writer) (IndexSummary, error) {
	var summary IndexSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (key, type, author, title, year, journal, bucket, raw)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			type=excluded.type, author=excluded.author, title=excluded.title,
			year=excluded.year, journal=excluded.journal, bucket=excluded.bucket,
			raw=excluded.raw`)
	if err != nil {
		return summary, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		_, err := stmt.ExecContext(ctx,
			e.Key, e.Type, e.Field("author"), e.Field("title"),
			e.Field("year"), e.Field("journal"),
			bucketLabel(e, firstAuthor), bibtex.Format(e),
		)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", e.Key, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "indexed %s\n", e.Key)
		summary.Indexed++
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, failed: %d\n", summary.Indexed, summary.Failed)
	return summary, nil
}

// bucketLabel mirrors the partition rules so queries can filter on the
// generated page each entry lands in. Entries that land on no page get an
// empty label.
func bucketLabel(e types.Entry, firstAuthor string) string {
	switch e.Type {
	case types.TypeArticle:
		if e.Has("journal") {
			return "accepted"
		}
		return "inprocess"
	case types.TypeTechReport:
		return "techreport"
	case types.TypeInProceedings:
		if classify.FirstAuthorMatches(e.Field("author"), firstAuthor) {
			return "comms"
		}
	}
	return ""
}
