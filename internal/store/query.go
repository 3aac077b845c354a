// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"strings"
)

// QueryOptions holds parameters for publications queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and author.
	Query string

	// Type filters by entry type (article, inproceedings, techreport).
	Type string

	// Bucket filters by bucket label (accepted, inprocess, techreport, comms).
	Bucket string

	// Year filters by publication year.
	Year string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Type == "" && q.Bucket == "" && q.Year == ""
}

// Publication is one row of the publications index.
type Publication struct {
	Key     string `json:"key"`
	Type    string `json:"type"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Year    string `json:"year"`
	Journal string `json:"journal,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
}

// Query searches the publications index with optional full-text search and
// structured filters. Full-text results are ranked by relevance; filter-only
// results are sorted by year descending, then key.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]Publication, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.key, p.type, p.author, p.title, p.year, p.journal, p.bucket
			FROM publications_fts
			JOIN publications p ON p.rowid = publications_fts.rowid
			WHERE publications_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT p.key, p.type, p.author, p.title, p.year, p.journal, p.bucket
			FROM publications p
			WHERE 1=1`)
	}

	if opts.Type != "" {
		qb.WriteString(` AND p.type = ?`)
		args = append(args, opts.Type)
	}
	if opts.Bucket != "" {
		qb.WriteString(` AND p.bucket = ?`)
		args = append(args, opts.Bucket)
	}
	if opts.Year != "" {
		qb.WriteString(` AND p.year = ?`)
		args = append(args, opts.Year)
	}

	if useFTS {
		qb.WriteString(` ORDER BY publications_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.year DESC, p.key`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var results []Publication
	for rows.Next() {
		var p Publication
		if err := rows.Scan(&p.Key, &p.Type, &p.Author, &p.Title, &p.Year, &p.Journal, &p.Bucket); err != nil {
			return nil, fmt.Errorf("scanning publication: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating publications: %w", err)
	}
	return results, nil
}
