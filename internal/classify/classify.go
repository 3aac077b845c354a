// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify partitions bibliography entries into the four buckets
// behind the generated publication pages.
package classify

import (
	"strings"

	"github.com/pdiddy/pubpages/pkg/types"
)

// Buckets holds the four output partitions in source order.
type Buckets struct {
	// Accepted holds article entries with a non-empty journal field.
	Accepted []types.Entry

	// InProcess holds article entries without a journal.
	InProcess []types.Entry

	// TechReports holds techreport entries.
	TechReports []types.Entry

	// Comms holds inproceedings entries whose first listed author matches
	// the configured surname.
	Comms []types.Entry
}

// Partition assigns each entry to at most one bucket. Inproceedings whose
// first author does not match firstAuthor are dropped, as are entry types
// outside the article/techreport/inproceedings vocabulary.
func Partition(entries []types.Entry, firstAuthor string) Buckets {
	var b Buckets
	for _, e := range entries {
		switch e.Type {
		case types.TypeArticle:
			if e.Has("journal") {
				b.Accepted = append(b.Accepted, e)
			} else {
				b.InProcess = append(b.InProcess, e)
			}
		case types.TypeTechReport:
			b.TechReports = append(b.TechReports, e)
		case types.TypeInProceedings:
			if FirstAuthorMatches(e.Field("author"), firstAuthor) {
				b.Comms = append(b.Comms, e)
			}
		}
	}
	return b
}

// FirstAuthorMatches reports whether the first " and "-separated token of
// authorField contains surname, case-insensitively.
func FirstAuthorMatches(authorField, surname string) bool {
	if authorField == "" || surname == "" {
		return false
	}
	first := strings.SplitN(authorField, " and ", 2)[0]
	return strings.Contains(strings.ToLower(first), strings.ToLower(surname))
}
