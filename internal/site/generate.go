// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site generates the markdown publication pages of a personal
// academic website from a BibTeX bibliography.
package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pubpages/internal/bibtex"
	"github.com/pdiddy/pubpages/internal/classify"
	"github.com/pdiddy/pubpages/pkg/types"
)

// Output file names, fixed by the website's include layout.
const (
	AcceptedFile   = "accepted_article.md"
	InProcessFile  = "inprocess_article.md"
	TechReportFile = "tech_report.md"
	CommsFile      = "com.md"
)

// DefaultFirstAuthor is the surname matched for communications when the
// configuration does not set one.
const DefaultFirstAuthor = "Gauvain"

// MissingBibError reports a bibliography file that does not exist.
type MissingBibError struct {
	Path string
}

func (e *MissingBibError) Error() string {
	return fmt.Sprintf("bib file not found: %s", e.Path)
}

// Summary holds per-bucket entry counts from a generation run.
type Summary struct {
	Accepted    int
	InProcess   int
	TechReports int
	Comms       int
}

// Total returns the number of entries written across all buckets.
func (s Summary) Total() int {
	return s.Accepted + s.InProcess + s.TechReports + s.Comms
}

// Generate runs the full pipeline: parse the bibliography, partition the
// entries, and write the four markdown includes into cfg.OutputDir. A
// one-line summary is printed to w. Includes written before a failure
// remain on disk.
func Generate(cfg types.GenerateConfig, w io.Writer) (Summary, error) {
	if _, err := os.Stat(cfg.BibPath); err != nil {
		if os.IsNotExist(err) {
			return Summary{}, &MissingBibError{Path: cfg.BibPath}
		}
		return Summary{}, fmt.Errorf("checking %s: %w", cfg.BibPath, err)
	}

	entries, err := bibtex.ParseFile(cfg.BibPath)
	if err != nil {
		return Summary{}, err
	}

	firstAuthor := cfg.FirstAuthor
	if firstAuthor == "" {
		firstAuthor = DefaultFirstAuthor
	}

	buckets := classify.Partition(entries, firstAuthor)

	sections := []struct {
		file    string
		title   string
		entries []types.Entry
	}{
		{AcceptedFile, "Accepted articles", buckets.Accepted},
		{InProcessFile, "In-process articles", buckets.InProcess},
		{TechReportFile, "Technical reports", buckets.TechReports},
		{CommsFile, fmt.Sprintf("Communications (%s first author)", firstAuthor), buckets.Comms},
	}
	for _, s := range sections {
		if err := WriteSection(filepath.Join(cfg.OutputDir, s.file), s.title, s.entries); err != nil {
			return Summary{}, err
		}
	}

	summary := Summary{
		Accepted:    len(buckets.Accepted),
		InProcess:   len(buckets.InProcess),
		TechReports: len(buckets.TechReports),
		Comms:       len(buckets.Comms),
	}
	fmt.Fprintf(w, "Wrote: accepted=%d, inprocess=%d, techreport=%d, comms=%d to %s\n",
		summary.Accepted, summary.InProcess, summary.TechReports, summary.Comms, cfg.OutputDir)
	return summary, nil
}
