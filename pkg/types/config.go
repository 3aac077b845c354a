// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// GenerateConfig holds settings for the generate stage.
type GenerateConfig struct {
	// BibPath is the path to the BibTeX source file (default "bib.tex").
	BibPath string `json:"bib_path" yaml:"bib_path"`

	// OutputDir is the directory the markdown includes are written into
	// (default "_pages/includes").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// FirstAuthor is the surname matched against the first listed author
	// when selecting communications (default "Gauvain"). The match is a
	// case-insensitive substring test.
	FirstAuthor string `json:"first_author" yaml:"first_author"`
}

// StoreConfig holds settings for the publications index.
type StoreConfig struct {
	// DataDir is the base directory for the index (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
