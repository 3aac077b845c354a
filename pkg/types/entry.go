// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry types drawn from the BibTeX vocabulary. Anything outside these is
// treated as an unknown type by the classifier.
const (
	TypeArticle       = "article"
	TypeInProceedings = "inproceedings"
	TypeTechReport    = "techreport"
)

// Entry is a single bibliographic record: a citation key, a lowercased
// entry type, and the named fields present in the source. Entries are
// immutable once loaded; only Key and Type are guaranteed to be set.
type Entry struct {
	// Key is the citation key (e.g. "gauvain2019asr").
	Key string `json:"key" yaml:"key"`

	// Type is the lowercased entry type (article, inproceedings, ...).
	Type string `json:"type" yaml:"type"`

	// Fields maps lowercased field names to normalized values.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Field returns the named field's value, or "" when the field is absent.
func (e Entry) Field(name string) string {
	return e.Fields[name]
}

// Has reports whether the named field is present with a non-empty value.
func (e Entry) Has(name string) bool {
	return e.Fields[name] != ""
}
