// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubpages/pkg/types"
)

func TestParse(t *testing.T) {
	input := `
@article{doe2020,
 Author = {Doe, J. and Smith, A.},
 title = "A Study",
 year = 2020,
 journal = {J. Results},
}

@comment{ignore me {even nested} }

@TechReport{r1,
 title = {Internal {Report}},
 institution = {LIMSI}
}
`
	entries, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "doe2020", first.Key)
	assert.Equal(t, "article", first.Type)
	assert.Equal(t, "Doe, J. and Smith, A.", first.Field("author"))
	assert.Equal(t, "A Study", first.Field("title"))
	assert.Equal(t, "2020", first.Field("year"))
	assert.Equal(t, "J. Results", first.Field("journal"))

	second := entries[1]
	assert.Equal(t, "r1", second.Key)
	assert.Equal(t, "techreport", second.Type)
	assert.Equal(t, "Internal Report", second.Field("title"))
}

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Entry
	}{
		{
			name:  "parenthesized entry",
			input: `@article(k1, title = {T})`,
			want:  types.Entry{Key: "k1", Type: "article", Fields: map[string]string{"title": "T"}},
		},
		{
			name:  "string concatenation",
			input: `@misc{k2, title = "Deep" # " Learning"}`,
			want:  types.Entry{Key: "k2", Type: "misc", Fields: map[string]string{"title": "Deep Learning"}},
		},
		{
			name:  "quote inside braced group",
			input: `@misc{k3, title = {The "Best" {Effort}}}`,
			want:  types.Entry{Key: "k3", Type: "misc", Fields: map[string]string{"title": "The \"Best\" Effort"}},
		},
		{
			name:  "accented value",
			input: `@misc{k4, author = {Gauvain, J.-L. and Fran\c{c}ois, M.}}`,
			want:  types.Entry{Key: "k4", Type: "misc", Fields: map[string]string{"author": "Gauvain, J.-L. and François, M."}},
		},
		{
			name:  "skips string block",
			input: "@string{limsi = {LIMSI}}\n@misc{k5, year = 1994}",
			want:  types.Entry{Key: "k5", Type: "misc", Fields: map[string]string{"year": "1994"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0])
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unbalanced braces", `@article{k1, title = {open`},
		{"missing equals", `@article{k1, title {T}}`},
		{"truncated entry", `@article{k1, title = {T},`},
		{"unterminated quote", `@article{k1, title = "T}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.bib"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestRoundTrip(t *testing.T) {
	e := types.Entry{
		Key:  "gauvain1994",
		Type: "inproceedings",
		Fields: map[string]string{
			"author":    "Gauvain, J.-L. and Lamel, L.",
			"title":     "Speaker adaptation études",
			"booktitle": "Proc. ICASSP",
			"year":      "1994",
			"pages":     "12-15",
		},
	}

	back, err := Parse(strings.NewReader(Format(e)))
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, e, back[0])
}

func TestFormatDeterministic(t *testing.T) {
	e := types.Entry{
		Key:    "k1",
		Type:   "article",
		Fields: map[string]string{"year": "2020", "author": "Doe, J.", "title": "T"},
	}

	want := "@article{k1,\n author = {Doe, J.},\n title = {T},\n year = {2020}\n}"
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, Format(e))
	}
}
