// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubpages/internal/bibtex"
	"github.com/pdiddy/pubpages/internal/cite"
	"github.com/pdiddy/pubpages/pkg/types"
)

// WriteSection writes one markdown include: an auto-generation header, a
// level-2 heading, and a numbered citation list where each entry carries a
// collapsible block with its raw BibTeX. Any existing file at path is
// overwritten. An empty bucket still produces the header and heading.
func WriteSection(path, title string, entries []types.Entry) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	header := "<!-- Auto-generated from bib.tex -->\n<!-- Do not edit manually -->\n\n"
	header += "## " + title + "\n\n"
	lines := []string{header}

	for i, e := range entries {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, cite.Format(e)),
			"",
			"<details>",
			"<summary>BibTeX</summary>\n",
			"```bibtex",
			strings.TrimSpace(bibtex.Format(e)),
			"```",
			"</details>\n",
		)
	}

	content := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
