// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/pubpages/pkg/types"
)

// Format renders e back to BibTeX text. Fields are written in sorted order
// so output is deterministic; Parse(Format(e)) yields the entry again
// modulo field order.
func Format(e types.Entry) string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.Key)
	for i, name := range names {
		fmt.Fprintf(&b, " %s = {%s}", name, e.Fields[name])
		if i < len(names)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}
