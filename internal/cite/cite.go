// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite renders one-line human-readable citations from bibliography
// entries. The exact output shape is load-bearing: the website embeds these
// strings verbatim.
package cite

import (
	"strings"

	"github.com/pdiddy/pubpages/pkg/types"
)

// Authors formats an author field for display. Authors are separated by
// " and " in BibTeX; two render as "A and B", three or more use the Oxford
// comma: "A, B, and C".
func Authors(field string) string {
	var names []string
	for _, part := range strings.Split(field, " and ") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}

// Format renders e as a single-line citation. All entry types share the
// author/year prefix and title; the venue segment branches on type. Empty
// segments are dropped and the rest joined with single spaces. A missing
// year renders as "n.d.".
func Format(e types.Entry) string {
	parts := []string{prefix(e)}

	if title := strings.TrimSpace(e.Field("title")); title != "" {
		parts = append(parts, title+".")
	}

	switch e.Type {
	case types.TypeArticle:
		parts = append(parts, articleVenue(e))
	case types.TypeInProceedings:
		if book := strings.TrimSpace(e.Field("booktitle")); book != "" {
			parts = append(parts, "In "+book+".")
		}
		if pages := e.Field("pages"); pages != "" {
			parts = append(parts, "pp. "+pages+".")
		}
	case types.TypeTechReport:
		if inst := strings.TrimSpace(e.Field("institution")); inst != "" {
			parts = append(parts, inst+".")
		}
	}

	return join(parts)
}

// prefix renders the leading "{authors} ({year})" segment.
func prefix(e types.Entry) string {
	year := e.Field("year")
	if year == "" {
		year = "n.d."
	}
	if authors := Authors(e.Field("author")); authors != "" {
		return authors + " (" + year + ")"
	}
	return "(" + year + ")"
}

// articleVenue renders "{journal}[, {volume}][({number})][: {pages}]." when
// a journal is present, or "pp. {pages}." when only pages are.
func articleVenue(e types.Entry) string {
	journal := strings.TrimSpace(e.Field("journal"))
	if journal == "" {
		if pages := e.Field("pages"); pages != "" {
			return "pp. " + pages + "."
		}
		return ""
	}
	venue := journal
	if v := e.Field("volume"); v != "" {
		venue += ", " + v
	}
	if n := e.Field("number"); n != "" {
		venue += "(" + n + ")"
	}
	if p := e.Field("pages"); p != "" {
		venue += ": " + p
	}
	return venue + "."
}

func join(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
