// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex parses BibTeX bibliographies into Entry records and
// re-serializes them deterministically. Field values are normalized to
// literal Unicode on load (see unicode.go).
package bibtex

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pdiddy/pubpages/pkg/types"
)

// Parse reads BibTeX entries from r in source order. @comment, @preamble
// and @string blocks are skipped. Entry types and field names are
// lowercased; field values are accent-normalized and brace-stripped.
func Parse(r io.Reader) ([]types.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography: %w", err)
	}
	p := &parser{src: []rune(string(data))}
	return p.parse()
}

// ParseFile reads BibTeX entries from the file at path.
func ParseFile(path string) ([]types.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) parse() ([]types.Entry, error) {
	var entries []types.Entry
	for p.seek('@') {
		p.pos++
		name := strings.ToLower(p.ident())
		switch name {
		case "comment", "preamble", "string":
			if err := p.skipBlock(); err != nil {
				return nil, fmt.Errorf("@%s block: %w", name, err)
			}
			continue
		case "":
			return nil, fmt.Errorf("offset %d: expected entry type after '@'", p.pos)
		}
		e, err := p.entry(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// seek advances to the next occurrence of ch, reporting whether one exists.
func (p *parser) seek(ch rune) bool {
	for p.pos < len(p.src) {
		if p.src[p.pos] == ch {
			return true
		}
		p.pos++
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// ident reads an identifier: letters, digits, '-' and '_'.
func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// entry parses the body of an @etype{key, field = value, ...} record.
func (p *parser) entry(etype string) (types.Entry, error) {
	p.skipSpace()
	stop, err := p.opener()
	if err != nil {
		return types.Entry{}, fmt.Errorf("entry @%s: %w", etype, err)
	}

	p.skipSpace()
	key := strings.TrimSpace(p.until(',', stop))
	if p.pos < len(p.src) && p.src[p.pos] == ',' {
		p.pos++
	}

	e := types.Entry{
		Key:    key,
		Type:   etype,
		Fields: map[string]string{},
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return e, fmt.Errorf("entry @%s{%s: unexpected end of input", etype, e.Key)
		}
		if p.src[p.pos] == stop {
			p.pos++
			return e, nil
		}
		name := strings.ToLower(p.ident())
		if name == "" {
			return e, fmt.Errorf("entry @%s{%s: expected field name at offset %d", etype, e.Key, p.pos)
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '=' {
			return e, fmt.Errorf("entry @%s{%s: expected '=' after field %q", etype, e.Key, name)
		}
		p.pos++
		val, err := p.value(stop)
		if err != nil {
			return e, fmt.Errorf("entry @%s{%s, field %q: %w", etype, e.Key, name, err)
		}
		e.Fields[name] = NormalizeValue(val)
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
		}
	}
}

// opener consumes the entry's opening delimiter and returns the matching
// closing one.
func (p *parser) opener() (rune, error) {
	if p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			p.pos++
			return '}', nil
		case '(':
			p.pos++
			return ')', nil
		}
	}
	return 0, fmt.Errorf("expected '{' or '(' at offset %d", p.pos)
}

// until consumes runes up to (not including) any of the stop runes.
func (p *parser) until(stops ...rune) string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		for _, s := range stops {
			if c == s {
				return string(p.src[start:p.pos])
			}
		}
		p.pos++
	}
	return string(p.src[start:])
}

// value reads a field value: one or more parts joined by '#'. Each part is
// a braced group, a quoted string, or a bare token.
func (p *parser) value(stop rune) (string, error) {
	var b strings.Builder
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return "", fmt.Errorf("unexpected end of input in value")
		}
		switch p.src[p.pos] {
		case '{':
			part, err := p.braced()
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		case '"':
			part, err := p.quoted()
			if err != nil {
				return "", err
			}
			b.WriteString(part)
		default:
			start := p.pos
			for p.pos < len(p.src) {
				c := p.src[p.pos]
				if c == ',' || c == stop || c == '#' || unicode.IsSpace(c) {
					break
				}
				p.pos++
			}
			b.WriteString(string(p.src[start:p.pos]))
		}
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '#' {
			p.pos++
			continue
		}
		return b.String(), nil
	}
}

// braced consumes a balanced {...} group and returns its contents with the
// outer braces removed and inner braces preserved.
func (p *parser) braced() (string, error) {
	p.pos++
	start := p.pos
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				s := string(p.src[start:p.pos])
				p.pos++
				return s, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unbalanced braces")
}

// quoted consumes a "..." string. Braces nest inside quotes, and a quote
// inside a braced group does not terminate the string.
func (p *parser) quoted() (string, error) {
	p.pos++
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				s := string(p.src[start:p.pos])
				p.pos++
				return s, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated quoted string")
}

// skipBlock skips a balanced {...} or (...) block after @comment, @preamble
// or @string. A block without an opening delimiter is left for the main
// loop, which scans forward to the next '@'.
func (p *parser) skipBlock() error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil
	}
	var open, stop rune
	switch p.src[p.pos] {
	case '{':
		open, stop = '{', '}'
	case '(':
		open, stop = '(', ')'
	default:
		return nil
	}
	p.pos++
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case open:
			depth++
		case stop:
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return fmt.Errorf("unterminated block")
}
