// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// combiningMarks maps symbol accent commands (\'e, \"o, \^a, ...) to the
// Unicode combining mark they apply.
var combiningMarks = map[string]rune{
	"`": 0x0300, // grave
	"'": 0x0301, // acute
	"^": 0x0302, // circumflex
	"~": 0x0303, // tilde
	"=": 0x0304, // macron
	".": 0x0307, // dot above
	`"`: 0x0308, // diaeresis
}

// letterMarks maps letter accent commands (\v{c}, \c{c}, \u{g}, ...) to
// combining marks.
var letterMarks = map[string]rune{
	"u": 0x0306, // breve
	"v": 0x030C, // caron
	"H": 0x030B, // double acute
	"c": 0x0327, // cedilla
	"k": 0x0328, // ogonek
	"r": 0x030A, // ring above
	"b": 0x0331, // macron below
	"d": 0x0323, // dot below
}

// specialGlyphs maps whole-character escapes to their Unicode forms.
var specialGlyphs = map[string]string{
	"ss": "ß",
	"ae": "æ", "AE": "Æ",
	"oe": "œ", "OE": "Œ",
	"aa": "å", "AA": "Å",
	"o": "ø", "O": "Ø",
	"l": "ł", "L": "Ł",
	"i": "ı",
}

var (
	symbolAccentRe      = regexp.MustCompile("\\\\([`'^~=.\"])\\{?([a-zA-Z])\\}?")
	letterAccentBraceRe = regexp.MustCompile(`\\([uvHckrbd])\{([a-zA-Z])\}`)
	letterAccentSpaceRe = regexp.MustCompile(`\\([uvHckrbd]) ([a-zA-Z])`)
	// The trailing optional space mirrors TeX, where whitespace ends a
	// control word and is swallowed.
	glyphRe       = regexp.MustCompile(`\\(ss|AE|ae|OE|oe|AA|aa|[oOlLi])\b ?`)
	escapedCharRe = regexp.MustCompile(`\\([&%$#_])`)
)

// LatexToUnicode converts LaTeX accent and glyph escapes in s to literal
// Unicode characters. Accented letters come out in composed (NFC) form.
func LatexToUnicode(s string) string {
	s = symbolAccentRe.ReplaceAllStringFunc(s, func(m string) string {
		g := symbolAccentRe.FindStringSubmatch(m)
		return g[2] + string(combiningMarks[g[1]])
	})
	for _, re := range []*regexp.Regexp{letterAccentBraceRe, letterAccentSpaceRe} {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			g := re.FindStringSubmatch(m)
			return g[2] + string(letterMarks[g[1]])
		})
	}
	s = glyphRe.ReplaceAllStringFunc(s, func(m string) string {
		return specialGlyphs[strings.TrimRight(m[1:], " ")]
	})
	s = escapedCharRe.ReplaceAllString(s, "$1")
	return norm.NFC.String(s)
}

// NormalizeValue canonicalizes a raw field value: LaTeX escapes become
// literal Unicode, tie characters become spaces, protective braces are
// dropped, and whitespace runs collapse to single spaces.
func NormalizeValue(s string) string {
	s = LatexToUnicode(s)
	s = strings.ReplaceAll(s, "~", " ")
	s = strings.NewReplacer("{", "", "}", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
