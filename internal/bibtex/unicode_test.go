// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import "testing"

func TestLatexToUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"acute", `Gau\'e`, "Gaué"},
		{"acute braced letter", `\'{e}`, "é"},
		{"grave", "\\`a", "à"},
		{"diaeresis", `Schr\"odinger`, "Schrödinger"},
		{"circumflex", `\^o`, "ô"},
		{"tilde", `Espa\~na`, "España"},
		{"macron", `\=o`, "ō"},
		{"cedilla", `Fran\c{c}ois`, "François"},
		{"caron", `\v{s}`, "š"},
		{"breve", `\u{g}`, "ğ"},
		{"double acute", `\H{o}`, "ő"},
		{"ring with space form", `\r a`, "å"},
		{"sharp s", `Stra\ss e`, "Straße"},
		{"ae ligature", `\ae`, "æ"},
		{"slashed o", `\o`, "ø"},
		{"polish l", `\L ukasz`, "Łukasz"},
		{"escaped ampersand", `AT\&T`, "AT&T"},
		{"escaped percent", `100\%`, "100%"},
		{"plain text untouched", "Doe, J. and Smith, A.", "Doe, J. and Smith, A."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LatexToUnicode(tt.in); got != tt.want {
				t.Errorf("LatexToUnicode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips protective braces", "The {ASR} System", "The ASR System"},
		{"collapses whitespace", "  spread \n  over  lines ", "spread over lines"},
		{"tie becomes space", "J.-L.~Gauvain", "J.-L. Gauvain"},
		{"accents and braces together", `{\'E}tude {FINALE}`, "Étude FINALE"},
		{"empty value", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeValue(tt.in); got != tt.want {
				t.Errorf("NormalizeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
