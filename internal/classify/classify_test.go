// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/pdiddy/pubpages/pkg/types"
)

func entry(etype, key string, fields map[string]string) types.Entry {
	if fields == nil {
		fields = map[string]string{}
	}
	return types.Entry{Key: key, Type: etype, Fields: fields}
}

func keys(entries []types.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func equalKeys(a []types.Entry, want ...string) bool {
	got := keys(a)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestPartition(t *testing.T) {
	entries := []types.Entry{
		entry("article", "a1", map[string]string{"journal": "J"}),
		entry("article", "a2", nil),
		entry("article", "a3", map[string]string{"journal": ""}),
		entry("techreport", "t1", nil),
		entry("inproceedings", "c1", map[string]string{"author": "Gauvain, J.-L. and Lamel, L."}),
		entry("inproceedings", "c2", map[string]string{"author": "Lamel, L. and Gauvain, J.-L."}),
		entry("inproceedings", "c3", map[string]string{"author": "GAUVAIN, Jean-Luc"}),
		entry("misc", "m1", nil),
		entry("book", "b1", map[string]string{"journal": "J"}),
	}

	b := Partition(entries, "Gauvain")

	if !equalKeys(b.Accepted, "a1") {
		t.Errorf("Accepted = %v, want [a1]", keys(b.Accepted))
	}
	if !equalKeys(b.InProcess, "a2", "a3") {
		t.Errorf("InProcess = %v, want [a2 a3]", keys(b.InProcess))
	}
	if !equalKeys(b.TechReports, "t1") {
		t.Errorf("TechReports = %v, want [t1]", keys(b.TechReports))
	}
	// c2's first author is Lamel, so c2 is dropped entirely.
	if !equalKeys(b.Comms, "c1", "c3") {
		t.Errorf("Comms = %v, want [c1 c3]", keys(b.Comms))
	}
}

func TestPartitionPreservesSourceOrder(t *testing.T) {
	entries := []types.Entry{
		entry("article", "z", map[string]string{"journal": "J"}),
		entry("article", "a", map[string]string{"journal": "J"}),
		entry("article", "m", map[string]string{"journal": "J"}),
	}

	b := Partition(entries, "Gauvain")
	if !equalKeys(b.Accepted, "z", "a", "m") {
		t.Errorf("Accepted = %v, want source order [z a m]", keys(b.Accepted))
	}
}

func TestFirstAuthorMatches(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		surname string
		want    bool
	}{
		{"first author exact", "Gauvain, J.-L. and Lamel, L.", "Gauvain", true},
		{"case insensitive", "gauvain, j.-l.", "Gauvain", true},
		{"substring of first token", "J.-L. Gauvain and L. Lamel", "Gauvain", true},
		{"second author only", "Lamel, L. and Gauvain, J.-L.", "Gauvain", false},
		{"no match", "Doe, J.", "Gauvain", false},
		{"empty author field", "", "Gauvain", false},
		{"empty surname", "Gauvain, J.-L.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstAuthorMatches(tt.author, tt.surname); got != tt.want {
				t.Errorf("FirstAuthorMatches(%q, %q) = %v, want %v", tt.author, tt.surname, got, tt.want)
			}
		})
	}
}
