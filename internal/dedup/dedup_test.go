// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "AssetBundle Loader", "assetbundleloader"},
		{"fullwidth punctuation", "实现了加载，优化了内存。", "实现了加载,优化了内存."},
		{"already normal", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "abcdef", "abcdef", true},
		{"substring containment", "objectpool", "implementedobjectpool", true},
		{"reversed containment", "implementedobjectpool", "objectpool", true},
		{"short and different", "abc", "xyz", false},
		// Both >10 runes, same character set in different order.
		{"charset overlap", "abcdefghijkl", "lkjihgfedcba", true},
		// Both >10 runes, disjoint character sets.
		{"long but distinct", "abcdefghijkl", "mnopqrstuvwx", false},
		// One side at the length boundary: overlap test must not apply.
		{"boundary length skips overlap", "abcdefghij", "jihgfedcba1", false},
		{"empty both", "", "", true},
		{"empty one", "", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Near(tt.a, tt.b); got != tt.want {
				t.Errorf("Near(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFilterFirstSeenWins(t *testing.T) {
	in := []string{
		"Implemented the AssetBundle loading pipeline",
		"implemented the assetbundle loading pipeline", // case duplicate
		"Built the combat state machine",
		"the AssetBundle loading pipeline", // substring of first
	}

	got := Filter(in, 0)
	want := []string{
		"Implemented the AssetBundle loading pipeline",
		"Built the combat state machine",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestFilterCap(t *testing.T) {
	in := []string{"aaa first", "bbb second", "ccc third", "ddd fourth"}

	got := Filter(in, 2)
	if len(got) != 2 {
		t.Fatalf("len(Filter(in, 2)) = %d, want 2", len(got))
	}
	if got[0] != "aaa first" || got[1] != "bbb second" {
		t.Errorf("Filter(in, 2) = %v, want first two items", got)
	}
}

func TestFilterDropsBlanks(t *testing.T) {
	got := Filter([]string{"", "   ", "real entry"}, 0)
	if len(got) != 1 || got[0] != "real entry" {
		t.Errorf("Filter() = %v, want [real entry]", got)
	}
}

// Running the filter on its own output must change nothing.
func TestFilterIdempotent(t *testing.T) {
	in := []string{
		"Optimized draw calls from 800 to 200",
		"Reduced memory usage by 40%",
		"optimized draw calls from 800 to 200 in the renderer",
		"Wrote the netcode reconciliation layer",
	}

	once := Filter(in, 6)
	twice := Filter(once, 6)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Filter not idempotent: once = %v, twice = %v", once, twice)
	}
}

func TestFilterEmpty(t *testing.T) {
	if got := Filter(nil, 5); got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
}
