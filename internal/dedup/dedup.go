// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup suppresses near-duplicate text snippets. The heuristic is
// deliberately cheap and order-dependent: the first occurrence of a
// phrase wins, later near-matches are dropped. Character-set overlap
// ignores order and multiplicity; the thresholds are load-bearing for
// report output stability, so keep them as they are.
package dedup

import "strings"

// overlapThreshold is the character-set overlap ratio above which two
// long strings count as duplicates.
const overlapThreshold = 0.8

// minOverlapLen is the length in runes both strings must exceed before
// the overlap test applies. Short phrases share too few distinct
// characters for the ratio to mean anything.
const minOverlapLen = 10

// Normalize returns the comparison form of s: lowercased, spaces
// removed, fullwidth sentence punctuation folded to ASCII.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "。", ".")
	s = strings.ReplaceAll(s, "，", ",")
	return s
}

// Near reports whether two normalized strings are near-duplicates:
// either contains the other, or both exceed minOverlapLen runes and
// their character-set overlap ratio exceeds overlapThreshold.
func Near(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	runesA := []rune(a)
	runesB := []rune(b)
	if len(runesA) <= minOverlapLen || len(runesB) <= minOverlapLen {
		return false
	}

	setA := runeSet(runesA)
	setB := runeSet(runesB)

	shared := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			shared++
		}
	}

	largest := len(setA)
	if len(setB) > largest {
		largest = len(setB)
	}
	return float64(shared)/float64(largest) > overlapThreshold
}

// Filter removes near-duplicates of earlier items (first seen wins) and
// truncates the result to max entries. A max of zero or less means no cap.
func Filter(items []string, max int) []string {
	var unique []string
	var seen []string

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		norm := Normalize(trimmed)

		dup := false
		for _, s := range seen {
			if Near(norm, s) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		unique = append(unique, trimmed)
		seen = append(seen, norm)
		if max > 0 && len(unique) >= max {
			break
		}
	}
	return unique
}

func runeSet(runes []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return set
}
