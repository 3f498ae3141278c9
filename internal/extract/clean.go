// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// garbleThreshold is the abnormal-character ratio above which a fragment
// counts as corrupted extraction output. Strictly greater-than: a
// fragment at exactly 30% abnormal characters passes.
const garbleThreshold = 0.30

// minUsableLen is the cleaned-fragment length in runes below which a
// garbled fragment is considered unusable and callers fall back to an
// alternate strategy.
const minUsableLen = 20

// normalPunct lists the punctuation characters counted as normal
// alongside CJK ideographs, ASCII letters and digits, and whitespace.
// Covers both ASCII and fullwidth CJK sentence punctuation.
const normalPunct = "，。、；：“”‘’（）【】—～·/\\%@#&*()_+,.:;!?<>[]{}\"'-"

// Mis-decoded byte-sequence patterns left behind by broken PDF text
// extraction: stray control characters, UTF-8 read as Latin-1
// (Ã/Â lead bytes), and replacement-character runs.
var mojibakeRes = []*regexp.Regexp{
	regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`),
	regexp.MustCompile(`[\x{C3}\x{C2}][\x{80}-\x{BF}]+`),
	regexp.MustCompile(`\x{FFFD}+`),
}

// longSymbolRunRe matches runs of 4+ characters that are neither word
// characters nor CJK ideographs, a signature of corrupted font mapping.
var longSymbolRunRe = regexp.MustCompile(`[^\w\x{4E00}-\x{9FA5}]{4,}`)

// whitespaceRunRe collapses whitespace runs inside a fragment.
var whitespaceRunRe = regexp.MustCompile(`\s+`)

// isCJK reports whether r is a CJK ideograph.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}

// isNormalRune reports whether r belongs to the "normal" character class
// used for garble detection.
func isNormalRune(r rune) bool {
	switch {
	case isCJK(r):
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\r', r == '　':
		return true
	}
	return strings.ContainsRune(normalPunct, r)
}

// AbnormalRatio returns the share of characters in s outside the normal
// class. An empty string has ratio 0. The abnormal count is divided
// directly so that a fragment with exactly 3 abnormal runes in 10 sits
// at the threshold rather than a float ulp above it.
func AbnormalRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	abnormal := 0
	for _, r := range runes {
		if !isNormalRune(r) {
			abnormal++
		}
	}
	return float64(abnormal) / float64(len(runes))
}

// Clean strips extraction noise from a text fragment and reports whether
// the fragment looked garbled before cleanup. The cleanup pass always
// runs; the flag tells callers whether to trust the result. Clean is a
// pure function: it never fails and always returns a best-effort string.
func Clean(fragment string) (string, bool) {
	garbled := AbnormalRatio(fragment) > garbleThreshold

	cleaned := fragment
	for _, re := range mojibakeRes {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}
	cleaned = stripIsolatedConsonants(cleaned)
	cleaned = longSymbolRunRe.ReplaceAllString(cleaned, " ")
	cleaned = whitespaceRunRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	return cleaned, garbled
}

// Usable reports whether a cleaned fragment flagged as garbled still
// carries enough text to be worth keeping.
func Usable(cleaned string) bool {
	return len([]rune(cleaned)) >= minUsableLen
}

// stripIsolatedConsonants removes single Latin consonants with no letter
// on either side, an artifact of bad font mapping in extracted PDFs.
// Vowels stay: "a" and "I" are legitimate one-letter English words.
func stripIsolatedConsonants(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	isLetter := func(i int) bool {
		if i < 0 || i >= len(runes) {
			return false
		}
		r := runes[i]
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}

	for i, r := range runes {
		if isIsolatableConsonant(r) && !isLetter(i-1) && !isLetter(i+1) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isIsolatableConsonant(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return false
	}
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
