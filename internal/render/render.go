// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces the analyzer's Markdown documents: the skill
// assessment report and the interview question list. Documents carry
// YAML frontmatter and deterministic filenames derived from the
// candidate name and generation date.
package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dateStamp is the filename date layout.
const dateStamp = "20060102"

// Field is one ordered frontmatter key/value pair.
type Field struct {
	Key   string
	Value string
}

// Frontmatter renders a YAML frontmatter block. Values are quoted so
// names with colons or quotes stay valid YAML.
func Frontmatter(fields []Field) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "%s: %q\n", f.Key, f.Value)
	}
	b.WriteString("---\n\n")
	return b.String()
}

var (
	slugStripRe    = regexp.MustCompile(`[\\/:*?"<>|]+`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`-{2,}`)
)

// Slug turns a candidate name into a filename-safe token. Whitespace
// becomes hyphens, path and shell-hostile characters are stripped, and
// CJK characters pass through unchanged.
func Slug(name string) string {
	s := slugStripRe.ReplaceAllString(name, "")
	s = slugSpaceRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugCollapseRe.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "candidate"
	}
	return s
}

// AssessmentFilename names the skill assessment report file.
func AssessmentFilename(name string, at time.Time) string {
	return fmt.Sprintf("skill-assessment-%s-%s.md", Slug(name), at.Format(dateStamp))
}

// QuestionsFilename names the interview question list file.
func QuestionsFilename(name string, at time.Time) string {
	return fmt.Sprintf("interview-questions-%s-%s.md", Slug(name), at.Format(dateStamp))
}

// EvaluationFilename names the interview evaluation report file.
func EvaluationFilename(name string, at time.Time) string {
	return fmt.Sprintf("interview-evaluation-%s-%s.md", Slug(name), at.Format(dateStamp))
}

// escapeCell makes a value safe inside a Markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// valueOr substitutes a placeholder for empty table values.
func valueOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
