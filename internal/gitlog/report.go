// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gitlog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/devscreen/internal/dedup"
	"github.com/pdiddy/devscreen/pkg/types"
)

// maxSubjectLen bounds subjects in the commit table.
const maxSubjectLen = 50

// typePriority fixes the section order in the rendered report.
var typePriority = []types.CommitType{
	types.CommitFeat, types.CommitFix, types.CommitArt, types.CommitRefactor,
	types.CommitPerf, types.CommitDocs, types.CommitTest, types.CommitChore,
	types.CommitStyle, types.CommitBuild, types.CommitCI, types.CommitRevert,
	types.CommitOther,
}

// typeLabels are the section headings per commit type.
var typeLabels = map[types.CommitType]string{
	types.CommitFeat:     "Features",
	types.CommitFix:      "Fixes",
	types.CommitArt:      "Art & Assets",
	types.CommitRefactor: "Refactoring",
	types.CommitPerf:     "Performance",
	types.CommitDocs:     "Documentation",
	types.CommitTest:     "Tests",
	types.CommitChore:    "Chores",
	types.CommitStyle:    "Style",
	types.CommitBuild:    "Build",
	types.CommitCI:       "CI",
	types.CommitRevert:   "Reverts",
	types.CommitOther:    "Other",
}

// Summary is the grouped view of a commit range.
type Summary struct {
	Total   int
	Counts  map[types.CommitType]int
	ByType  map[types.CommitType][]string
	Authors []string
}

// Summarize groups commits by type: subjects lose their type prefix,
// near-duplicate subjects merge into one bullet, authors are collected
// sorted.
func Summarize(commits []types.Commit) *Summary {
	s := &Summary{
		Total:  len(commits),
		Counts: make(map[types.CommitType]int),
		ByType: make(map[types.CommitType][]string),
	}

	raw := make(map[types.CommitType][]string)
	authorSet := make(map[string]bool)
	for _, c := range commits {
		s.Counts[c.Type]++
		raw[c.Type] = append(raw[c.Type], StripTypePrefix(c.Subject))
		if c.Author != "" {
			authorSet[c.Author] = true
		}
	}
	for t, subjects := range raw {
		s.ByType[t] = dedup.Filter(subjects, 0)
	}

	for a := range authorSet {
		s.Authors = append(s.Authors, a)
	}
	sort.Strings(s.Authors)
	return s
}

// Markdown renders the weekly report. The until bound is exclusive, so
// the displayed range ends the day before.
func Markdown(commits []types.Commit, since, until time.Time) string {
	sum := Summarize(commits)

	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Report (%s to %s)\n\n",
		since.Format(dayLayout), until.AddDate(0, 0, -1).Format(dayLayout))

	if sum.Total == 0 {
		b.WriteString("No commits in this range.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total commits: %d (%s)\n\n", sum.Total, countsLine(sum.Counts))

	for _, t := range typePriority {
		bullets := sum.ByType[t]
		if len(bullets) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s (%d)\n\n", typeLabels[t], sum.Counts[t])
		for _, bullet := range bullets {
			fmt.Fprintf(&b, "- %s\n", escapePipes(bullet))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Commits\n\n")
	b.WriteString("| Date | Type | Subject | Author |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, c := range commits {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			c.Date.Format(dayLayout), c.Type,
			escapePipes(truncateSubject(c.Subject)), escapePipes(c.Author))
	}
	b.WriteString("\n")

	if len(sum.Authors) > 0 {
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(sum.Authors, ", "))
	}
	return b.String()
}

// ToJSON dumps the collected commits for downstream tooling.
func ToJSON(commits []types.Commit) ([]byte, error) {
	data, err := json.MarshalIndent(commits, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding commits: %w", err)
	}
	return data, nil
}

// countsLine renders per-type counts sorted by count descending, ties
// broken by section priority.
func countsLine(counts map[types.CommitType]int) string {
	type entry struct {
		t        types.CommitType
		n        int
		priority int
	}
	var entries []entry
	for i, t := range typePriority {
		if counts[t] > 0 {
			entries = append(entries, entry{t, counts[t], i})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].n != entries[j].n {
			return entries[i].n > entries[j].n
		}
		return entries[i].priority < entries[j].priority
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s %d", e.t, e.n)
	}
	return strings.Join(parts, ", ")
}

func truncateSubject(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSubjectLen {
		return s
	}
	return string(runes[:maxSubjectLen]) + "..."
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
