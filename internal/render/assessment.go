// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/devscreen/pkg/types"
)

const assessmentTitle = "Skill Assessment Report"

// levelGlyphs render proficiency at a glance in skill listings.
var levelGlyphs = map[types.Proficiency]string{
	types.SkillBeginner:     "★☆☆",
	types.SkillIntermediate: "★★☆",
	types.SkillAdvanced:     "★★★",
}

var categorySections = []struct {
	cat     types.SkillCategory
	heading string
}{
	{types.CategoryLanguages, "Languages"},
	{types.CategoryEngines, "Engines"},
	{types.CategoryDomain, "Domain Skills"},
	{types.CategoryTools, "Tools"},
}

// SkillAssessment renders the full assessment document for one
// candidate: basic info, rated skills, per-project breakdowns, and the
// screening verdict.
func SkillAssessment(rec *types.CandidateRecord, analysis *types.Analysis, at time.Time, version string) string {
	var b strings.Builder
	b.WriteString(Frontmatter([]Field{
		{"title", assessmentTitle},
		{"candidate", rec.Name},
		{"generated_at", at.Format("2006-01-02")},
		{"generator", "devscreen " + version},
	}))
	fmt.Fprintf(&b, "# %s: %s\n\n", assessmentTitle, rec.Name)

	b.WriteString("## Basic Information\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| Name | %s |\n", escapeCell(rec.Name))
	fmt.Fprintf(&b, "| Position | %s |\n", escapeCell(valueOr(rec.Position)))
	fmt.Fprintf(&b, "| Experience | %s |\n", escapeCell(valueOr(rec.ExperienceYears)))
	fmt.Fprintf(&b, "| Education | %s |\n", escapeCell(valueOr(rec.Education)))
	fmt.Fprintf(&b, "| Generated | %s |\n\n", at.Format("2006-01-02"))

	writeRatings(&b, analysis.Ratings)

	if len(rec.Projects) > 0 {
		b.WriteString("## Projects\n\n")
		for i, p := range rec.Projects {
			writeProject(&b, i+1, p)
		}
	}

	writeBullets(&b, "Work Experience", rec.WorkExperience)
	writeBullets(&b, "Advantages", analysis.Advantages)
	writeBullets(&b, "Risks", analysis.Risks)

	verdict := analysis.Recommendation
	b.WriteString("## Recommendation\n\n")
	fmt.Fprintf(&b, "- Grade: **%s**\n", verdict.Level)
	if len(verdict.Positions) > 0 {
		fmt.Fprintf(&b, "- Suitable positions: %s\n", strings.Join(verdict.Positions, ", "))
	}
	if verdict.Note != "" {
		fmt.Fprintf(&b, "- Note: %s\n", verdict.Note)
	}
	return b.String()
}

func writeRatings(b *strings.Builder, ratings []types.SkillRating) {
	if len(ratings) == 0 {
		return
	}
	b.WriteString("## Skill Proficiency\n\n")
	for _, group := range categorySections {
		var lines []string
		for _, r := range ratings {
			if r.Category != group.cat {
				continue
			}
			line := fmt.Sprintf("- **%s** %s %s", r.Name, levelGlyphs[r.Level], r.Level)
			if r.Projects == 1 {
				line += " (used in 1 project)"
			} else if r.Projects > 1 {
				line += fmt.Sprintf(" (used in %d projects)", r.Projects)
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", group.heading)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func writeProject(b *strings.Builder, n int, p *types.Project) {
	fmt.Fprintf(b, "### %d. %s\n\n", n, p.Name)
	if p.Garbled {
		b.WriteString("> ⚠ The source description for this project was garbled during extraction; verify details with the candidate.\n\n")
	}
	fmt.Fprintf(b, "- Type: %s\n", p.Type)
	if p.Role != "" {
		fmt.Fprintf(b, "- Role: %s\n", p.Role)
	}
	fmt.Fprintf(b, "- Complexity: %d/100 (%s): %s\n",
		p.Complexity.Score, p.Complexity.Level, p.Complexity.Reason)
	if len(p.TechStack) > 0 {
		fmt.Fprintf(b, "- Tech stack: %s\n", strings.Join(p.TechStack, ", "))
	}
	if len(p.CoreSystems) > 0 {
		fmt.Fprintf(b, "- Core systems: %s\n", formatSystems(p.CoreSystems))
	}
	writeNested(b, "Highlights", p.TechHighlights)
	writeNested(b, "Contributions", p.Contributions)
	b.WriteString("\n")
}

func formatSystems(systems []types.CoreSystem) string {
	parts := make([]string, 0, len(systems))
	for _, s := range systems {
		if s.Inferred {
			parts = append(parts, s.Name+" (inferred)")
		} else {
			parts = append(parts, s.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func writeNested(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
