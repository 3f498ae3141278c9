// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/devscreen/internal/questions"
	"github.com/pdiddy/devscreen/pkg/types"
)

const questionsTitle = "Interview Question List"

const degradedNote = "> ⚠ Question banks could not be loaded; this list was drawn from the reduced built-in set.\n\n"

// QuestionList renders the interview question document: per-skill
// sections, weakness probes, project deep dives, general questions, and
// the fixed scoring rubric.
func QuestionList(rec *types.CandidateRecord, set *questions.Set, at time.Time, version string) string {
	var b strings.Builder
	b.WriteString(Frontmatter([]Field{
		{"title", questionsTitle},
		{"candidate", rec.Name},
		{"generated_at", at.Format("2006-01-02")},
		{"generator", "devscreen " + version},
	}))
	fmt.Fprintf(&b, "# %s: %s\n\n", questionsTitle, rec.Name)

	if set.Degraded {
		b.WriteString(degradedNote)
	}

	if len(set.Skills) > 0 {
		b.WriteString("## Skill Questions\n\n")
		for _, sec := range set.Skills {
			fmt.Fprintf(&b, "### %s (%s)\n\n", sec.Skill, sec.Level)
			for i, q := range sec.Questions {
				fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, q.Tier.Label(), q.Text)
			}
			b.WriteString("\n")
		}
	}

	if len(set.Weakness) > 0 {
		b.WriteString("## Weakness Probes\n\n")
		for i, q := range set.Weakness {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
		}
		b.WriteString("\n")
	}

	if len(set.Projects) > 0 || len(set.ProjectClosers) > 0 {
		b.WriteString("## Project Deep Dives\n\n")
		for _, probe := range set.Projects {
			fmt.Fprintf(&b, "### %s\n\n", probe.Project)
			writeNumbered(&b, probe.Questions)
		}
		if len(set.ProjectClosers) > 0 {
			b.WriteString("### General Deep Dives\n\n")
			writeNumbered(&b, set.ProjectClosers)
		}
	}

	if len(set.General) > 0 {
		b.WriteString("## General Questions\n\n")
		writeNumbered(&b, set.General)
	}

	writeRubric(&b)
	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}

// writeRubric emits the fixed scoring table interviewers fill in.
func writeRubric(b *strings.Builder) {
	b.WriteString("## Scoring Rubric\n\n")
	b.WriteString("| Dimension | Weight | Score (0-100) |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, dim := range types.ScoreDimensions {
		fmt.Fprintf(b, "| %s | %.0f%% | |\n",
			types.DimensionLabels[dim], types.DimensionWeights[dim]*100)
	}
	b.WriteString("\n")
}
