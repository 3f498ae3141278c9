// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/devscreen/internal/render"
	"github.com/pdiddy/devscreen/pkg/types"
)

const reportTitle = "Interview Evaluation Report"

// Report renders the evaluation document: scores, verdict, and the
// interview-record blocks an interviewer completes afterwards.
func Report(ev *types.Evaluation, at time.Time, version string) string {
	total := WeightedTotal(ev.Scores)
	grade, verdict := GradeFor(total)

	var b strings.Builder
	b.WriteString(render.Frontmatter([]render.Field{
		{Key: "title", Value: reportTitle},
		{Key: "candidate", Value: ev.Candidate},
		{Key: "generated_at", Value: at.Format("2006-01-02")},
		{Key: "generator", Value: "devscreen " + version},
	}))
	fmt.Fprintf(&b, "# %s: %s\n\n", reportTitle, ev.Candidate)

	b.WriteString("## Basic Information\n\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| Candidate | %s |\n", cell(ev.Candidate))
	fmt.Fprintf(&b, "| Position | %s |\n", cell(ev.Position))
	fmt.Fprintf(&b, "| Interviewer | %s |\n", cell(ev.Interviewer))
	fmt.Fprintf(&b, "| Date | %s |\n\n", at.Format("2006-01-02"))

	b.WriteString("## Score Summary\n\n")
	fmt.Fprintf(&b, "- Weighted total: **%.1f**/100\n", total)
	fmt.Fprintf(&b, "- Grade: **%s** (%s)\n\n", grade, verdict)
	b.WriteString("| Dimension | Weight | Score |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, dim := range types.ScoreDimensions {
		fmt.Fprintf(&b, "| %s | %.0f%% | %d |\n",
			types.DimensionLabels[dim], types.DimensionWeights[dim]*100, ev.Scores[dim])
	}
	b.WriteString("\n")

	writeList(&b, "Highlights", ev.Highlights)
	writeList(&b, "Risks", ev.Risks)

	if ev.Recommendation != "" {
		b.WriteString("## Recommendation\n\n")
		b.WriteString(ev.Recommendation)
		b.WriteString("\n\n")
	}

	writeInterviewRecord(&b, ev)

	b.WriteString("## Follow-Up Checklist\n\n")
	for _, item := range followUpChecklist {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}
	return b.String()
}

// writeInterviewRecord emits the prepared question blocks: project
// drill-downs, capability checks, weak-area probes, and the basics.
func writeInterviewRecord(b *strings.Builder, ev *types.Evaluation) {
	b.WriteString("## Interview Record\n\n")

	if ev.FocusProject.Name != "" {
		fmt.Fprintf(b, "### Project Drill-Down: %s\n\n", ev.FocusProject.Name)
		if ev.FocusProject.Role != "" {
			fmt.Fprintf(b, "- Role: %s\n", ev.FocusProject.Role)
		}
		if len(ev.FocusProject.TechStack) > 0 {
			fmt.Fprintf(b, "- Tech stack: %s\n", strings.Join(ev.FocusProject.TechStack, ", "))
		}
		b.WriteString("\n")
		for _, block := range DrillDowns(ev.FocusProject) {
			fmt.Fprintf(b, "#### %s\n\n", block.Topic)
			numbered(b, block.Questions)
		}
		if capability := CapabilityQuestions(ev.FocusProject); len(capability) > 0 {
			b.WriteString("#### Capability Checks\n\n")
			numbered(b, capability)
		}
	}

	if probes := WeakAreaProbes(ev.WeakAreas); len(probes) > 0 {
		b.WriteString("### Weak Area Probes\n\n")
		numbered(b, probes)
	}

	b.WriteString("### Mandatory Basics\n\n")
	numbered(b, mandatoryBasics)
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func numbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
