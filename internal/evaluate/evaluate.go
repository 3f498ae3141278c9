// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate turns an interviewer's dimension scores into a
// weighted verdict and renders the evaluation report, including the
// interview-record blocks derived from the candidate's focus project.
package evaluate

import (
	"fmt"
	"strings"

	"github.com/pdiddy/devscreen/pkg/types"
)

// Grade bands over the weighted total.
const (
	gradeACutoff = 85
	gradeBCutoff = 70
	gradeCCutoff = 60
)

// gradeVerdicts spell out what each letter means on the report.
var gradeVerdicts = map[types.RecommendLevel]string{
	types.RecommendA: "strong hire",
	types.RecommendB: "hire",
	types.RecommendC: "weak hire",
	types.RecommendD: "no hire",
}

// WeightedTotal folds the six dimension scores into one 0-100 value
// using the fixed dimension weights.
func WeightedTotal(scores map[types.ScoreDimension]int) float64 {
	total := 0.0
	for _, dim := range types.ScoreDimensions {
		total += float64(scores[dim]) * types.DimensionWeights[dim]
	}
	return total
}

// GradeFor bands a weighted total into the hire ladder.
func GradeFor(total float64) (types.RecommendLevel, string) {
	var grade types.RecommendLevel
	switch {
	case total >= gradeACutoff:
		grade = types.RecommendA
	case total >= gradeBCutoff:
		grade = types.RecommendB
	case total >= gradeCCutoff:
		grade = types.RecommendC
	default:
		grade = types.RecommendD
	}
	return grade, gradeVerdicts[grade]
}

// ClampScore keeps a raw flag or prompt value inside the 0-100 range.
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// DrillDown is one targeted question block for the project discussion.
type DrillDown struct {
	Topic     string
	Questions []string
}

// stackDrillDowns trigger on technologies in the focus project's stack.
// Matching is a case-insensitive substring test per stack entry.
var stackDrillDowns = []struct {
	keywords []string
	block    DrillDown
}{
	{
		keywords: []string{"wwise", "fmod", "音频", "audio"},
		block: DrillDown{Topic: "Audio", Questions: []string{
			"How was audio middleware integrated: event design, bank loading, and memory cost on mobile?",
			"Describe one audio bug that only reproduced on device and how it was tracked down.",
		}},
	},
	{
		keywords: []string{"战斗", "combat", "技能", "skill system"},
		block: DrillDown{Topic: "Combat", Questions: []string{
			"Walk through the combat data flow from input to damage application, naming the owning systems.",
			"How were skills defined so designers could add one without programmer time?",
		}},
	},
	{
		keywords: []string{"行为树", "behavior tree", "寻路", "ai"},
		block: DrillDown{Topic: "AI", Questions: []string{
			"What did the AI decision structure look like, and what behavior was hardest to express in it?",
			"How many agents ran concurrently and what kept their update cost inside the frame budget?",
		}},
	},
	{
		keywords: []string{"地形", "terrain"},
		block: DrillDown{Topic: "Terrain", Questions: []string{
			"How was terrain streamed and what were the memory and draw call budgets per chunk?",
		}},
	},
	{
		keywords: []string{"特效", "vfx", "粒子", "particle"},
		block: DrillDown{Topic: "VFX", Questions: []string{
			"How were effect budgets enforced, and what happened when a particle system blew the frame time?",
		}},
	},
}

// capabilityChecks trigger on stack entries that signal depth worth a
// dedicated verification question.
var capabilityChecks = []struct {
	keyword  string
	question string
}{
	{"unitask", "Contrast UniTask with engine coroutines: scheduling, exception flow, and cancellation."},
	{"ecs", "Explain the data layout the ECS work relied on and one measured win it produced."},
	{"dots", "Explain the data layout the DOTS work relied on and one measured win it produced."},
	{"shader", "Pick one shader the candidate wrote and have them derive the core math on the whiteboard."},
}

// mandatoryBasics are asked in every interview regardless of stack.
var mandatoryBasics = []string{
	"Language fundamentals: memory model, collections, and one concurrency question.",
	"One small algorithm exercise solved on paper with complexity analysis.",
	"Debugging scenario: a crash that only appears in release builds.",
}

// followUpChecklist is the standard post-interview actions list.
var followUpChecklist = []string{
	"Write up score justifications while the interview is fresh.",
	"Flag any answer that needs verification against the resume.",
	"Confirm expected compensation and notice period with the recruiter.",
	"Decide and communicate the next round within two working days.",
}

// DrillDowns derives the targeted question blocks for the focus
// project's stack. Each topic fires at most once.
func DrillDowns(focus types.FocusProject) []DrillDown {
	var out []DrillDown
	for _, trigger := range stackDrillDowns {
		if stackMatches(focus.TechStack, trigger.keywords) {
			out = append(out, trigger.block)
		}
	}
	return out
}

// CapabilityQuestions derives verification questions from strong techs
// in the focus project's stack.
func CapabilityQuestions(focus types.FocusProject) []string {
	var out []string
	for _, check := range capabilityChecks {
		if stackMatches(focus.TechStack, []string{check.keyword}) {
			out = append(out, check.question)
		}
	}
	return out
}

// WeakAreaProbes turns reported weak areas into re-check prompts.
func WeakAreaProbes(areas []string) []string {
	var out []string
	for _, area := range areas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		out = append(out, fmt.Sprintf(
			"Candidate struggled with %s: re-probe with a smaller concrete task and record the result.", area))
	}
	return out
}

func stackMatches(stack, keywords []string) bool {
	for _, entry := range stack {
		lower := strings.ToLower(entry)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
