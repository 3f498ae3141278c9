// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score derives the assessment layer from a candidate record:
// per-project complexity estimates, per-skill proficiency, and the
// overall screening recommendation. Everything here is a pure function
// of the record; no scoring state survives between calls.
package score

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/devscreen/pkg/types"
)

// maxComplexity caps the summed bucket scores.
const maxComplexity = 100

// maxReasons bounds the qualitative labels joined into Complexity.Reason.
const maxReasons = 3

// scaleFloor is the minimum scale sub-score for projects whose
// description mentions a year-scale duration.
const scaleFloor = 15

// longDurationMonths is the month count from which a duration counts as
// year-scale.
const longDurationMonths = 12

var (
	teamSizeRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*人`),
		regexp.MustCompile(`(?i)team\s+of\s+(\d+)`),
	}
	// Duration patterns demand context so calendar years (2021年立项)
	// are not read as project length.
	yearDurationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:历时|为期|持续|开发周期|项目周期)约?\s*(\d{1,2})\s*年`),
		regexp.MustCompile(`(\d{1,2})\s*年的?(?:开发|周期|迭代)`),
		regexp.MustCompile(`(?i)(?:for|over|spanning|lasted)\s+(\d{1,2})\s+years?`),
	}
	monthDurationRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})\s*个月`),
		regexp.MustCompile(`(?i)(?:for|over|spanning|lasted)\s+(\d{1,2})\s+months?`),
	}
)

// Complexity estimates how demanding a project was from five bucketed
// dimensions: tech stack breadth, core system count, team/duration
// scale, highlight count, and description length. The sum is capped at
// 100 and mapped to a discrete level.
func Complexity(p *types.Project) types.Complexity {
	var score int
	var reasons []string

	switch n := len(p.TechStack); {
	case n >= 5:
		score += 20
		reasons = append(reasons, "rich tech stack")
	case n >= 3:
		score += 15
		reasons = append(reasons, "solid tech stack")
	case n >= 1:
		score += 8
	}

	switch n := len(p.CoreSystems); {
	case n >= 4:
		score += 25
		reasons = append(reasons, "high system complexity")
	case n >= 2:
		score += 18
		reasons = append(reasons, "multiple core systems")
	case n >= 1:
		score += 10
	}

	scale, scaleReasons := scaleScore(p.Description)
	score += scale
	reasons = append(reasons, scaleReasons...)

	switch n := len(p.TechHighlights); {
	case n >= 4:
		score += 20
		reasons = append(reasons, "many technical highlights")
	case n >= 2:
		score += 15
		reasons = append(reasons, "notable technical highlights")
	case n >= 1:
		score += 8
	}

	switch n := len([]rune(p.Description)); {
	case n >= 400:
		score += 15
		reasons = append(reasons, "detailed description")
	case n >= 200:
		score += 10
	case n >= 100:
		score += 5
	default:
		score += 2
	}

	if score > maxComplexity {
		score = maxComplexity
	}

	return types.Complexity{
		Score:  score,
		Level:  levelFor(score),
		Reason: reasonText(reasons),
	}
}

// scaleScore rates team size from the description, with a floor for
// projects that ran a year or longer.
func scaleScore(desc string) (int, []string) {
	var reasons []string

	score := 5
	switch team := firstNumber(desc, teamSizeRes); {
	case team >= 10:
		score = 20
		reasons = append(reasons, "large team project")
	case team >= 5:
		score = 15
		reasons = append(reasons, "mid-size team")
	case team >= 3:
		score = 10
	}

	if score < scaleFloor && hasLongDuration(desc) {
		score = scaleFloor
		reasons = append(reasons, "long project cycle")
	}
	return score, reasons
}

func hasLongDuration(desc string) bool {
	if firstNumber(desc, yearDurationRes) >= 1 {
		return true
	}
	return firstNumber(desc, monthDurationRes) >= longDurationMonths
}

// firstNumber returns the first captured integer across res, 0 if none.
func firstNumber(s string, res []*regexp.Regexp) int {
	for _, re := range res {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

func levelFor(score int) types.ComplexityLevel {
	switch {
	case score >= 75:
		return types.LevelHigh
	case score >= 50:
		return types.LevelMedium
	case score >= 30:
		return types.LevelModest
	default:
		return types.LevelEntry
	}
}

func reasonText(reasons []string) string {
	if len(reasons) == 0 {
		return "basic project"
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return strings.Join(reasons, "; ")
}
