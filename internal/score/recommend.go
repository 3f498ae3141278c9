// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/devscreen/pkg/types"
)

// seniorPositionRe flags target positions that demand seniority.
var seniorPositionRe = regexp.MustCompile(`(?i)高级|资深|专家|主程|senior|lead|principal|staff`)

// weakExperience lists experience summaries that carry no professional
// track record.
var weakExperience = map[string]bool{
	types.Unknown:    true,
	"intern":         true,
	"fresh graduate": true,
}

// Recommend grades the candidate on project and language counts and
// derives suitable positions from the detected engines and domain.
func Recommend(rec *types.CandidateRecord) types.Recommendation {
	projects := len(rec.Projects)
	languages := len(rec.Skills.Languages)

	var level types.RecommendLevel
	var note string
	switch {
	case projects >= 3 && languages >= 2:
		level = types.RecommendA
		note = "Strong project record; proceed to a technical interview."
	case projects >= 2:
		level = types.RecommendB
		note = "Promising profile; verify depth of the listed projects."
	case projects >= 1:
		level = types.RecommendC
		note = "Junior profile; screen fundamentals before an interview."
	default:
		level = types.RecommendD
		note = "No verifiable projects; consider a written screen first."
	}

	return types.Recommendation{
		Level:     level,
		Positions: suitablePositions(rec),
		Note:      note,
	}
}

// suitablePositions maps detected engines and domain skills to hiring
// tracks, with an intern track as the fallback.
func suitablePositions(rec *types.CandidateRecord) []string {
	var positions []string
	if contains(rec.Skills.Engines, "Unity") {
		positions = append(positions, "Unity Client Developer")
	}
	if contains(rec.Skills.Engines, "Unreal") {
		positions = append(positions, "Unreal Developer")
	}
	if contains(rec.Skills.Domain, "Network Sync") || hasCoreSystem(rec, "netcode") {
		positions = append(positions, "Game Server Developer")
	}
	if len(positions) == 0 {
		positions = append(positions, "Game Developer Intern")
	}
	return positions
}

// Advantages lists detected strengths in a fixed rule order.
func Advantages(rec *types.CandidateRecord) []string {
	var out []string

	if len(rec.Skills.Engines) >= 2 {
		out = append(out, fmt.Sprintf("Cross-engine experience (%s)", strings.Join(rec.Skills.Engines, ", ")))
	}
	if len(rec.Skills.Languages) >= 3 {
		out = append(out, fmt.Sprintf("Broad language coverage (%s)", strings.Join(rec.Skills.Languages, ", ")))
	}
	if p := bestProject(rec); p != nil {
		out = append(out, fmt.Sprintf("Has %s-complexity project experience (%s)", p.Complexity.Level, p.Name))
	}
	if hasNetcodeAndAI(rec) {
		out = append(out, "Combines netcode and AI system experience")
	}
	if len(rec.Skills.Tools) >= 3 {
		out = append(out, fmt.Sprintf("Comfortable with engineering tooling (%s)", strings.Join(rec.Skills.Tools[:3], ", ")))
	}
	return out
}

// Risks lists interview flags in a fixed rule order.
func Risks(rec *types.CandidateRecord) []string {
	var out []string

	if len(rec.Projects) == 0 {
		out = append(out, "No verifiable project experience")
	}
	if len(rec.Skills.Languages) <= 1 {
		out = append(out, "Narrow language exposure")
	}
	if len(rec.Projects) > 0 && allEntryLevel(rec) {
		out = append(out, "All projects score entry-level complexity")
	}
	if weakExperience[rec.ExperienceYears] && seniorPositionRe.MatchString(rec.Position) {
		out = append(out, "Experience signals fall short of the target position seniority")
	}
	if anyGarbled(rec) {
		out = append(out, "Some project descriptions were garbled during extraction; verify them manually")
	}
	if anyAllInferredSystems(rec) {
		out = append(out, "Core systems for some projects are inferred from context, not stated")
	}
	return out
}

// bestProject returns the highest-scoring project at medium complexity
// or above, nil if none qualifies.
func bestProject(rec *types.CandidateRecord) *types.Project {
	var best *types.Project
	for _, p := range rec.Projects {
		if p.Complexity.Level != types.LevelHigh && p.Complexity.Level != types.LevelMedium {
			continue
		}
		if best == nil || p.Complexity.Score > best.Complexity.Score {
			best = p
		}
	}
	return best
}

func hasNetcodeAndAI(rec *types.CandidateRecord) bool {
	netcode := contains(rec.Skills.Domain, "Network Sync") || hasCoreSystem(rec, "netcode")
	ai := hasCoreSystem(rec, "ai")
	for _, name := range []string{"Behavior Tree", "State Machine", "Pathfinding"} {
		ai = ai || contains(rec.Skills.Domain, name)
	}
	return netcode && ai
}

func allEntryLevel(rec *types.CandidateRecord) bool {
	for _, p := range rec.Projects {
		if p.Complexity.Level != types.LevelEntry {
			return false
		}
	}
	return true
}

func anyGarbled(rec *types.CandidateRecord) bool {
	for _, p := range rec.Projects {
		if p.Garbled {
			return true
		}
	}
	return false
}

// anyAllInferredSystems reports whether some project's core systems are
// exclusively inference-derived.
func anyAllInferredSystems(rec *types.CandidateRecord) bool {
	for _, p := range rec.Projects {
		if len(p.CoreSystems) == 0 {
			continue
		}
		inferred := true
		for _, cs := range p.CoreSystems {
			if !cs.Inferred {
				inferred = false
				break
			}
		}
		if inferred {
			return true
		}
	}
	return false
}

func hasCoreSystem(rec *types.CandidateRecord, name string) bool {
	for _, p := range rec.Projects {
		for _, cs := range p.CoreSystems {
			if cs.Name == name {
				return true
			}
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
