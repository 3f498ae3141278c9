// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"strings"

	"github.com/pdiddy/devscreen/pkg/types"
)

// RateSkills derives a proficiency rating for every detected skill by
// counting the projects whose serialized text mentions it: two or more
// associations read as advanced, one as intermediate, none as beginner.
// Substring association keeps related names coupled (a JavaScript
// project also counts toward Java); that overcount is accepted and
// surfaces in interviews, not here.
func RateSkills(rec *types.CandidateRecord) []types.SkillRating {
	serialized := make([]string, len(rec.Projects))
	for i, p := range rec.Projects {
		serialized[i] = serializeProject(p)
	}

	var ratings []types.SkillRating
	for _, group := range []struct {
		category types.SkillCategory
		names    []string
	}{
		{types.CategoryLanguages, rec.Skills.Languages},
		{types.CategoryEngines, rec.Skills.Engines},
		{types.CategoryDomain, rec.Skills.Domain},
		{types.CategoryTools, rec.Skills.Tools},
	} {
		for _, name := range group.names {
			count := 0
			for _, s := range serialized {
				if strings.Contains(s, name) {
					count++
				}
			}
			ratings = append(ratings, types.SkillRating{
				Name:     name,
				Category: group.category,
				Level:    proficiencyFor(count),
				Projects: count,
			})
		}
	}
	return ratings
}

func proficiencyFor(projects int) types.Proficiency {
	switch {
	case projects >= 2:
		return types.SkillAdvanced
	case projects == 1:
		return types.SkillIntermediate
	default:
		return types.SkillBeginner
	}
}

// serializeProject flattens every textual field of a project into one
// string for substring association.
func serializeProject(p *types.Project) string {
	parts := []string{p.Name, string(p.Type), p.Role, p.Description}
	parts = append(parts, p.TechStack...)
	for _, cs := range p.CoreSystems {
		parts = append(parts, cs.Name)
	}
	parts = append(parts, p.TechHighlights...)
	parts = append(parts, p.Contributions...)
	return strings.Join(parts, "\n")
}
