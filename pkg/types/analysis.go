// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SkillCategory identifies which dictionary a skill was detected in.
type SkillCategory string

const (
	CategoryLanguages SkillCategory = "languages"
	CategoryEngines   SkillCategory = "engines"
	CategoryDomain    SkillCategory = "domain"
	CategoryTools     SkillCategory = "tools"
)

// Proficiency is the derived skill level. A skill is advanced when it is
// textually associated with at least two project blocks, intermediate
// with exactly one, beginner otherwise.
type Proficiency string

const (
	SkillBeginner     Proficiency = "beginner"
	SkillIntermediate Proficiency = "intermediate"
	SkillAdvanced     Proficiency = "advanced"
)

// SkillRating pairs a detected skill with its category and proficiency.
type SkillRating struct {
	// Name is the canonical skill name.
	Name string `json:"name" yaml:"name"`

	// Category is the dictionary the skill was detected in.
	Category SkillCategory `json:"category" yaml:"category"`

	// Level is the derived proficiency.
	Level Proficiency `json:"level" yaml:"level"`

	// Projects is the number of project blocks the skill is associated with.
	Projects int `json:"projects" yaml:"projects"`
}

// RecommendLevel is the overall hiring recommendation grade.
type RecommendLevel string

const (
	RecommendA RecommendLevel = "A"
	RecommendB RecommendLevel = "B"
	RecommendC RecommendLevel = "C"
	RecommendD RecommendLevel = "D"
)

// Recommendation is the overall screening verdict.
type Recommendation struct {
	// Level is the grade on the A-D ladder over project and language counts.
	Level RecommendLevel `json:"level" yaml:"level"`

	// Positions lists suitable positions inferred from engines and domain skills.
	Positions []string `json:"positions" yaml:"positions"`

	// Note is a one-line human-readable justification.
	Note string `json:"note" yaml:"note"`
}

// Analysis is the derived assessment of a Candidate Record. Every field
// is a pure function of the record; nothing here is read from the source
// text directly.
type Analysis struct {
	// Ratings lists skills with proficiency, ordered by category priority
	// (languages, engines, domain, tools) and deduplicated.
	Ratings []SkillRating `json:"ratings" yaml:"ratings"`

	// Advantages lists detected strengths.
	Advantages []string `json:"advantages" yaml:"advantages"`

	// Risks lists flags an interviewer should probe.
	Risks []string `json:"risks" yaml:"risks"`

	// Recommendation is the overall verdict.
	Recommendation Recommendation `json:"recommendation" yaml:"recommendation"`
}
