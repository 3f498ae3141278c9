// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the devscreen toolkit:
// the Candidate Record produced by resume extraction, the derived analysis,
// git commit records, and per-command configuration.
package types

// Unknown is the sentinel value for scalar fields whose extraction
// cascade produced no match.
const Unknown = "unknown"

// Extraction caps. Hard truncation, not sampling.
const (
	MaxProjects       = 5
	MaxHighlights     = 6
	MaxContributions  = 5
	MaxWorkExperience = 5
)

// ProjectType classifies a parsed project block. The first matching
// keyword group wins; generic is the fallback.
type ProjectType string

const (
	Type2D          ProjectType = "2d-platform"
	Type3D          ProjectType = "3d"
	TypeFPS         ProjectType = "fps"
	TypeRPG         ProjectType = "rpg"
	TypeMultiplayer ProjectType = "multiplayer"
	TypeGeneric     ProjectType = "generic"
)

// ComplexityLevel is the discrete label derived from a complexity score.
type ComplexityLevel string

const (
	LevelEntry  ComplexityLevel = "entry"
	LevelModest ComplexityLevel = "modest"
	LevelMedium ComplexityLevel = "medium"
	LevelHigh   ComplexityLevel = "high"
)

// Complexity holds the derived difficulty estimate for one project.
// It is recomputed from the project fields, never stored independently.
type Complexity struct {
	// Score is the bucketed weighted sum, capped at 100.
	Score int `json:"score" yaml:"score"`

	// Level is the threshold label: entry, modest, medium, or high.
	Level ComplexityLevel `json:"level" yaml:"level"`

	// Reason concatenates the qualitative labels of the buckets that
	// were hit, up to three, in fixed dimension order.
	Reason string `json:"reason" yaml:"reason"`
}

// CoreSystem names a gameplay subsystem attributed to a project.
type CoreSystem struct {
	// Name is the canonical subsystem category (combat, ai, netcode, ...).
	Name string `json:"name" yaml:"name"`

	// Inferred marks systems derived from contextual heuristics rather
	// than an explicit keyword match. Rendered with a visible caveat.
	Inferred bool `json:"inferred,omitempty" yaml:"inferred,omitempty"`
}

// Project is one parsed project block from the resume.
type Project struct {
	// Name is resolved via a priority cascade: explicit label, quoted
	// title, cleaned first line, positional fallback ("Project N").
	Name string `json:"name" yaml:"name"`

	// Type is the first-keyword-match project classification.
	Type ProjectType `json:"type" yaml:"type"`

	// Role is the candidate's role in the project, empty if not found.
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// Description is the cleaned block text, at most 500 characters.
	Description string `json:"description" yaml:"description"`

	// Garbled marks a description that was replaced by a placeholder
	// because the extracted text failed the garble check.
	Garbled bool `json:"garbled,omitempty" yaml:"garbled,omitempty"`

	// TechStack lists canonical technology names found in the block.
	TechStack []string `json:"tech_stack" yaml:"tech_stack"`

	// CoreSystems lists subsystem categories attributed to the project.
	CoreSystems []CoreSystem `json:"core_systems" yaml:"core_systems"`

	// TechHighlights holds deduplicated achievement snippets, at most 6.
	TechHighlights []string `json:"tech_highlights" yaml:"tech_highlights"`

	// Contributions holds deduplicated responsibility snippets, at most 5.
	Contributions []string `json:"contributions" yaml:"contributions"`

	// Complexity is the derived difficulty estimate.
	Complexity Complexity `json:"complexity" yaml:"complexity"`
}

// SkillSet groups detected skills by category. Slices preserve insertion
// order (order of first appearance in the skill dictionaries) and contain
// no duplicates under case- and whitespace-insensitive comparison.
type SkillSet struct {
	Languages []string `json:"languages" yaml:"languages"`
	Engines   []string `json:"engines" yaml:"engines"`
	Domain    []string `json:"domain" yaml:"domain"`
	Tools     []string `json:"tools" yaml:"tools"`
}

// Count returns the total number of detected skills across categories.
func (s SkillSet) Count() int {
	return len(s.Languages) + len(s.Engines) + len(s.Domain) + len(s.Tools)
}

// CandidateRecord is the structured result of parsing one resume. It is
// built once per input document, immutable after construction, and
// discarded after the output documents are rendered.
type CandidateRecord struct {
	// Name is the candidate's name, or "unknown".
	Name string `json:"name" yaml:"name"`

	// Position is the target position, or "unknown".
	Position string `json:"position" yaml:"position"`

	// ExperienceYears is the free-text experience summary, or "unknown".
	ExperienceYears string `json:"experience_years" yaml:"experience_years"`

	// Education is the highest education line found, or "unknown".
	Education string `json:"education" yaml:"education"`

	// Skills holds detected skills grouped by category.
	Skills SkillSet `json:"skills" yaml:"skills"`

	// Projects lists parsed project blocks in source order, at most 5.
	Projects []*Project `json:"projects" yaml:"projects"`

	// WorkExperience lists cleaned work-history lines, at most 5.
	WorkExperience []string `json:"work_experience" yaml:"work_experience"`
}
