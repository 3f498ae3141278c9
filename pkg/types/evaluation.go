// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScoreDimension identifies one scored axis of an interview evaluation.
type ScoreDimension string

const (
	DimTechnical ScoreDimension = "technical"
	DimProject   ScoreDimension = "project"
	DimAlgorithm ScoreDimension = "algorithm"
	DimTeamwork  ScoreDimension = "teamwork"
	DimPotential ScoreDimension = "potential"
	DimCulture   ScoreDimension = "culture"
)

// ScoreDimensions fixes the order dimensions appear in reports.
var ScoreDimensions = []ScoreDimension{
	DimTechnical, DimProject, DimAlgorithm, DimTeamwork, DimPotential, DimCulture,
}

// DimensionWeights is each dimension's share of the weighted total.
// The weights sum to 1.
var DimensionWeights = map[ScoreDimension]float64{
	DimTechnical: 0.35,
	DimProject:   0.25,
	DimAlgorithm: 0.15,
	DimTeamwork:  0.10,
	DimPotential: 0.10,
	DimCulture:   0.05,
}

// DimensionLabels are the display names used in rendered documents.
var DimensionLabels = map[ScoreDimension]string{
	DimTechnical: "Technical depth",
	DimProject:   "Project experience",
	DimAlgorithm: "Algorithm ability",
	DimTeamwork:  "Teamwork",
	DimPotential: "Growth potential",
	DimCulture:   "Culture fit",
}

// FocusProject names the project an interview drilled into.
type FocusProject struct {
	// Name is the project name as discussed.
	Name string `json:"name" yaml:"name"`

	// Role is the candidate's stated role on it.
	Role string `json:"role" yaml:"role"`

	// TechStack lists the technologies covered in the drill-down.
	TechStack []string `json:"tech_stack" yaml:"tech_stack"`
}

// Evaluation is one interviewer's structured verdict on a candidate.
type Evaluation struct {
	// Candidate is the candidate's name.
	Candidate string `json:"candidate" yaml:"candidate"`

	// Position is the role interviewed for.
	Position string `json:"position" yaml:"position"`

	// Interviewer is the evaluator's name.
	Interviewer string `json:"interviewer" yaml:"interviewer"`

	// Scores holds the 0-100 score per dimension.
	Scores map[ScoreDimension]int `json:"scores" yaml:"scores"`

	// Highlights lists moments or answers that stood out positively.
	Highlights []string `json:"highlights" yaml:"highlights"`

	// Risks lists concerns raised during the interview.
	Risks []string `json:"risks" yaml:"risks"`

	// Recommendation is the interviewer's free-text verdict.
	Recommendation string `json:"recommendation" yaml:"recommendation"`

	// FocusProject is the project the technical drill-down centered on.
	FocusProject FocusProject `json:"focus_project" yaml:"focus_project"`

	// WeakAreas lists topics the candidate struggled with.
	WeakAreas []string `json:"weak_areas" yaml:"weak_areas"`
}
