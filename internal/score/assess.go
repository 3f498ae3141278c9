// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"github.com/pdiddy/devscreen/pkg/types"
)

// Assess computes the full derived layer for a candidate record. It
// fills in each project's complexity first, since the advantage and
// risk rules read the derived levels, then builds the analysis.
func Assess(rec *types.CandidateRecord) *types.Analysis {
	for _, p := range rec.Projects {
		p.Complexity = Complexity(p)
	}

	return &types.Analysis{
		Ratings:        RateSkills(rec),
		Advantages:     Advantages(rec),
		Risks:          Risks(rec),
		Recommendation: Recommend(rec),
	}
}
