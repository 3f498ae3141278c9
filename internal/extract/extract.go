// Package extract turns raw resume text into a structured candidate
// record using layered regex cascades: scalar fields first, then skill
// dictionary scans, then project block segmentation with per-block
// field extraction. All patterns carry both CJK and English surface
// forms. Extraction never fails: fields that cannot be resolved fall
// back to sentinel values and the pipeline continues.
package extract

import (
	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/pkg/types"
)

// Parse builds a candidate record from resume text. The logger must be
// non-nil; pass zap.NewNop() to silence pipeline traces.
func Parse(text string, log *zap.Logger) *types.CandidateRecord {
	lines := splitLines(text)

	rec := &types.CandidateRecord{
		Name:            extractName(text, lines),
		Position:        extractPosition(text),
		ExperienceYears: extractExperience(text),
		Education:       extractEducation(lines, text),
		Skills:          DetectSkills(text),
		Projects:        extractProjects(lines, log),
		WorkExperience:  extractWorkExperience(lines),
	}

	log.Debug("resume parsed",
		zap.String("name", rec.Name),
		zap.String("position", rec.Position),
		zap.Int("projects", len(rec.Projects)),
		zap.Int("skills", rec.Skills.Count()))
	return rec
}
