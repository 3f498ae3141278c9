// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/pkg/types"
)

const (
	generalCount       = 5
	projectCloserCount = 2
	probeTechsPerProj  = 3
)

// Question is one selected item with its difficulty bucket.
type Question struct {
	Tier Tier
	Text string
}

// SkillSection holds the questions chosen for one rated skill.
type SkillSection struct {
	Skill     string
	Dimension string
	Level     types.Proficiency
	Questions []Question
}

// ProjectProbe holds the deep-dive prompts for one resume project.
type ProjectProbe struct {
	Project   string
	Questions []string
}

// Set is the assembled question list for one candidate.
type Set struct {
	Skills []SkillSection
	// Weakness probes target risks surfaced by the assessment.
	Weakness []Question
	Projects []ProjectProbe
	// ProjectClosers are general deep-dive prompts asked after the
	// per-project probes.
	ProjectClosers []string
	General        []string
	// Degraded marks a run that fell back to the minimal built-in bank;
	// rendered documents surface it as a warning.
	Degraded bool
}

// Total counts every question in the set.
func (s *Set) Total() int {
	n := len(s.Weakness) + len(s.ProjectClosers) + len(s.General)
	for _, sec := range s.Skills {
		n += len(sec.Questions)
	}
	for _, p := range s.Projects {
		n += len(p.Questions)
	}
	return n
}

type tierCount struct {
	tier Tier
	n    int
}

// tierMixes sets how many questions each proficiency level draws from
// each bucket. Advanced candidates skip the basic bucket entirely.
var tierMixes = map[types.Proficiency][]tierCount{
	types.SkillBeginner:     {{TierBasic, 3}, {TierIntermediate, 1}},
	types.SkillIntermediate: {{TierBasic, 1}, {TierIntermediate, 3}, {TierAdvanced, 1}},
	types.SkillAdvanced:     {{TierIntermediate, 1}, {TierAdvanced, 3}, {TierDeepDive, 2}},
}

// riskProbes keyword-matches assessment risks to the bank that should
// probe them. First match wins per risk.
var riskProbes = []struct {
	keyword   string
	dimension string
}{
	{"language", "csharp"},
	{"entry-level", "optimization"},
	{"seniority", "general"},
	{"garbled", "general"},
	{"inferred", "general"},
	{"project experience", "general"},
}

// Generator samples question sets from a loaded bank pool.
type Generator struct {
	banks map[string]*Bank
	rng   *rand.Rand
	log   *zap.Logger

	degraded bool
}

// NewGenerator builds a generator over banks. A zero seed picks a
// time-based one; any other seed makes output reproducible.
func NewGenerator(banks map[string]*Bank, seed int64, log *zap.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		banks: banks,
		rng:   rand.New(rand.NewSource(seed)),
		log:   log,
	}
}

// MarkDegraded records that the bank pool is the minimal fallback so
// the rendered document can warn the interviewer.
func (g *Generator) MarkDegraded() { g.degraded = true }

// Generate assembles the full question set for a candidate: per-skill
// sections following the proficiency mix, weakness probes from the
// assessed risks, per-project deep dives, and general closers.
func (g *Generator) Generate(rec *types.CandidateRecord, analysis *types.Analysis) *Set {
	set := &Set{Degraded: g.degraded}

	seen := make(map[string]bool)
	for _, rating := range analysis.Ratings {
		dim, ok := DimensionFor(rating.Name)
		if !ok || seen[dim] {
			continue
		}
		bank := g.banks[dim]
		if bank == nil {
			g.log.Debug("no bank for dimension", zap.String("dimension", dim))
			continue
		}
		seen[dim] = true

		var qs []Question
		for _, mix := range tierMixes[rating.Level] {
			for _, text := range g.sample(bank.Questions(mix.tier), mix.n) {
				qs = append(qs, Question{Tier: mix.tier, Text: text})
			}
		}
		if len(qs) == 0 {
			continue
		}
		set.Skills = append(set.Skills, SkillSection{
			Skill:     rating.Name,
			Dimension: dim,
			Level:     rating.Level,
			Questions: qs,
		})
	}

	set.Weakness = g.weaknessProbes(analysis.Risks)
	set.Projects = g.projectProbes(rec.Projects)
	if general := g.banks["general"]; general != nil {
		set.ProjectClosers = g.sample(general.Questions(TierDeepDive), projectCloserCount)
		set.General = g.sample(general.All(), generalCount)
	}

	g.log.Info("question set assembled",
		zap.Int("skill_sections", len(set.Skills)),
		zap.Int("weakness_probes", len(set.Weakness)),
		zap.Int("project_probes", len(set.Projects)),
		zap.Int("total", set.Total()))
	return set
}

// weaknessProbes draws one intermediate question per matched risk,
// never repeating a question across probes.
func (g *Generator) weaknessProbes(risks []string) []Question {
	var out []Question
	used := make(map[string]bool)
	for _, risk := range risks {
		lower := strings.ToLower(risk)
		for _, probe := range riskProbes {
			if !strings.Contains(lower, probe.keyword) {
				continue
			}
			bank := g.banks[probe.dimension]
			if bank == nil {
				break
			}
			for _, text := range g.shuffled(bank.Questions(TierIntermediate)) {
				if !used[text] {
					used[text] = true
					out = append(out, Question{Tier: TierIntermediate, Text: text})
					break
				}
			}
			break
		}
	}
	return out
}

// projectProbes turns each project's leading stack entries into
// templated deep-dive prompts.
func (g *Generator) projectProbes(projects []*types.Project) []ProjectProbe {
	var out []ProjectProbe
	for _, p := range projects {
		techs := p.TechStack
		if len(techs) > probeTechsPerProj {
			techs = techs[:probeTechsPerProj]
		}
		var qs []string
		for _, tech := range techs {
			qs = append(qs, fmt.Sprintf(
				"In %s, walk through how you used %s: the concrete design, the worst problem it caused, and what you would change now.",
				p.Name, tech))
		}
		if len(qs) == 0 {
			continue
		}
		out = append(out, ProjectProbe{Project: p.Name, Questions: qs})
	}
	return out
}

// sample picks n items uniformly without replacement, preserving bank
// order in the result. A pool of n or fewer is returned whole.
func (g *Generator) sample(pool []string, n int) []string {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if len(pool) <= n {
		return append([]string(nil), pool...)
	}
	picks := g.rng.Perm(len(pool))[:n]
	sort.Ints(picks)
	out := make([]string, 0, n)
	for _, i := range picks {
		out = append(out, pool[i])
	}
	return out
}

// shuffled returns a random ordering of pool without mutating it.
func (g *Generator) shuffled(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, i := range g.rng.Perm(len(pool)) {
		out = append(out, pool[i])
	}
	return out
}
