// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/pkg/types"
)

// testBanks builds a pool with enough questions per tier that every mix
// has to sample rather than take the whole bucket.
func testBanks(dims ...string) map[string]*Bank {
	banks := make(map[string]*Bank)
	for _, dim := range dims {
		b := &Bank{Dimension: dim, ByTier: map[Tier][]string{}}
		for _, tier := range tierOrder {
			for i := 1; i <= 8; i++ {
				b.ByTier[tier] = append(b.ByTier[tier],
					fmt.Sprintf("%s %s question number %d for sampling", dim, tier, i))
			}
		}
		banks[dim] = b
	}
	return banks
}

func rating(name string, level types.Proficiency) types.SkillRating {
	return types.SkillRating{Name: name, Category: types.CategoryLanguages, Level: level}
}

func TestGenerateMixSizes(t *testing.T) {
	banks := testBanks("csharp", "cpp", "unity", "general")
	g := NewGenerator(banks, 7, zap.NewNop())

	analysis := &types.Analysis{Ratings: []types.SkillRating{
		rating("C#", types.SkillBeginner),
		rating("C++", types.SkillIntermediate),
		rating("Unity", types.SkillAdvanced),
	}}
	set := g.Generate(&types.CandidateRecord{}, analysis)

	if len(set.Skills) != 3 {
		t.Fatalf("skill sections = %d, want 3", len(set.Skills))
	}

	tests := []struct {
		section int
		total   int
		perTier map[Tier]int
	}{
		{0, 4, map[Tier]int{TierBasic: 3, TierIntermediate: 1}},
		{1, 5, map[Tier]int{TierBasic: 1, TierIntermediate: 3, TierAdvanced: 1}},
		{2, 6, map[Tier]int{TierIntermediate: 1, TierAdvanced: 3, TierDeepDive: 2}},
	}
	for _, tt := range tests {
		sec := set.Skills[tt.section]
		if len(sec.Questions) != tt.total {
			t.Errorf("section %s total = %d, want %d", sec.Skill, len(sec.Questions), tt.total)
		}
		got := map[Tier]int{}
		for _, q := range sec.Questions {
			got[q.Tier]++
		}
		if !reflect.DeepEqual(got, tt.perTier) {
			t.Errorf("section %s tier mix = %v, want %v", sec.Skill, got, tt.perTier)
		}
	}

	if len(set.General) != generalCount {
		t.Errorf("general count = %d, want %d", len(set.General), generalCount)
	}
	if len(set.ProjectClosers) != projectCloserCount {
		t.Errorf("project closers = %d, want %d", len(set.ProjectClosers), projectCloserCount)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	analysis := &types.Analysis{
		Ratings: []types.SkillRating{
			rating("C#", types.SkillIntermediate),
			rating("Unity", types.SkillAdvanced),
		},
		Risks: []string{"Narrow language exposure"},
	}
	rec := &types.CandidateRecord{Projects: []*types.Project{
		{Name: "Starfall", TechStack: []string{"C#", "Unity", "Behavior Tree", "Object Pool"}},
	}}

	a := NewGenerator(testBanks("csharp", "unity", "general"), 42, zap.NewNop()).Generate(rec, analysis)
	b := NewGenerator(testBanks("csharp", "unity", "general"), 42, zap.NewNop()).Generate(rec, analysis)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different question sets")
	}
}

func TestGenerateSkipsUnmappedSkills(t *testing.T) {
	g := NewGenerator(testBanks("csharp", "general"), 1, zap.NewNop())
	analysis := &types.Analysis{Ratings: []types.SkillRating{
		rating("Python", types.SkillIntermediate),
		rating("Unreal", types.SkillAdvanced),
		rating("C#", types.SkillBeginner),
	}}

	set := g.Generate(&types.CandidateRecord{}, analysis)
	if len(set.Skills) != 1 || set.Skills[0].Skill != "C#" {
		t.Errorf("skill sections = %+v, want only C#", set.Skills)
	}
}

func TestGenerateDedupsSharedDimension(t *testing.T) {
	g := NewGenerator(testBanks("graphics", "general"), 1, zap.NewNop())
	analysis := &types.Analysis{Ratings: []types.SkillRating{
		rating("Shader", types.SkillIntermediate),
		rating("Render Pipeline", types.SkillIntermediate),
	}}

	set := g.Generate(&types.CandidateRecord{}, analysis)
	if len(set.Skills) != 1 {
		t.Fatalf("skill sections = %d, want 1 (shared graphics dimension)", len(set.Skills))
	}
	if set.Skills[0].Skill != "Shader" {
		t.Errorf("kept skill = %q, want first-listed %q", set.Skills[0].Skill, "Shader")
	}
}

func TestWeaknessProbes(t *testing.T) {
	g := NewGenerator(testBanks("csharp", "optimization", "general"), 3, zap.NewNop())
	analysis := &types.Analysis{Risks: []string{
		"Narrow language exposure",
		"All projects score entry-level complexity",
		"Completely unrelated risk text",
	}}

	set := g.Generate(&types.CandidateRecord{}, analysis)
	if len(set.Weakness) != 2 {
		t.Fatalf("weakness probes = %d, want 2", len(set.Weakness))
	}
	if !strings.HasPrefix(set.Weakness[0].Text, "csharp intermediate") {
		t.Errorf("probe[0] = %q, want a csharp intermediate question", set.Weakness[0].Text)
	}
	if !strings.HasPrefix(set.Weakness[1].Text, "optimization intermediate") {
		t.Errorf("probe[1] = %q, want an optimization intermediate question", set.Weakness[1].Text)
	}
	for _, q := range set.Weakness {
		if q.Tier != TierIntermediate {
			t.Errorf("probe tier = %s, want %s", q.Tier, TierIntermediate)
		}
	}
}

func TestWeaknessProbesNeverRepeat(t *testing.T) {
	g := NewGenerator(testBanks("general"), 5, zap.NewNop())
	analysis := &types.Analysis{Risks: []string{
		"Experience signals fall short of the target position seniority",
		"Some project descriptions were garbled during extraction; verify them manually",
		"Core systems for some projects are inferred from context, not stated",
	}}

	set := g.Generate(&types.CandidateRecord{}, analysis)
	if len(set.Weakness) != 3 {
		t.Fatalf("weakness probes = %d, want 3", len(set.Weakness))
	}
	seen := map[string]bool{}
	for _, q := range set.Weakness {
		if seen[q.Text] {
			t.Errorf("probe repeated: %q", q.Text)
		}
		seen[q.Text] = true
	}
}

func TestProjectProbes(t *testing.T) {
	g := NewGenerator(testBanks("general"), 1, zap.NewNop())
	rec := &types.CandidateRecord{Projects: []*types.Project{
		{Name: "Voxel Shooter", TechStack: []string{"C++", "Unreal", "Network Sync", "Physics", "ECS"}},
		{Name: "Empty Project"},
	}}

	set := g.Generate(rec, &types.Analysis{})
	if len(set.Projects) != 1 {
		t.Fatalf("project probes = %d, want 1 (stackless project skipped)", len(set.Projects))
	}
	probe := set.Projects[0]
	if probe.Project != "Voxel Shooter" {
		t.Errorf("probe project = %q, want %q", probe.Project, "Voxel Shooter")
	}
	if len(probe.Questions) != probeTechsPerProj {
		t.Fatalf("probe questions = %d, want %d", len(probe.Questions), probeTechsPerProj)
	}
	for i, tech := range []string{"C++", "Unreal", "Network Sync"} {
		if !strings.Contains(probe.Questions[i], tech) || !strings.Contains(probe.Questions[i], "Voxel Shooter") {
			t.Errorf("probe question %d = %q, want it to name %q and the project", i, probe.Questions[i], tech)
		}
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	g := NewGenerator(nil, 9, zap.NewNop())
	pool := []string{"aa", "bb", "cc", "dd", "ee", "ff"}

	got := g.sample(pool, 4)
	if len(got) != 4 {
		t.Fatalf("sample len = %d, want 4", len(got))
	}
	index := map[string]int{}
	for i, s := range pool {
		index[s] = i
	}
	last := -1
	for _, s := range got {
		i, ok := index[s]
		if !ok {
			t.Fatalf("sampled %q not in pool", s)
		}
		if i <= last {
			t.Errorf("sample out of pool order or repeated: %v", got)
		}
		last = i
	}

	if got := g.sample(pool[:2], 4); !reflect.DeepEqual(got, []string{"aa", "bb"}) {
		t.Errorf("small pool sample = %v, want whole pool", got)
	}
}

func TestGenerateDegradedFallback(t *testing.T) {
	banks, degraded := Load("/nonexistent/banks/dir", zap.NewNop())
	if !degraded {
		t.Fatal("expected degraded load")
	}
	g := NewGenerator(banks, 11, zap.NewNop())
	g.MarkDegraded()

	analysis := &types.Analysis{Ratings: []types.SkillRating{rating("C#", types.SkillAdvanced)}}
	set := g.Generate(&types.CandidateRecord{}, analysis)

	if !set.Degraded {
		t.Error("set.Degraded = false, want true")
	}
	if len(set.Skills) != 0 {
		t.Errorf("skill sections = %d, want 0 (no csharp bank in fallback)", len(set.Skills))
	}
	if len(set.General) != generalCount {
		t.Errorf("general count = %d, want %d", len(set.General), generalCount)
	}
	if len(set.ProjectClosers) != projectCloserCount {
		t.Errorf("project closers = %d, want %d", len(set.ProjectClosers), projectCloserCount)
	}
}
