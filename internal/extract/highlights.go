// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/devscreen/internal/dedup"
	"github.com/pdiddy/devscreen/pkg/types"
)

// minSnippetLen drops sweep captures too short to be meaningful.
const minSnippetLen = 6

// Highlight sweeps, in priority order: implementation verbs, performance
// metrics, innovation keywords. Each sweep carries both CJK and English
// surface patterns; captures are clause-bounded.
var highlightSweeps = [][]*regexp.Regexp{
	{
		// Colons are excluded from the capture: a verb directly before
		// a colon introduces a metric phrase, which the performance
		// sweep picks up whole.
		regexp.MustCompile(`(?:实现|开发|设计|搭建|编写|优化)了?\s*([^\n，。；,.;：:]{6,60})`),
		regexp.MustCompile(`(?i)(?:implemented|developed|designed|built|created|optimized)\s+([^\n,.;：:]{6,70})`),
	},
	{
		regexp.MustCompile(`((?:性能|帧率|内存|耗时|效率|加载)[^\n，。；,.;]{0,12}(?:提升|优化|降低|减少|缩短)[^\n，。；,.;]{0,30})`),
		regexp.MustCompile(`(?i)((?:improved|reduced|increased|cut)\s+[^\n,.;]{0,50}\d+\s*%[^\n,.;]{0,20})`),
	},
	{
		regexp.MustCompile(`((?:首创|自研|创新|独立设计|从零)[^\n，。；,.;]{4,50})`),
		regexp.MustCompile(`(?i)((?:from scratch|self-developed)[^\n,.;]{0,50})`),
	},
}

// Contribution sweeps: responsibility verbs, first-person statements,
// quantified shares.
var contributionSweeps = [][]*regexp.Regexp{
	{
		// Responsibility verbs often appear in labeled form (负责：...),
		// so the separator is consumed before the capture starts.
		regexp.MustCompile(`(?:负责|主导|承担|牵头)\s*[：:]?\s*([^\n，。；,.;：:]{4,60})`),
		regexp.MustCompile(`(?i)(?:responsible for|led|owned|in charge of)\s+([^\n,.;：:]{4,70})`),
	},
	{
		regexp.MustCompile(`(?:我|本人)(?:负责|主导|完成|实现|参与)?\s*([^\n，。；,.;]{4,50})`),
		regexp.MustCompile(`(?m)^\s*I\s+([a-z][^\n,.;]{4,70})`),
	},
	{
		regexp.MustCompile(`([^\n，。；,.;]{0,30}(?:占比|贡献|完成度?)[^\n，。；,.;]{0,10}\d+\s*%[^\n，。；,.;]{0,20})`),
		regexp.MustCompile(`(?i)(\d+\s*%\s*of\s+(?:the\s+)?(?:code|commits|work)[^\n,.;]{0,20})`),
	},
}

// runSweeps applies pattern groups in order and returns cleaned captures.
func runSweeps(block string, sweeps [][]*regexp.Regexp) []string {
	var found []string
	for _, group := range sweeps {
		for _, re := range group {
			for _, m := range re.FindAllStringSubmatch(block, -1) {
				cleaned, _ := Clean(m[1])
				if len([]rune(cleaned)) < minSnippetLen {
					continue
				}
				found = append(found, cleaned)
			}
		}
	}
	return found
}

// extractHighlights collects technical achievement snippets from a
// project block, near-duplicate filtered and capped at MaxHighlights.
func extractHighlights(block string) []string {
	return dedup.Filter(runSweeps(block, highlightSweeps), types.MaxHighlights)
}

// extractContributions collects personal contribution snippets from a
// project block, capped at MaxContributions. When the sweeps find
// nothing but a role is known, a single role-derived entry is
// synthesized and labeled as inferred.
func extractContributions(block, role string) []string {
	out := dedup.Filter(runSweeps(block, contributionSweeps), types.MaxContributions)
	if len(out) == 0 && role != "" {
		out = append(out, fmt.Sprintf("Served as %s (inferred from role)", role))
	}
	return out
}
