// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/devscreen/pkg/types"
)

// Title bounds for name-like and project-name-like extractions, in runes.
const (
	minTitleLen = 3
	maxTitleLen = 30
)

// sentenceSeps are the separators counted by the title gate. More than
// one of these means the candidate is a sentence, not a title.
const sentenceSeps = "。．.!！?？;；"

// titleVerbRe rejects title candidates that read like description text.
var titleVerbRe = regexp.MustCompile(`参与|负责|开发|实现|完成|使用|熟悉|掌握|(?i:developed|responsible|participated|implemented|worked)`)

var nameLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:姓名|名字)\s*[：:]?\s*([^\s：:，。,.;；]{1,20})`),
	regexp.MustCompile(`(?im)^\s*name\s*[：:]\s*([^\n]{1,40})`),
}

// resumeHeaderRe catches document titles that sit where a name would be.
var resumeHeaderRe = regexp.MustCompile(`(?i)简历|求职|应聘|resume|curriculum\s+vitae|^cv$`)

var positionLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:应聘职位|求职意向|目标职位|应聘岗位|期望职位)\s*[：:]?\s*([^\n]{2,30})`),
	regexp.MustCompile(`(?im)^\s*(?:position|target\s+role)\s*[：:]\s*([^\n]{2,40})`),
}

// positionHints infers a target position from engine keywords when no
// explicit label exists. First hit wins; the catch-all game keyword
// comes last.
var positionHints = []struct {
	keywords []string
	title    string
}{
	{[]string{"Unity", "unity"}, "Unity Developer"},
	{[]string{"Unreal", "虚幻", "UE4", "UE5"}, "Unreal Engine Developer"},
	{[]string{"Cocos", "cocos"}, "Cocos Developer"},
	{[]string{"游戏", "game", "Game"}, "Game Developer"},
}

var (
	expYearsCJKRe = regexp.MustCompile(`(\d{1,2})\s*年(?:以上)?[^\n]{0,12}(?:经验|工作|开发)`)
	expYearsENRe  = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?`)
	expGradRe     = regexp.MustCompile(`(?i)应届|校招|fresh\s+graduate|new\s+graduate`)
	expInternRe   = regexp.MustCompile(`(?i)实习|\binternship\b|\bintern\b`)
)

var (
	schoolMarkerRe = regexp.MustCompile(`(?i)大学|学院|University|College|Institute`)
	degreeMarkers  = []struct {
		re    *regexp.Regexp
		label string
	}{
		{regexp.MustCompile(`(?i)博士|Ph\.?D|Doctorate`), "PhD"},
		{regexp.MustCompile(`(?i)硕士|研究生|Master`), "Master's degree"},
		{regexp.MustCompile(`(?i)本科|学士|Bachelor`), "Bachelor's degree"},
	}
)

// lineDecorations are the bullet and bracket characters stripped off
// line edges before a line is used as a field value.
const lineDecorations = "◆●■▶•·*#>—-–【】[] \t"

// trimField normalizes a captured field value: outer whitespace and
// stray separators removed.
func trimField(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, "：:，。,.;；、|")
	return strings.TrimSpace(v)
}

func trimLineDecoration(line string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(line), lineDecorations))
}

// validCandidateTitle reports whether a string can plausibly serve as a
// name or project title: bounded length, not description prose, at most
// one sentence separator, and not pure digits and punctuation.
func validCandidateTitle(s string) bool {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < minTitleLen || len(runes) > maxTitleLen {
		return false
	}
	if titleVerbRe.MatchString(s) {
		return false
	}
	seps := 0
	for _, r := range runes {
		if strings.ContainsRune(sentenceSeps, r) {
			seps++
		}
	}
	if seps > 1 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

// extractName resolves the candidate name: explicit label first, then
// the first non-empty line when it passes the title gate and is not a
// document header like 个人简历.
func extractName(text string, lines []string) string {
	for _, re := range nameLabelRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := trimField(m[1]); v != "" {
				return v
			}
		}
	}
	for _, line := range lines {
		line = trimLineDecoration(line)
		if line == "" {
			continue
		}
		if !resumeHeaderRe.MatchString(line) && validCandidateTitle(line) {
			return line
		}
		break
	}
	return types.Unknown
}

// extractPosition resolves the target position: explicit label first,
// then engine-keyword inference.
func extractPosition(text string) string {
	for _, re := range positionLabelRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if v := trimField(m[1]); v != "" {
				return v
			}
		}
	}
	for _, hint := range positionHints {
		for _, kw := range hint.keywords {
			if strings.Contains(text, kw) {
				return hint.title
			}
		}
	}
	return types.Unknown
}

// extractExperience resolves the experience summary: an explicit year
// count, then graduate markers, then intern markers.
func extractExperience(text string) string {
	if m := expYearsCJKRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s years", m[1])
	}
	if m := expYearsENRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s years", m[1])
	}
	if expGradRe.MatchString(text) {
		return "fresh graduate"
	}
	if expInternRe.MatchString(text) {
		return "intern"
	}
	return types.Unknown
}

// extractEducation resolves the education line: a school line carrying a
// degree marker, then any school line, then a bare degree marker.
func extractEducation(lines []string, text string) string {
	var schoolLine string
	for _, line := range lines {
		clean := trimLineDecoration(line)
		if clean == "" || !schoolMarkerRe.MatchString(clean) {
			continue
		}
		if hasDegreeMarker(clean) {
			return truncateRunes(clean, 40)
		}
		if schoolLine == "" {
			schoolLine = clean
		}
	}
	if schoolLine != "" {
		return truncateRunes(schoolLine, 40)
	}
	for _, dm := range degreeMarkers {
		if dm.re.MatchString(text) {
			return dm.label
		}
	}
	return types.Unknown
}

func hasDegreeMarker(s string) bool {
	for _, dm := range degreeMarkers {
		if dm.re.MatchString(s) {
			return true
		}
	}
	return false
}

// extractWorkExperience collects cleaned work-history lines from the
// work section, capped at MaxWorkExperience.
func extractWorkExperience(lines []string) []string {
	body := sectionLines(lines, workHeadingRe)
	var out []string
	for _, line := range body {
		cleaned, _ := Clean(trimLineDecoration(line))
		if len([]rune(cleaned)) < 4 {
			continue
		}
		out = append(out, truncateRunes(cleaned, 60))
		if len(out) >= types.MaxWorkExperience {
			break
		}
	}
	return out
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
