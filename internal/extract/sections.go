// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Resume section headings carry decorations that vary by template:
// brackets, bullets, numbering, markdown hashes, trailing colons. A
// heading line is a decorated keyword with either nothing or a colon
// separator after it; a keyword followed by prose is body text.
const (
	headingLead  = `^\s*(?:[#*>\x{3010}\[\x{25C6}\x{25CF}\x{25A0}\x{25B6}\x{2022}-]\s*)*(?:[一二三四五六七八九十\d]+\s*[、.．]\s*)?`
	headingTrail = `\s*[\x{3011}\]]?\s*(?:[：:]\s*(.*))?$`
)

const (
	projectHeadingWords = `项目经历|项目经验|主要项目|参与项目|Project\s+Experience|Projects?`
	workHeadingWords    = `工作经历|工作经验|职业经历|实习经历|Work\s+Experience|Employment(?:\s+History)?|Internships?`
	otherHeadingWords   = `教育背景|教育经历|学习经历|个人技能|专业技能|技能清单|技能特长|自我评价|个人评价|个人总结|获奖情况|荣誉奖项|证书|Education|Skills?|Self[- ]Assessment|Summary|Awards?|Certificates?`
)

var (
	projectHeadingRe = headingRe(projectHeadingWords)
	workHeadingRe    = headingRe(workHeadingWords)
	anyHeadingRe     = headingRe(projectHeadingWords + "|" + workHeadingWords + "|" + otherHeadingWords)
)

func headingRe(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + headingLead + `(?:` + words + `)` + headingTrail)
}

// sectionLines returns the body lines of the first section whose heading
// matches startRe: everything after the heading line up to the next
// recognized heading or end of input. Text on the heading line itself
// after the colon separator becomes the first body line. Returns nil if
// no such heading exists.
func sectionLines(lines []string, startRe *regexp.Regexp) []string {
	start := -1
	var inline string
	for i, line := range lines {
		if m := startRe.FindStringSubmatch(line); m != nil {
			start = i
			inline = strings.TrimSpace(m[1])
			break
		}
	}
	if start == -1 {
		return nil
	}

	var body []string
	if inline != "" {
		body = append(body, inline)
	}
	for _, line := range lines[start+1:] {
		if anyHeadingRe.MatchString(line) {
			break
		}
		body = append(body, line)
	}
	return body
}

// splitLines normalizes line endings and splits the document into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
