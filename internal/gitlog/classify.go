// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gitlog

import (
	"regexp"

	"github.com/pdiddy/devscreen/pkg/types"
)

// typePatterns is the ordered classification table; the first matching
// pattern decides the type. Conventional-commit prefixes are anchored,
// the art bucket matches anywhere since asset commits rarely follow the
// prefix convention.
var typePatterns = []struct {
	re *regexp.Regexp
	t  types.CommitType
}{
	{regexp.MustCompile(`(?i)^(feat|feature)[(:：\s]`), types.CommitFeat},
	{regexp.MustCompile(`(?i)^(fix|bugfix|hotfix)[(:：\s]`), types.CommitFix},
	{regexp.MustCompile(`(?i)^docs?[(:：\s]`), types.CommitDocs},
	{regexp.MustCompile(`(?i)^style[(:：\s]`), types.CommitStyle},
	{regexp.MustCompile(`(?i)^refactor[(:：\s]`), types.CommitRefactor},
	{regexp.MustCompile(`(?i)^perf[(:：\s]`), types.CommitPerf},
	{regexp.MustCompile(`(?i)^tests?[(:：\s]`), types.CommitTest},
	{regexp.MustCompile(`(?i)^chore[(:：\s]`), types.CommitChore},
	{regexp.MustCompile(`(?i)^build[(:：\s]`), types.CommitBuild},
	{regexp.MustCompile(`(?i)^ci[(:：\s]`), types.CommitCI},
	{regexp.MustCompile(`(?i)^revert[(:：\s]`), types.CommitRevert},
	{regexp.MustCompile(`美术|资源|(?i:art assets?)`), types.CommitArt},
}

// prefixStripRe removes the conventional type prefix, an optional
// scope, and the separator from a subject line.
var prefixStripRe = regexp.MustCompile(`(?i)^(feat|feature|fix|bugfix|hotfix|docs?|style|refactor|perf|tests?|chore|build|ci|revert)\s*(\([^)]*\))?\s*[:：]\s*`)

// Classify derives a commit's type from its subject line.
func Classify(subject string) types.CommitType {
	for _, p := range typePatterns {
		if p.re.MatchString(subject) {
			return p.t
		}
	}
	return types.CommitOther
}

// StripTypePrefix removes the classification prefix so report bullets
// read as plain descriptions.
func StripTypePrefix(subject string) string {
	return prefixStripRe.ReplaceAllString(subject, "")
}
