// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gitlog collects commits from a git repository over a weekly
// range and turns them into a grouped work report.
package gitlog

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/internal/shell"
	"github.com/pdiddy/devscreen/pkg/types"
)

const (
	gitBin    = "git"
	logFormat = "--pretty=format:%H|%an|%ad|%s"
)

// statsRe parses the summary line of git show --stat output. Insertion
// and deletion groups are optional; either can be absent.
var statsRe = regexp.MustCompile(`(\d+) files? changed(?:, (\d+) insertions?\(\+\))?(?:, (\d+) deletions?\(-\))?`)

// Collect runs git log over the configured range, once per author (or
// once unfiltered), merges and dedups the commits by hash, sorts them
// by date, and fills change statistics from git show.
func Collect(ctx context.Context, runner shell.Runner, cfg types.GitReportConfig, log *zap.Logger) ([]types.Commit, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := runner.LookPath(gitBin); err != nil {
		return nil, fmt.Errorf("git not found on PATH: %w", err)
	}

	repo := cfg.RepoPath
	if repo == "" {
		repo = "."
	}
	if _, err := runner.Output(ctx, repo, gitBin, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", repo, err)
	}

	authors := cfg.Authors
	if len(authors) == 0 {
		authors = []string{""}
	}

	seen := make(map[string]bool)
	var commits []types.Commit
	for _, author := range authors {
		args := []string{
			"log",
			"--since", cfg.Since.Format(dayLayout),
			"--until", cfg.Until.Format(dayLayout),
			logFormat,
			"--date=short",
		}
		if author != "" {
			args = append(args, "--author", author)
		}
		out, err := runner.Output(ctx, repo, gitBin, args...)
		if err != nil {
			return nil, fmt.Errorf("git log: %w", err)
		}
		for _, line := range strings.Split(string(out), "\n") {
			c, ok := parseLogLine(line)
			if !ok || seen[c.Hash] {
				continue
			}
			seen[c.Hash] = true
			c.Type = Classify(c.Subject)
			commits = append(commits, c)
		}
	}

	sort.Slice(commits, func(i, j int) bool {
		if !commits[i].Date.Equal(commits[j].Date) {
			return commits[i].Date.Before(commits[j].Date)
		}
		return commits[i].Hash < commits[j].Hash
	})

	for i := range commits {
		out, err := runner.Output(ctx, repo, gitBin, "show", "--stat", "--format=", commits[i].Hash)
		if err != nil {
			log.Warn("reading commit stats failed",
				zap.String("hash", commits[i].Hash), zap.Error(err))
			continue
		}
		applyStats(&commits[i], string(out))
	}

	log.Debug("collected commits",
		zap.Int("count", len(commits)),
		zap.String("since", cfg.Since.Format(dayLayout)),
		zap.String("until", cfg.Until.Format(dayLayout)))
	return commits, nil
}

// parseLogLine splits one pretty-format line into a commit. Malformed
// lines (merges of the format, blank trailers) report false.
func parseLogLine(line string) (types.Commit, bool) {
	parts := strings.SplitN(strings.TrimSpace(line), "|", 4)
	if len(parts) != 4 || parts[0] == "" {
		return types.Commit{}, false
	}
	date, err := time.Parse(dayLayout, parts[2])
	if err != nil {
		return types.Commit{}, false
	}
	return types.Commit{
		Hash:    parts[0],
		Author:  parts[1],
		Date:    date,
		Subject: strings.TrimSpace(parts[3]),
	}, true
}

func applyStats(c *types.Commit, statOut string) {
	m := statsRe.FindStringSubmatch(statOut)
	if m == nil {
		return
	}
	c.FilesChanged = atoi(m[1])
	c.Insertions = atoi(m[2])
	c.Deletions = atoi(m[3])
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
