// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CommitType classifies a commit by its subject-line prefix.
type CommitType string

const (
	CommitFeat     CommitType = "feat"
	CommitFix      CommitType = "fix"
	CommitDocs     CommitType = "docs"
	CommitStyle    CommitType = "style"
	CommitRefactor CommitType = "refactor"
	CommitPerf     CommitType = "perf"
	CommitTest     CommitType = "test"
	CommitChore    CommitType = "chore"
	CommitBuild    CommitType = "build"
	CommitCI       CommitType = "ci"
	CommitRevert   CommitType = "revert"
	CommitArt      CommitType = "art"
	CommitOther    CommitType = "other"
)

// Commit is one parsed git log entry with its change statistics.
type Commit struct {
	// Hash is the full commit hash.
	Hash string `json:"hash" yaml:"hash"`

	// Author is the commit author name.
	Author string `json:"author" yaml:"author"`

	// Date is the author date, truncated to the day.
	Date time.Time `json:"date" yaml:"date"`

	// Subject is the first line of the commit message.
	Subject string `json:"subject" yaml:"subject"`

	// Type is the classification derived from the subject prefix.
	Type CommitType `json:"type" yaml:"type"`

	// FilesChanged, Insertions, and Deletions come from git show --stat.
	FilesChanged int `json:"files_changed" yaml:"files_changed"`
	Insertions   int `json:"insertions" yaml:"insertions"`
	Deletions    int `json:"deletions" yaml:"deletions"`
}
