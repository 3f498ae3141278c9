// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package questions loads interview question banks and assembles a
// question set tailored to a candidate's skills, weaknesses, and
// projects. Banks are Markdown files with difficulty sections; defaults
// are compiled in, an explicit directory overrides them.
package questions

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

//go:embed banks/*.md
var embeddedBanks embed.FS

// Tier is a question difficulty bucket.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierDeepDive     Tier = "deep-dive"
)

// tierOrder fixes the bucket sequence for merged listings.
var tierOrder = []Tier{TierBasic, TierIntermediate, TierAdvanced, TierDeepDive}

// Label returns the tier name as printed in rendered documents.
func (t Tier) Label() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierDeepDive:
		return "Deep Dive"
	}
	return string(t)
}

// minQuestionLen drops parsed items too short to be real questions.
const minQuestionLen = 10

// Bank is one dimension's question pool, bucketed by tier.
type Bank struct {
	Dimension string
	Title     string
	ByTier    map[Tier][]string
}

// Questions returns the pool for one tier, nil if empty.
func (b *Bank) Questions(tier Tier) []string {
	return b.ByTier[tier]
}

// Size returns the total question count across tiers.
func (b *Bank) Size() int {
	n := 0
	for _, qs := range b.ByTier {
		n += len(qs)
	}
	return n
}

// All returns every question in tier order.
func (b *Bank) All() []string {
	var out []string
	for _, tier := range tierOrder {
		out = append(out, b.ByTier[tier]...)
	}
	return out
}

// Section headers accept both English and Chinese difficulty names.
var tierHeaders = map[string]Tier{
	"beginner":     TierBasic,
	"basic":        TierBasic,
	"初级":           TierBasic,
	"基础":           TierBasic,
	"intermediate": TierIntermediate,
	"中级":           TierIntermediate,
	"进阶":           TierIntermediate,
	"advanced":     TierAdvanced,
	"高级":           TierAdvanced,
	"deep dive":    TierDeepDive,
	"deep-dive":    TierDeepDive,
	"项目深挖":         TierDeepDive,
	"深挖":           TierDeepDive,
}

var itemStartRe = regexp.MustCompile(`^\s*\d+\s*[.、)）]\s*(.+)$`)

// parseBank reads one Markdown bank: an optional # title, ## difficulty
// sections, numbered items with continuation lines. Items outside a
// recognized section or shorter than minQuestionLen runes are dropped.
func parseBank(name string, data []byte) *Bank {
	b := &Bank{Dimension: name, ByTier: map[Tier][]string{}}

	var tier Tier
	var cur strings.Builder
	flush := func() {
		q := strings.TrimSpace(cur.String())
		cur.Reset()
		if tier == "" || len([]rune(q)) < minQuestionLen {
			return
		}
		b.ByTier[tier] = append(b.ByTier[tier], q)
	}

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "## "):
			flush()
			tier = tierHeaders[normalizeHeader(strings.TrimPrefix(trimmed, "## "))]
		case strings.HasPrefix(trimmed, "# "):
			flush()
			b.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		case itemStartRe.MatchString(trimmed):
			flush()
			cur.WriteString(itemStartRe.FindStringSubmatch(trimmed)[1])
		case trimmed == "":
			flush()
		default:
			if cur.Len() > 0 {
				cur.WriteString(" ")
				cur.WriteString(trimmed)
			}
		}
	}
	flush()
	return b
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(h, "：:")))
}

// LoadDir parses every .md file in dir as a bank named after the file.
func LoadDir(dir string, log *zap.Logger) (map[string]*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bank directory %s: %w", dir, err)
	}

	banks := make(map[string]*Bank)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading bank %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		bank := parseBank(name, data)
		if bank.Size() == 0 {
			log.Warn("question bank has no usable items", zap.String("bank", name))
			continue
		}
		banks[name] = bank
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("no usable question banks in %s", dir)
	}
	return banks, nil
}

func loadEmbedded() (map[string]*Bank, error) {
	entries, err := embeddedBanks.ReadDir("banks")
	if err != nil {
		return nil, fmt.Errorf("reading embedded banks: %w", err)
	}

	banks := make(map[string]*Bank)
	for _, e := range entries {
		data, err := embeddedBanks.ReadFile("banks/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded bank %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		banks[name] = parseBank(name, data)
	}
	return banks, nil
}

// Load resolves the bank set: an explicit directory when given, else the
// embedded defaults. A directory that cannot be loaded degrades to the
// built-in minimal set rather than failing the run; degraded reports
// that so the rendered document can carry a visible warning.
func Load(dir string, log *zap.Logger) (banks map[string]*Bank, degraded bool) {
	if dir != "" {
		loaded, err := LoadDir(dir, log)
		if err == nil {
			return loaded, false
		}
		log.Warn("question bank directory unusable, falling back to minimal set",
			zap.String("dir", dir), zap.Error(err))
		return fallbackBanks(), true
	}

	loaded, err := loadEmbedded()
	if err != nil {
		log.Warn("embedded banks unreadable, falling back to minimal set", zap.Error(err))
		return fallbackBanks(), true
	}
	return loaded, false
}
