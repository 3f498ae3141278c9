package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/pdiddy/devscreen/internal/evaluate"
	"github.com/pdiddy/devscreen/internal/render"
	"github.com/pdiddy/devscreen/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Write an interview evaluation report from dimension scores",
	Long: `Evaluate turns interviewer-entered dimension scores into a Markdown
evaluation report with a weighted total, a hire grade, and targeted
follow-up questions for the next round. Without --name it collects
every field interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := evaluateConfig(cmd)

		var (
			ev  *types.Evaluation
			err error
		)
		if name, _ := cmd.Flags().GetString("name"); name == "" {
			ev, err = promptEvaluation(cfg)
		} else {
			ev = flagEvaluation(cmd, cfg)
		}
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		now := time.Now()
		path := filepath.Join(cfg.OutputDir, render.EvaluationFilename(ev.Candidate, now))
		if err := os.WriteFile(path, []byte(evaluate.Report(ev, now, version)), 0o644); err != nil {
			return fmt.Errorf("writing evaluation: %w", err)
		}

		total := evaluate.WeightedTotal(ev.Scores)
		grade, verdict := evaluate.GradeFor(total)
		fmt.Fprintf(cmd.OutOrStdout(), "evaluation: %s\ngrade:      %s (%s), weighted total %.1f/100\n",
			path, grade, verdict, total)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().String("name", "", "candidate name (omit for interactive mode)")
	evaluateCmd.Flags().String("position", "Game Developer", "position interviewed for")
	evaluateCmd.Flags().String("interviewer", "", "interviewer name")
	evaluateCmd.Flags().Int("technical", 70, "technical depth score (0-100)")
	evaluateCmd.Flags().Int("project", 70, "project experience score (0-100)")
	evaluateCmd.Flags().Int("algorithm", 70, "algorithm ability score (0-100)")
	evaluateCmd.Flags().Int("teamwork", 70, "teamwork score (0-100)")
	evaluateCmd.Flags().Int("potential", 70, "growth potential score (0-100)")
	evaluateCmd.Flags().Int("culture", 70, "culture fit score (0-100)")
	evaluateCmd.Flags().Int("score", 0, "quick mode: apply one score to every dimension")
	evaluateCmd.Flags().StringArray("highlights", nil, "positive highlight (repeatable)")
	evaluateCmd.Flags().StringArray("risks", nil, "risk to watch (repeatable)")
	evaluateCmd.Flags().String("recommendation", "", "recommendation text")
	evaluateCmd.Flags().String("project-name", "", "focus project name")
	evaluateCmd.Flags().String("project-role", "", "candidate's role on the focus project")
	evaluateCmd.Flags().StringArray("tech-stack", nil, "focus project technology (repeatable)")
	evaluateCmd.Flags().StringArray("weak-areas", nil, "topic the candidate struggled with (repeatable)")
	evaluateCmd.Flags().String("output-dir", "reports", "directory for the evaluation report")

	rootCmd.AddCommand(evaluateCmd)
}

// dimensionFlags maps each score dimension to its command-line flag.
var dimensionFlags = map[types.ScoreDimension]string{
	types.DimTechnical: "technical",
	types.DimProject:   "project",
	types.DimAlgorithm: "algorithm",
	types.DimTeamwork:  "teamwork",
	types.DimPotential: "potential",
	types.DimCulture:   "culture",
}

// evaluateConfig resolves the evaluate command's settings.
func evaluateConfig(cmd *cobra.Command) types.EvaluateConfig {
	var cfg types.EvaluateConfig
	cfg.OutputDir = stringSetting(cmd, "output-dir", "output-dir")
	cfg.Interviewer = stringSetting(cmd, "interviewer", "interviewer")
	if cfg.Interviewer == "" {
		cfg.Interviewer = "Interviewer"
	}
	return cfg
}

// flagEvaluation assembles the evaluation from flags alone. --score wins
// over the per-dimension flags when set.
func flagEvaluation(cmd *cobra.Command, cfg types.EvaluateConfig) *types.Evaluation {
	flags := cmd.Flags()

	scores := make(map[types.ScoreDimension]int, len(types.ScoreDimensions))
	if flags.Changed("score") {
		quick, _ := flags.GetInt("score")
		for _, dim := range types.ScoreDimensions {
			scores[dim] = evaluate.ClampScore(quick)
		}
	} else {
		for dim, name := range dimensionFlags {
			n, _ := flags.GetInt(name)
			scores[dim] = evaluate.ClampScore(n)
		}
	}

	name, _ := flags.GetString("name")
	position, _ := flags.GetString("position")
	highlights, _ := flags.GetStringArray("highlights")
	if len(highlights) == 0 {
		highlights = []string{"Technical ability matches the position requirements"}
	}
	risks, _ := flags.GetStringArray("risks")
	if len(risks) == 0 {
		risks = []string{"Needs further verification"}
	}
	recommendation, _ := flags.GetString("recommendation")
	if recommendation == "" {
		recommendation = "Advance to the next interview round"
	}

	ev := &types.Evaluation{
		Candidate:      name,
		Position:       position,
		Interviewer:    cfg.Interviewer,
		Scores:         scores,
		Highlights:     highlights,
		Risks:          risks,
		Recommendation: recommendation,
	}
	ev.FocusProject.Name, _ = flags.GetString("project-name")
	ev.FocusProject.Role, _ = flags.GetString("project-role")
	ev.FocusProject.TechStack, _ = flags.GetStringArray("tech-stack")
	ev.WeakAreas, _ = flags.GetStringArray("weak-areas")
	return ev
}

// promptOwnRecommendation is the select entry that switches to free-form
// input.
const promptOwnRecommendation = "Other (type your own)"

// recommendationPresets are the selectable verdicts in interactive mode.
var recommendationPresets = []string{
	"Recommend hire, strong match for the position",
	"Recommend hire with a mentoring plan for the weak areas",
	"Advance to the next interview round",
	"Hold until the weak areas are re-checked",
	"Do not advance",
	promptOwnRecommendation,
}

// promptEvaluation collects every evaluation field interactively.
func promptEvaluation(cfg types.EvaluateConfig) (*types.Evaluation, error) {
	name, err := promptLine("Candidate name", "", requireValue)
	if err != nil {
		return nil, err
	}
	position, err := promptLine("Position", "Game Developer", nil)
	if err != nil {
		return nil, err
	}
	interviewer, err := promptLine("Interviewer", cfg.Interviewer, nil)
	if err != nil {
		return nil, err
	}

	ev := &types.Evaluation{
		Candidate:   name,
		Position:    position,
		Interviewer: interviewer,
		Scores:      make(map[types.ScoreDimension]int, len(types.ScoreDimensions)),
	}

	ev.FocusProject.Name, err = promptLine("Focus project (empty to skip)", "", nil)
	if err != nil {
		return nil, err
	}
	if ev.FocusProject.Name != "" {
		ev.FocusProject.Role, err = promptLine("Role on the project", "Lead Programmer", nil)
		if err != nil {
			return nil, err
		}
		ev.FocusProject.TechStack, err = promptList("Tech stack (comma separated)")
		if err != nil {
			return nil, err
		}
	}
	ev.WeakAreas, err = promptList("Weak areas to re-probe (comma separated)")
	if err != nil {
		return nil, err
	}

	for _, dim := range types.ScoreDimensions {
		ev.Scores[dim], err = promptScore(types.DimensionLabels[dim])
		if err != nil {
			return nil, err
		}
	}

	ev.Highlights, err = promptLines("Highlight")
	if err != nil {
		return nil, err
	}
	if len(ev.Highlights) == 0 {
		ev.Highlights = []string{"Solid technical fundamentals"}
	}
	ev.Risks, err = promptLines("Risk")
	if err != nil {
		return nil, err
	}
	if len(ev.Risks) == 0 {
		ev.Risks = []string{"Needs further verification"}
	}

	ev.Recommendation, err = promptRecommendation()
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func requireValue(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

func promptLine(label, def string, validate promptui.ValidateFunc) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, Validate: validate, AllowEdit: true}
	s, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	return strings.TrimSpace(s), nil
}

func promptScore(label string) (int, error) {
	p := promptui.Prompt{
		Label:   fmt.Sprintf("%s (0-100)", label),
		Default: "70",
		Validate: func(input string) error {
			n, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil || n < 0 || n > 100 {
				return errors.New("enter a number between 0 and 100")
			}
			return nil
		},
	}
	s, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt aborted: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing score: %w", err)
	}
	return n, nil
}

// promptList reads one line and splits it on commas.
func promptList(label string) ([]string, error) {
	raw, err := promptLine(label, "", nil)
	if err != nil {
		return nil, err
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}

// promptLines collects entries one per prompt until an empty line.
func promptLines(label string) ([]string, error) {
	var items []string
	for {
		s, err := promptLine(fmt.Sprintf("%s %d (empty to finish)", label, len(items)+1), "", nil)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return items, nil
		}
		items = append(items, s)
	}
}

func promptRecommendation() (string, error) {
	sel := promptui.Select{Label: "Recommendation", Items: recommendationPresets}
	_, choice, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	if choice != promptOwnRecommendation {
		return choice, nil
	}
	return promptLine("Recommendation", "", requireValue)
}
