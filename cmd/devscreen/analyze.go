package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/devscreen/internal/extract"
	"github.com/pdiddy/devscreen/internal/pdftext"
	"github.com/pdiddy/devscreen/internal/questions"
	"github.com/pdiddy/devscreen/internal/render"
	"github.com/pdiddy/devscreen/internal/score"
	"github.com/pdiddy/devscreen/internal/shell"
	"github.com/pdiddy/devscreen/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.(txt|md|pdf)>",
	Short: "Analyze a resume into a skill assessment and question list",
	Long: `Analyze reads a resume file, extracts a structured candidate record,
scores project complexity and skill proficiency, and writes two Markdown
documents: a skill assessment report and a tailored interview question
list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := analyzeConfig(cmd)

		text, err := pdftext.Load(cmd.Context(), shell.OSRunner{}, args[0], cfg.PDFTool)
		if err != nil {
			return err
		}

		rec := extract.Parse(text, log)
		applyOverrides(cfg, rec)
		analysis := score.Assess(rec)

		set, degraded := generateQuestions(cfg.QuestionConfig, rec, analysis)

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		now := time.Now()
		assessPath := filepath.Join(cfg.OutputDir, render.AssessmentFilename(rec.Name, now))
		if err := os.WriteFile(assessPath, []byte(render.SkillAssessment(rec, analysis, now, version)), 0o644); err != nil {
			return fmt.Errorf("writing assessment: %w", err)
		}
		questionsPath := filepath.Join(cfg.OutputDir, render.QuestionsFilename(rec.Name, now))
		if err := os.WriteFile(questionsPath, []byte(render.QuestionList(rec, set, now, version)), 0o644); err != nil {
			return fmt.Errorf("writing question list: %w", err)
		}

		if cfg.RecordPath != "" {
			if err := writeRecord(cfg.RecordPath, rec, analysis); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "record:     %s\n", cfg.RecordPath)
		}
		if degraded {
			fmt.Fprintln(os.Stderr, "warning: question banks unavailable, used the reduced built-in set")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "assessment: %s\nquestions:  %s\n", assessPath, questionsPath)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("output-dir", "reports", "directory for generated documents")
	analyzeCmd.Flags().String("name", "", "override the extracted candidate name")
	analyzeCmd.Flags().String("position", "", "override the extracted target position")
	analyzeCmd.Flags().String("banks", "", "question bank directory (default: embedded banks)")
	analyzeCmd.Flags().Int64("seed", 0, "question sampling seed (0 = time-based)")
	analyzeCmd.Flags().String("record", "", "also write the candidate record and analysis as YAML")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeConfig resolves flags and config-file settings for the analyze
// and questions commands. Flags the command does not define resolve to
// their zero values.
func analyzeConfig(cmd *cobra.Command) types.AnalyzeConfig {
	var cfg types.AnalyzeConfig
	cfg.BankDir = stringSetting(cmd, "banks", "banks")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.OutputDir = stringSetting(cmd, "output-dir", "output-dir")
	cfg.PDFTool = viper.GetString("pdf-tool")
	cfg.Name, _ = cmd.Flags().GetString("name")
	cfg.Position, _ = cmd.Flags().GetString("position")
	cfg.RecordPath, _ = cmd.Flags().GetString("record")
	return cfg
}

// applyOverrides replaces extracted scalars with explicit flag values.
func applyOverrides(cfg types.AnalyzeConfig, rec *types.CandidateRecord) {
	if cfg.Name != "" {
		rec.Name = cfg.Name
	}
	if cfg.Position != "" {
		rec.Position = cfg.Position
	}
}

// generateQuestions loads the bank pool and assembles the question set
// for the candidate.
func generateQuestions(cfg types.QuestionConfig, rec *types.CandidateRecord, analysis *types.Analysis) (*questions.Set, bool) {
	banks, degraded := questions.Load(cfg.BankDir, log)

	gen := questions.NewGenerator(banks, cfg.Seed, log)
	if degraded {
		gen.MarkDegraded()
	}
	return gen.Generate(rec, analysis), degraded
}

// analysisRecord is the YAML shape written by --record.
type analysisRecord struct {
	Candidate *types.CandidateRecord `yaml:"candidate"`
	Analysis  *types.Analysis        `yaml:"analysis"`
}

func writeRecord(path string, rec *types.CandidateRecord, analysis *types.Analysis) error {
	data, err := yaml.Marshal(analysisRecord{Candidate: rec, Analysis: analysis})
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}
