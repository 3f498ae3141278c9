package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/devscreen/internal/extract"
	"github.com/pdiddy/devscreen/internal/pdftext"
	"github.com/pdiddy/devscreen/internal/render"
	"github.com/pdiddy/devscreen/internal/score"
	"github.com/pdiddy/devscreen/internal/shell"
)

var questionsCmd = &cobra.Command{
	Use:   "questions <resume.(txt|md|pdf)>",
	Short: "Generate only the interview question list for a resume",
	Long: `Questions runs the same extraction and scoring as analyze but writes
only the interview question list, for reruns with a different seed or
bank set.`,
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
		path := filepath.Join(cfg.OutputDir, render.QuestionsFilename(rec.Name, now))
		if err := os.WriteFile(path, []byte(render.QuestionList(rec, set, now, version)), 0o644); err != nil {
			return fmt.Errorf("writing question list: %w", err)
		}

		if degraded {
			fmt.Fprintln(os.Stderr, "warning: question banks unavailable, used the reduced built-in set")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "questions: %s\n", path)
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("output-dir", "reports", "directory for generated documents")
	questionsCmd.Flags().String("name", "", "override the extracted candidate name")
	questionsCmd.Flags().String("position", "", "override the extracted target position")
	questionsCmd.Flags().String("banks", "", "question bank directory (default: embedded banks)")
	questionsCmd.Flags().Int64("seed", 0, "question sampling seed (0 = time-based)")

	rootCmd.AddCommand(questionsCmd)
}
