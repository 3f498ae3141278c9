package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/devscreen/internal/gitlog"
	"github.com/pdiddy/devscreen/internal/shell"
	"github.com/pdiddy/devscreen/pkg/types"
)

var gitreportCmd = &cobra.Command{
	Use:   "gitreport",
	Short: "Generate a weekly work report from git history",
	Long: `Gitreport reads commits from a git repository over a Monday-to-Sunday
week (or an explicit date range), classifies them by commit type, merges
near-duplicate subjects, and writes a Markdown weekly report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := gitReportConfig(cmd)
		if err != nil {
			return err
		}

		commits, err := gitlog.Collect(cmd.Context(), shell.OSRunner{}, cfg, log)
		if err != nil {
			return err
		}

		doc := gitlog.Markdown(commits, cfg.Since, cfg.Until)
		if err := os.WriteFile(cfg.Output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		if cfg.JSONOutput != "" {
			data, err := gitlog.ToJSON(commits)
			if err != nil {
				return err
			}
			if err := os.WriteFile(cfg.JSONOutput, data, 0o644); err != nil {
				return fmt.Errorf("writing JSON dump: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "json:   %s\n", cfg.JSONOutput)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "report: %s (%d commits)\n", cfg.Output, len(commits))
		return nil
	},
}

func init() {
	gitreportCmd.Flags().String("repo", ".", "git repository to read")
	gitreportCmd.Flags().StringArray("author", nil, "filter by author name (repeatable)")
	gitreportCmd.Flags().Bool("this-week", false, "report on the current Monday-to-Sunday week (default)")
	gitreportCmd.Flags().Bool("last-week", false, "report on the previous week")
	gitreportCmd.Flags().String("since", "", "range start, YYYY-MM-DD (inclusive)")
	gitreportCmd.Flags().String("until", "", "range end, YYYY-MM-DD (exclusive)")
	gitreportCmd.Flags().String("output", "weekly-report.md", "Markdown report path")
	gitreportCmd.Flags().String("json", "", "also dump the collected commits as JSON")

	rootCmd.AddCommand(gitreportCmd)
}

// gitReportConfig resolves the flags into a collection config. At most one
// of --this-week, --last-week, and --since/--until may pick the range; the
// default is the current week.
func gitReportConfig(cmd *cobra.Command) (types.GitReportConfig, error) {
	flags := cmd.Flags()

	var cfg types.GitReportConfig
	cfg.RepoPath = stringSetting(cmd, "repo", "gitreport.repo")
	cfg.Authors, _ = flags.GetStringArray("author")
	if len(cfg.Authors) == 0 {
		cfg.Authors = viper.GetStringSlice("gitreport.authors")
	}
	cfg.Output = stringSetting(cmd, "output", "gitreport.output")
	cfg.JSONOutput, _ = flags.GetString("json")

	thisWeek, _ := flags.GetBool("this-week")
	lastWeek, _ := flags.GetBool("last-week")
	sinceStr, _ := flags.GetString("since")
	untilStr, _ := flags.GetString("until")
	explicit := sinceStr != "" || untilStr != ""

	picked := 0
	for _, on := range []bool{thisWeek, lastWeek, explicit} {
		if on {
			picked++
		}
	}
	if picked > 1 {
		return cfg, errors.New("--this-week, --last-week, and --since/--until are mutually exclusive")
	}

	switch {
	case lastWeek:
		cfg.Since, cfg.Until = gitlog.LastWeek(time.Now())
	case explicit:
		if sinceStr == "" || untilStr == "" {
			return cfg, errors.New("--since and --until must be given together")
		}
		since, err := gitlog.ParseDay(sinceStr)
		if err != nil {
			return cfg, err
		}
		until, err := gitlog.ParseDay(untilStr)
		if err != nil {
			return cfg, err
		}
		if !until.After(since) {
			return cfg, errors.New("--until must be after --since")
		}
		cfg.Since, cfg.Until = since, until
	default:
		cfg.Since, cfg.Until = gitlog.ThisWeek(time.Now())
	}
	return cfg, nil
}
