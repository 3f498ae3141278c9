package types

import "time"

// QuestionConfig holds settings shared by every command that selects
// interview questions.
type QuestionConfig struct {
	// BankDir overrides the embedded question banks with an on-disk
	// directory of bank Markdown files. Empty means use the defaults.
	BankDir string `json:"bank_dir" yaml:"bank_dir"`

	// Seed fixes the question sampling RNG. Zero means seed from time.
	Seed int64 `json:"seed" yaml:"seed"`
}

// AnalyzeConfig holds settings for the analyze command.
type AnalyzeConfig struct {
	QuestionConfig `yaml:",inline"`

	// OutputDir is the directory the report documents are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PDFTool is the external text-extraction binary for PDF input
	// (default pdftotext).
	PDFTool string `json:"pdf_tool" yaml:"pdf_tool"`

	// Name overrides the extracted candidate name when set.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Position overrides the extracted target position when set.
	Position string `json:"position,omitempty" yaml:"position,omitempty"`

	// RecordPath, when set, writes the Candidate Record and analysis
	// as YAML for downstream tooling.
	RecordPath string `json:"record_path,omitempty" yaml:"record_path,omitempty"`
}

// EvaluateConfig holds settings for the evaluate command.
type EvaluateConfig struct {
	// OutputDir is the directory the evaluation report is written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Interviewer is the default interviewer name.
	Interviewer string `json:"interviewer" yaml:"interviewer"`
}

// GitReportConfig holds settings for the gitreport command.
type GitReportConfig struct {
	// RepoPath is the git repository to collect from (default ".").
	RepoPath string `json:"repo_path" yaml:"repo_path"`

	// Authors filters commits to the given author names. Empty means all.
	Authors []string `json:"authors" yaml:"authors"`

	// Since and Until bound the collected range, inclusive of Since and
	// exclusive of Until.
	Since time.Time `json:"since" yaml:"since"`
	Until time.Time `json:"until" yaml:"until"`

	// Output is the Markdown report path (default weekly-report.md).
	Output string `json:"output" yaml:"output"`

	// JSONOutput, when set, also dumps the collected commits as JSON.
	JSONOutput string `json:"json_output,omitempty" yaml:"json_output,omitempty"`
}
