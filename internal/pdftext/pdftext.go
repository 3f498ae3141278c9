// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext acquires plain text from resume files. Text and
// Markdown files are read directly; PDFs go through the pdftotext tool
// so layout columns survive as line structure.
package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/devscreen/internal/shell"
)

const pdftotextBin = "pdftotext"

// Extractor produces plain text from one input file. Implementations
// cover direct reads and external tools.
type Extractor interface {
	// Available reports whether the extractor can run on this host.
	Available() error

	// ExtractText returns the text content of the file at path.
	ExtractText(ctx context.Context, path string) (string, error)
}

// Plain reads .txt and .md files as-is.
type Plain struct{}

func (Plain) Available() error { return nil }

func (Plain) ExtractText(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Pdftotext extracts PDF text through the poppler pdftotext binary, or a
// compatible tool named in Tool.
type Pdftotext struct {
	Runner shell.Runner

	// Tool overrides the extraction binary. Empty means pdftotext.
	Tool string
}

func (p Pdftotext) tool() string {
	if p.Tool != "" {
		return p.Tool
	}
	return pdftotextBin
}

func (p Pdftotext) Available() error {
	if _, err := p.Runner.LookPath(p.tool()); err != nil {
		return fmt.Errorf("%s not found on PATH (install poppler-utils): %w", p.tool(), err)
	}
	return nil
}

func (p Pdftotext) ExtractText(ctx context.Context, path string) (string, error) {
	out, err := p.Runner.Output(ctx, "", p.tool(), "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", path, err)
	}
	return string(out), nil
}

// Load picks the extractor for path by extension and returns the file's
// text. tool overrides the PDF extraction binary when non-empty. Unknown
// extensions and unavailable tools are fatal-class errors for the caller.
func Load(ctx context.Context, runner shell.Runner, path, tool string) (string, error) {
	var ex Extractor
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		ex = Plain{}
	case ".pdf":
		ex = Pdftotext{Runner: runner, Tool: tool}
	default:
		return "", fmt.Errorf("unsupported resume format %q (want .txt, .md, or .pdf)", filepath.Ext(path))
	}
	if err := ex.Available(); err != nil {
		return "", err
	}
	return ex.ExtractText(ctx, path)
}
