// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell abstracts external command execution so that packages
// shelling out to git or pdftotext can be tested without the binaries.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// LookPath reports where the named binary resolves on PATH.
	LookPath(file string) (string, error)

	// Output runs the command in dir (empty means the current directory)
	// and returns its stdout. Stderr is captured into the returned error.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// OSRunner is the production Runner backed by os/exec.
type OSRunner struct{}

func (OSRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (OSRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, commandError(name, args, err)
	}
	return out, nil
}

// commandError folds captured stderr into the error message so callers
// surface the tool's own diagnostic instead of a bare exit status.
func commandError(name string, args []string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		if stderr != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, stderr)
		}
	}
	return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
}
