// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

var _ Runner = OSRunner{}

func TestCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "exit error folds stderr into the message",
			err:  &exec.ExitError{Stderr: []byte("fatal: not a git repository\n")},
			want: []string{"git log", "fatal: not a git repository"},
		},
		{
			name: "exit error without stderr keeps the command line",
			err:  &exec.ExitError{},
			want: []string{"git log"},
		},
		{
			name: "plain error is wrapped as-is",
			err:  errors.New("signal: killed"),
			want: []string{"git log", "signal: killed"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commandError("git", []string{"log"}, tt.err)
			for _, part := range tt.want {
				if !strings.Contains(got.Error(), part) {
					t.Errorf("commandError() = %q, want it to contain %q", got, part)
				}
			}
		})
	}
}

func TestCommandErrorUnwraps(t *testing.T) {
	base := errors.New("boom")
	err := commandError("pdftotext", []string{"-layout", "cand.pdf"}, base)
	if !errors.Is(err, base) {
		t.Errorf("commandError() does not unwrap to the original error: %v", err)
	}
}
