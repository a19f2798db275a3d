// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load manifest"},
			expected: "failed to load manifest",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "load manifest",
				Resource:  "config/folders.on",
			},
			expected: "failed to load manifest: config/folders.on",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "apply renames",
				Resource:  "config/rename.on",
				Cause:     errors.New("rename source missing"),
			},
			expected: "failed to apply renames: config/rename.on: rename source missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_ErrorsIs(t *testing.T) {
	t.Parallel()

	cause := errors.New("specific error")
	wrapped := fmt.Errorf("outer: %w", &ActionableError{Operation: "test", Cause: cause})

	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	ae, ok := AsActionable(wrapped)
	if !ok || ae.Operation != "test" {
		t.Errorf("AsActionable() = %v, %v", ae, ok)
	}

	if _, ok := AsActionable(cause); ok {
		t.Error("AsActionable() should be false for a plain error")
	}
}

func TestActionableError_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		verbose  bool
		contains []string
		excludes []string
	}{
		{
			name: "error with suggestions",
			err: &ActionableError{
				Operation:   "load manifest",
				Resource:    "config/types.on",
				Suggestions: []string{"Run 'vocab init'", "Check file permissions"},
			},
			contains: []string{
				"failed to load manifest",
				"config/types.on",
				"• Run 'vocab init'",
				"• Check file permissions",
			},
		},
		{
			name: "no error chain in non-verbose",
			err: &ActionableError{
				Operation: "parse rename script",
				Cause:     errors.New("line 3: missing to:"),
			},
			contains: []string{"failed to parse rename script: line 3: missing to:"},
			excludes: []string{"Error chain:"},
		},
		{
			name: "nested error chain verbose",
			err: &ActionableError{
				Operation: "run",
				Cause: &ActionableError{
					Operation: "load data file",
					Cause:     errors.New("permission denied"),
				},
			},
			verbose: true,
			contains: []string{
				"Error chain:",
				"1. failed to load data file: permission denied",
				"2. permission denied",
			},
		},
		{
			name: "joined causes verbose",
			err: &ActionableError{
				Operation: "apply renames",
				Cause:     errors.Join(errors.New("rename failed"), errors.New("revert failed")),
			},
			verbose: true,
			contains: []string{
				"2. rename failed",
				"2. revert failed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.err.Format(tt.verbose)

			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("Format() missing %q\ngot:\n%s", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("Format() should not contain %q\ngot:\n%s", s, got)
				}
			}
		})
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("some/path").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	ae := NewErrorContext().
		WithOperation("export snapshot").
		WithResource("vocab.db").
		WithSuggestion("Check syntax").
		WithSuggestions("Verify permissions", "Retry").
		WithIssue(ExportFailedId).
		Wrap(errors.New("disk full")).
		Build()
	if ae == nil {
		t.Fatal("Build() returned nil")
	}
	if ae.Operation != "export snapshot" || ae.Resource != "vocab.db" {
		t.Errorf("Build() = %+v", ae)
	}
	if len(ae.Suggestions) != 3 || !ae.HasSuggestions() {
		t.Errorf("Suggestions = %v, want 3", ae.Suggestions)
	}
	if ae.Issue != ExportFailedId {
		t.Errorf("Issue = %d, want %d", ae.Issue, ExportFailedId)
	}
	if ae.Cause == nil || ae.Cause.Error() != "disk full" {
		t.Errorf("Cause = %v", ae.Cause)
	}
}

func TestErrorContext_Reuse(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().
		WithOperation("load data file").
		WithResource("vocabulary/a/noun.on")

	err1 := ctx.Wrap(errors.New("error 1")).Build()
	err2 := ctx.Wrap(errors.New("error 2")).Build()

	if err1.Cause.Error() == err2.Cause.Error() {
		t.Error("Reused context should allow different causes")
	}
	if err1.Operation != err2.Operation {
		t.Error("Reused context should preserve operation")
	}
}
