// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/gamo/vocab/internal/config"
	"github.com/gamo/vocab/internal/issue"
	"github.com/gamo/vocab/internal/manifest"
	"github.com/gamo/vocab/internal/rename"
	"github.com/gamo/vocab/internal/store"
	"github.com/gamo/vocab/pkg/record"

	"github.com/spf13/cobra"
)

// classify maps an error chain to its help catalog entry. Zero means none.
// Rename errors are checked first: a rename IOError may also wrap fs.ErrPermission.
func classify(err error) issue.Id {
	switch {
	case errors.Is(err, manifest.ErrConfigMissing):
		return issue.ManifestMissingId
	case errors.Is(err, record.ErrMalformedRenameLine):
		return issue.MalformedRenameLineId
	case errors.Is(err, record.ErrFileUnreadable):
		return issue.FileUnreadableId
	case errors.Is(err, rename.ErrTargetMissing):
		return issue.RenameTargetMissingId
	case errors.Is(err, rename.ErrConflict):
		return issue.RenameConflictId
	case errors.Is(err, rename.ErrIO):
		return issue.RenameIoErrorId
	case errors.Is(err, store.ErrIO) && errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, store.ErrIO):
		return issue.StoreIoErrorId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId
	default:
		return 0
	}
}

// suggestions returns short remediation hints for a catalog entry.
func suggestions(id issue.Id) []string {
	switch id {
	case issue.ManifestMissingId:
		return []string{"Run 'vocab init --manifest' to create a starter manifest"}
	case issue.MalformedRenameLineId:
		return []string{
			"Fix the reported line, or move it into the leading comment block",
			"Set rename.lenient to skip malformed lines",
		}
	case issue.FileUnreadableId:
		return []string{"Check that the file is UTF-8 text and readable"}
	case issue.RenameTargetMissingId, issue.RenameConflictId:
		return []string{"Run 'vocab rename --dry-run' to preview the batch"}
	case issue.RenameIoErrorId:
		return []string{"Run with --verbose to see whether earlier renames were reverted"}
	case issue.PermissionDeniedId:
		return []string{"Check the permissions of the store directory"}
	case issue.StoreIoErrorId:
		return []string{"Remove or rename any regular file sitting where a folder belongs"}
	default:
		return nil
	}
}

// actionable wraps err with the operation, the resource and the catalog entry it maps to.
func actionable(op, resource string, err error) error {
	id := classify(err)
	return issue.NewErrorContext().
		WithOperation(op).
		WithResource(resource).
		WithSuggestions(suggestions(id)...).
		WithIssue(id).
		Wrap(err).
		BuildError()
}

func logSkipped(path string, line *record.MalformedRenameLineError) {
	slog.Warn("skipped malformed rename line", "file", path, "line", line.Line, "text", line.Text, "reason", line.Reason)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	if ae, ok := issue.AsActionable(err); ok {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor returns the catalog entry for err, preferring the one attached
// to an ActionableError.
func issueFor(err error) *issue.Issue {
	if ae, ok := issue.AsActionable(err); ok && ae.Issue != 0 {
		return issue.Get(ae.Issue)
	}
	if id := classify(err); id != 0 {
		return issue.Get(id)
	}
	return nil
}

// renderError writes err and its help page to stderr.
func (a *App) renderError(err error) {
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))
	if iss := issueFor(err); iss != nil {
		rendered, rerr := iss.Render(a.glamourStyle())
		if rerr != nil {
			slog.Debug("failed to render help page", "error", rerr)
			return
		}
		fmt.Fprint(a.stderr, rendered)
	}
}

// runE adapts a handler so failures are rendered once and exit with status 1.
func (a *App) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		a.renderError(err)
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
}
