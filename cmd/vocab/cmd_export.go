// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/gamo/vocab/internal/issue"
	"github.com/gamo/vocab/internal/snapshot"

	"github.com/spf13/cobra"
)

func newExportCommand(app *App) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every record to a SQLite database",
		Long: `Write the flat word list to the table words(seq, folder, type, line, word)
of a SQLite database. Rows from an earlier export are replaced in the same
transaction, so readers see either the old or the new snapshot.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.export(cmd.Context(), dbPath)
		}),
	}

	cmd.Flags().StringVar(&dbPath, "sqlite", "", "database file to write (required)")
	_ = cmd.MarkFlagRequired("sqlite")
	return cmd
}

func (a *App) export(ctx context.Context, dbPath string) error {
	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	v, _, err := a.build(ctx, sess)
	if err != nil {
		return err
	}

	path := a.resolve(dbPath)
	n, err := snapshot.Export(ctx, path, v)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("export snapshot").
			WithResource(path).
			WithSuggestion("Check that the directory is writable").
			WithIssue(issue.ExportFailedId).
			Wrap(err).
			BuildError()
	}
	fmt.Fprintf(a.stdout, "%s %d records to %s\n", SuccessStyle.Render("exported"), n, a.display(path))
	return nil
}
