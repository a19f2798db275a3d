// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/gamo/vocab/internal/rename"

	"github.com/spf13/cobra"
)

func newRenameCommand(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Apply the rename script",
		Long: `Apply every instruction of the rename script to every folder, then
rewrite the script to its leading comments.

The batch is validated before anything moves. If any source is missing or
any destination is protected by the overwrite policy, nothing is renamed.
With --dry-run the planned moves are printed and nothing is changed.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.renameStore(cmd.Context(), dryRun)
		}),
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the planned moves without changing anything")
	return cmd
}

func (a *App) renameStore(ctx context.Context, dryRun bool) error {
	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}

	if dryRun {
		eng, err := a.renameEngine(sess)
		if err != nil {
			return err
		}
		if eng == nil {
			fmt.Fprintln(a.stdout, SubtitleStyle.Render("no rename script"))
			return nil
		}
		plan, err := eng.Plan()
		if err != nil {
			return actionable("plan renames", sess.manifest.RenamePath, err)
		}
		a.printMoves(plan.Moves, "would rename")
		return nil
	}

	if _, _, err := a.build(ctx, sess); err != nil {
		return err
	}
	res, err := a.applyRenames(ctx, sess)
	if err != nil {
		return err
	}
	a.printMoves(res.Moves, "renamed")
	return nil
}

func (a *App) printMoves(moves []rename.Move, verb string) {
	if len(moves) == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("nothing to rename"))
		return
	}
	for _, mv := range moves {
		note := ""
		if mv.Replaces {
			note = SubtitleStyle.Render(" (replaces existing file)")
		}
		fmt.Fprintf(a.stdout, "%s %s -> %s%s\n", SuccessStyle.Render(verb), a.display(mv.From), a.display(mv.To), note)
	}
}
