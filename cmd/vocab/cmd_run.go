// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gamo/vocab/internal/metrics"
	"github.com/gamo/vocab/internal/rename"
	"github.com/gamo/vocab/internal/report"
	"github.com/gamo/vocab/internal/store"

	"github.com/spf13/cobra"
)

// pipelineResult is everything one full run produced.
type pipelineResult struct {
	session    *session
	created    store.MaterializeResult
	vocabulary *store.Vocabulary
	renames    *rename.Result
}

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build the store, apply renames and print the report (default)",
		Long: `Run the whole pipeline:

  1. load the manifest (folders, types, rename script)
  2. create missing folders and data files
  3. read every data file
  4. apply the rename script and drop its instructions
  5. print "<type>: <count>" per type, then "Vocabulary: <total>"

A malformed rename script stops the run before anything is created.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd.Context())
		}),
	}
}

// run executes the pipeline and writes the report and metrics.
func (a *App) run(ctx context.Context) error {
	res, err := a.runPipeline(ctx)
	if err != nil {
		return err
	}

	if err := report.Write(a.stdout, res.vocabulary, report.Options{Total: true}); err != nil {
		return err
	}

	if file := a.cfg.Metrics.File; file != "" {
		m := metrics.NewRun()
		m.ObserveMaterialize(res.created)
		m.ObserveVocabulary(res.vocabulary)
		m.ObserveRenames(len(res.renames.Moves))
		path := a.resolve(file)
		if err := m.WriteFile(path); err != nil {
			return actionable("write metrics", path, err)
		}
		slog.Debug("metrics written", "path", path)
	}
	return nil
}

// runPipeline loads, materializes, reads and renames, in that order. The
// returned vocabulary is the one read before the renames ran.
func (a *App) runPipeline(ctx context.Context) (*pipelineResult, error) {
	sess, err := a.openSession(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("vocabulary running", "store", sess.store.Dir(), "folders", len(sess.manifest.Folders), "types", len(sess.manifest.Types))

	v, created, err := a.build(ctx, sess)
	if err != nil {
		return nil, err
	}

	renames, err := a.applyRenames(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &pipelineResult{session: sess, created: created, vocabulary: v, renames: renames}, nil
}

// build materializes the layout and reads every data file.
func (a *App) build(ctx context.Context, sess *session) (*store.Vocabulary, store.MaterializeResult, error) {
	v, created, err := sess.store.Build(ctx)
	if err != nil {
		op := "read data files"
		if errors.Is(err, store.ErrIO) {
			op = "create store layout"
		}
		return nil, created, actionable(op, sess.store.Dir(), err)
	}
	if n := created.Mutations(); n > 0 {
		slog.Info("store layout created", "dirs", len(created.CreatedDirs), "files", len(created.CreatedFiles))
	}
	return v, created, nil
}

// applyRenames runs the rename script against the materialized store.
// A missing script is nothing to do.
func (a *App) applyRenames(ctx context.Context, sess *session) (*rename.Result, error) {
	eng, err := a.renameEngine(sess)
	if err != nil {
		return nil, err
	}
	if eng == nil {
		return &rename.Result{}, nil
	}

	res, err := eng.Apply(ctx)
	if err != nil {
		return nil, actionable("apply renames", sess.manifest.RenamePath, err)
	}
	return res, nil
}

// renameEngine returns nil when the manifest has no rename script.
func (a *App) renameEngine(sess *session) (*rename.Engine, error) {
	if !sess.manifest.RenamePresent {
		slog.Debug("no rename script", "path", sess.manifest.RenamePath)
		return nil, nil
	}
	eng, err := rename.New(sess.store, rename.Options{
		Script:     sess.manifest.Rename,
		ScriptPath: sess.manifest.RenamePath,
		Overwrite:  rename.OverwritePolicy(a.cfg.Rename.Overwrite),
	})
	if err != nil {
		return nil, actionable("apply renames", sess.manifest.RenamePath, err)
	}
	return eng, nil
}
