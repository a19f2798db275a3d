// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gamo/vocab/internal/manifest"
	"github.com/gamo/vocab/pkg/vocab"

	"github.com/spf13/cobra"
)

// Starter manifest content written by "vocab init --manifest".
const (
	starterFolders = "general\n"
	starterTypes   = "noun\nverb\nadjective\n"
	starterRename  = "// Rename instructions, one per line, below this comment block:\n" +
		"//   from: <old type> to: <new type>\n" +
		"// Instructions are removed once applied. Comments are kept."
)

func newInitCommand(app *App) *cobra.Command {
	var withManifest bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create missing folders and data files",
		Long: `Create every missing folder and data file of the store layout.

Existing folders and files are left untouched, so running init again
changes nothing. With --manifest, missing manifest files are created
first with starter content.`,
		Args: cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			return app.initStore(cmd.Context(), withManifest)
		}),
	}

	cmd.Flags().BoolVar(&withManifest, "manifest", false, "create missing manifest files with starter content")
	return cmd
}

func (a *App) initStore(ctx context.Context, withManifest bool) error {
	if withManifest {
		dir := a.resolve(a.cfg.Manifest.Dir)
		created, err := writeStarterManifest(dir, vocab.Extension(a.cfg.Store.Extension))
		if err != nil {
			return actionable("create manifest", dir, err)
		}
		for _, p := range created {
			fmt.Fprintf(a.stdout, "%s %s\n", SuccessStyle.Render("created"), a.display(p))
		}
	}

	sess, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	res, err := sess.store.Materialize(ctx)
	if err != nil {
		return actionable("create store layout", sess.store.Dir(), err)
	}

	for _, p := range res.CreatedDirs {
		fmt.Fprintf(a.stdout, "%s %s%c\n", SuccessStyle.Render("created"), a.display(p), filepath.Separator)
	}
	for _, p := range res.CreatedFiles {
		fmt.Fprintf(a.stdout, "%s %s\n", SuccessStyle.Render("created"), a.display(p))
	}
	if res.Mutations() == 0 {
		fmt.Fprintln(a.stdout, SubtitleStyle.Render("store is up to date"))
	}
	return nil
}

// writeStarterManifest creates the manifest files that do not exist yet and
// returns their paths.
func writeStarterManifest(dir string, ext vocab.Extension) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var created []string
	for _, f := range []struct {
		name    string
		content string
	}{
		{manifest.FoldersName, starterFolders},
		{manifest.TypesName, starterTypes},
		{manifest.RenameName, starterRename},
	} {
		path := filepath.Join(dir, ext.FileName(f.name))
		ok, err := createExclusive(path, f.content)
		if err != nil {
			return created, err
		}
		if ok {
			created = append(created, path)
		}
	}
	return created, nil
}

func createExclusive(path, content string) (bool, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return false, err
	}
	return true, file.Close()
}

// display shortens p to a path relative to the working directory when possible.
func (a *App) display(p string) string {
	if rel, err := filepath.Rel(a.workDir, p); err == nil && filepath.IsLocal(rel) {
		return rel
	}
	return p
}
