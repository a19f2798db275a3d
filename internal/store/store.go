// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/gamo/vocab/internal/fsx"
	"github.com/gamo/vocab/pkg/layout"
	"github.com/gamo/vocab/pkg/record"
	"github.com/gamo/vocab/pkg/vocab"
)

type (
	// Options are the inputs a Store is derived from.
	Options struct {
		// Root is the store directory.
		Root string
		// Folders and Types come from the manifest, in configured order.
		Folders []vocab.FolderName
		Types   []vocab.TypeName
		// Extension defaults to vocab.DefaultExtension.
		Extension vocab.Extension
	}

	// Store is the derived layout of a vocabulary store. It is immutable.
	Store struct {
		root     string
		ext      vocab.Extension
		folders  []vocab.FolderName
		types    []vocab.TypeName
		carriers []layout.Carrier
	}

	// MaterializeResult lists what Materialize created.
	MaterializeResult struct {
		CreatedDirs  []string
		CreatedFiles []string
	}
)

// New derives a Store from opts. It does not touch the filesystem.
func New(opts Options) *Store {
	ext := opts.Extension
	if ext == "" {
		ext = vocab.DefaultExtension
	}
	return &Store{
		root:     opts.Root,
		ext:      ext,
		folders:  slices.Clone(opts.Folders),
		types:    slices.Clone(opts.Types),
		carriers: layout.Derive(opts.Root, opts.Folders, opts.Types, ext),
	}
}

// Dir returns the store root directory.
func (s *Store) Dir() string { return s.root }

// Extension returns the data file extension.
func (s *Store) Extension() vocab.Extension { return s.ext }

// Folders returns the configured folders.
func (s *Store) Folders() []vocab.FolderName { return slices.Clone(s.folders) }

// Types returns the configured types.
func (s *Store) Types() []vocab.TypeName { return slices.Clone(s.types) }

// Carriers returns the layout descriptors, one per folder.
func (s *Store) Carriers() []layout.Carrier {
	out := make([]layout.Carrier, len(s.carriers))
	for i, c := range s.carriers {
		out[i] = c
		out[i].Files = slices.Clone(c.Files)
	}
	return out
}

// Mutations returns the number of created entries.
func (r MaterializeResult) Mutations() int {
	return len(r.CreatedDirs) + len(r.CreatedFiles)
}

// Materialize creates every missing directory and data file of the layout.
// Existing entries are left untouched, so a second call performs no mutation.
func (s *Store) Materialize(ctx context.Context) (MaterializeResult, error) {
	var res MaterializeResult

	// Parents of the root may be missing, e.g. for a store named "profile/vocabulary".
	if parent := filepath.Dir(s.root); parent != s.root {
		if err := os.MkdirAll(parent, fsx.DirPerm); err != nil {
			return res, &IOError{Op: "create directory", Path: parent, Err: err}
		}
	}
	created, err := ensureDir(s.root)
	if err != nil {
		return res, err
	}
	if created {
		res.CreatedDirs = append(res.CreatedDirs, s.root)
	}

	for _, c := range s.carriers {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("materialize canceled: %w", err)
		}

		created, err := ensureDir(c.Dir)
		if err != nil {
			return res, err
		}
		if created {
			slog.Debug("created folder", "folder", c.Folder, "path", c.Dir)
			res.CreatedDirs = append(res.CreatedDirs, c.Dir)
		}

		for _, f := range c.Files {
			created, err := ensureFile(f.Path)
			if err != nil {
				return res, err
			}
			if created {
				slog.Debug("created data file", "folder", c.Folder, "type", f.Type, "path", f.Path)
				res.CreatedFiles = append(res.CreatedFiles, f.Path)
			}
		}
	}

	slog.Info("layout materialized",
		"root", s.root,
		"created_dirs", len(res.CreatedDirs),
		"created_files", len(res.CreatedFiles))
	return res, nil
}

// Load reads every data file of the layout into a Vocabulary. Materialize must
// have run first; a missing data file is reported as record.ErrFileUnreadable.
func (s *Store) Load(ctx context.Context) (*Vocabulary, error) {
	v := newVocabulary(s.folders, s.types)
	for _, c := range s.carriers {
		for _, f := range c.Files {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("load canceled: %w", err)
			}
			content, err := record.ReadFile(f.Path)
			if err != nil {
				return nil, err
			}
			words := record.ParseWords(content, c.Folder, f.Type)
			slog.Debug("parsed data file", "path", f.Path, "records", len(words))
			v.add(c.Folder, f.Type, words)
		}
	}
	slog.Info("vocabulary loaded", "records", v.Len())
	return v, nil
}

// Build materializes the layout and loads it.
func (s *Store) Build(ctx context.Context) (*Vocabulary, MaterializeResult, error) {
	res, err := s.Materialize(ctx)
	if err != nil {
		return nil, res, err
	}
	v, err := s.Load(ctx)
	if err != nil {
		return nil, res, err
	}
	return v, res, nil
}

func ensureDir(path string) (bool, error) {
	err := os.Mkdir(path, fsx.DirPerm)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return false, &IOError{Op: "create directory", Path: path, Err: err}
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		return false, &IOError{Op: "stat directory", Path: path, Err: statErr}
	}
	if !info.IsDir() {
		return false, &IOError{Op: "create directory", Path: path, Err: errors.New("path exists and is not a directory")}
	}
	return false, nil
}

// ensureFile creates an empty file at path unless something already exists there.
// O_EXCL guarantees an existing file is never truncated.
func ensureFile(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fsx.FilePerm)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, &IOError{Op: "create file", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return true, &IOError{Op: "close file", Path: path, Err: err}
	}
	return true, nil
}
