// SPDX-License-Identifier: MPL-2.0

// Package manifest loads the declarative description of a vocabulary store:
// the folder list, the type list and the pending rename script.
//
// The three files live in one directory (by default "config"):
//
//	folders.on   whitespace-separated folder names
//	types.on     whitespace-separated type names
//	rename.on    leading "//" comment lines, then "from: <a> to: <b>" lines
//
// folders and types are required. A missing rename script is treated as an
// empty one.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gamo/vocab/pkg/record"
	"github.com/gamo/vocab/pkg/vocab"
)

const (
	// FoldersName is the base name of the folder list file.
	FoldersName = "folders"
	// TypesName is the base name of the type list file.
	TypesName = "types"
	// RenameName is the base name of the rename script.
	RenameName = "rename"
)

// ErrConfigMissing is the sentinel error wrapped by ConfigMissingError.
var ErrConfigMissing = errors.New("configuration file missing")

type (
	// ConfigMissingError is returned when a required manifest file does not exist.
	ConfigMissingError struct {
		Path string
	}

	// LoadOptions controls manifest loading.
	LoadOptions struct {
		// Dir is the manifest directory.
		Dir string
		// Extension is the extension of the manifest files. Defaults to vocab.DefaultExtension.
		Extension vocab.Extension
		// Lenient skips malformed rename lines instead of failing.
		Lenient bool
	}

	// Manifest is the immutable, fully loaded description of a store.
	Manifest struct {
		// Dir is the manifest directory.
		Dir string
		// Folders are the configured folders in file order.
		Folders []vocab.FolderName
		// Types are the configured types in file order.
		Types []vocab.TypeName
		// Rename is the parsed rename script.
		Rename *record.Script
		// RenamePath is where the rename script lives (and is rewritten to).
		RenamePath string
		// RenamePresent is false when the rename script did not exist.
		RenamePresent bool
	}
)

// Error implements the error interface.
func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("configuration file %s does not exist", e.Path)
}

// Unwrap returns ErrConfigMissing for errors.Is() compatibility.
func (e *ConfigMissingError) Unwrap() error { return ErrConfigMissing }

// Load reads and validates the manifest in opts.Dir.
func Load(ctx context.Context, opts LoadOptions) (*Manifest, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load manifest canceled: %w", ctx.Err())
	default:
	}

	ext := opts.Extension
	if ext == "" {
		ext = vocab.DefaultExtension
	}
	if err := ext.Validate(); err != nil {
		return nil, err
	}

	m := &Manifest{
		Dir:        opts.Dir,
		RenamePath: filepath.Join(opts.Dir, ext.FileName(RenameName)),
	}

	folderTokens, err := readTokens(filepath.Join(opts.Dir, ext.FileName(FoldersName)))
	if err != nil {
		return nil, err
	}
	for _, tok := range folderTokens {
		folder := vocab.FolderName(tok)
		if err := folder.Validate(); err != nil {
			return nil, err
		}
		m.Folders = append(m.Folders, folder)
	}

	typeTokens, err := readTokens(filepath.Join(opts.Dir, ext.FileName(TypesName)))
	if err != nil {
		return nil, err
	}
	for _, tok := range typeTokens {
		typ := vocab.TypeName(tok)
		if err := typ.Validate(); err != nil {
			return nil, err
		}
		m.Types = append(m.Types, typ)
	}

	content, err := record.ReadFile(m.RenamePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("rename script not found, nothing to apply", "path", m.RenamePath)
		m.Rename = &record.Script{}
	case err != nil:
		return nil, err
	default:
		m.RenamePresent = true
		m.Rename, err = record.ParseRenameScript(content, record.WithLenient(opts.Lenient))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.RenamePath, err)
		}
	}

	slog.Debug("manifest loaded",
		"dir", opts.Dir,
		"folders", len(m.Folders),
		"types", len(m.Types),
		"changes", len(m.Rename.Changes))
	return m, nil
}

// readTokens reads a required whitespace-separated list file.
func readTokens(path string) ([]string, error) {
	content, err := record.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigMissingError{Path: path}
	}
	if err != nil {
		return nil, err
	}
	return strings.Fields(content), nil
}
