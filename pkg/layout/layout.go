// SPDX-License-Identifier: MPL-2.0

// Package layout derives the expected on-disk layout of a vocabulary store
// from its configured folders and types. Derivation is pure: it never looks
// at the filesystem.
package layout

import (
	"path/filepath"

	"github.com/gamo/vocab/pkg/vocab"
)

type (
	// File describes one expected data file.
	File struct {
		// Type is the category the file holds; it is also the file's base name.
		Type vocab.TypeName
		// Ext is the file extension without the dot.
		Ext vocab.Extension
		// Name is "<Type>.<Ext>".
		Name string
		// Path is <root>/<folder>/<Name>.
		Path string
	}

	// Carrier describes the expected content of one folder: its directory and
	// one data file per configured type, in configured order.
	Carrier struct {
		Dir    string
		Folder vocab.FolderName
		Files  []File
	}
)

// NewCarrier builds the descriptor of folder under root.
func NewCarrier(root string, folder vocab.FolderName, types []vocab.TypeName, ext vocab.Extension) Carrier {
	dir := filepath.Join(root, string(folder))
	files := make([]File, 0, len(types))
	for _, typ := range types {
		name := ext.FileName(string(typ))
		files = append(files, File{
			Type: typ,
			Ext:  ext,
			Name: name,
			Path: filepath.Join(dir, name),
		})
	}
	return Carrier{Dir: dir, Folder: folder, Files: files}
}

// Derive builds one Carrier per folder, preserving the order of folders and types.
func Derive(root string, folders []vocab.FolderName, types []vocab.TypeName, ext vocab.Extension) []Carrier {
	carriers := make([]Carrier, 0, len(folders))
	for _, folder := range folders {
		carriers = append(carriers, NewCarrier(root, folder, types, ext))
	}
	return carriers
}

// Paths flattens carriers into the list of every data file path, folder-major.
func Paths(carriers []Carrier) []string {
	var paths []string
	for _, c := range carriers {
		for _, f := range c.Files {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// FilePath returns the path a file of typ would have inside the carrier's folder,
// whether or not typ is one of the configured types.
func (c Carrier) FilePath(typ vocab.TypeName, ext vocab.Extension) string {
	return filepath.Join(c.Dir, ext.FileName(string(typ)))
}
