// SPDX-License-Identifier: MPL-2.0

package store

import (
	"slices"

	"github.com/gamo/vocab/pkg/record"
	"github.com/gamo/vocab/pkg/vocab"
)

type (
	// Vocabulary holds the records of every data file in three views:
	// by type across folders, by folder then type, and flat.
	//
	// All views keep folder order, then type order, then line order, as
	// configured. Nothing is sorted or deduplicated. A Vocabulary is never
	// modified after Load returns it; accessors return copies.
	Vocabulary struct {
		folders  []vocab.FolderName
		types    []vocab.TypeName
		byType   map[vocab.TypeName][]record.Word
		byFolder map[vocab.FolderName]map[vocab.TypeName][]record.Word
		flat     []record.Word
	}

	// TypeCount is one line of the per-type report.
	TypeCount struct {
		Type  vocab.TypeName
		Count int
	}

	// FolderTypeCount is the record count of one data file.
	FolderTypeCount struct {
		Folder vocab.FolderName
		Type   vocab.TypeName
		Count  int
	}
)

func newVocabulary(folders []vocab.FolderName, types []vocab.TypeName) *Vocabulary {
	v := &Vocabulary{
		folders:  slices.Clone(folders),
		types:    slices.Clone(types),
		byType:   make(map[vocab.TypeName][]record.Word, len(types)),
		byFolder: make(map[vocab.FolderName]map[vocab.TypeName][]record.Word, len(folders)),
	}
	for _, t := range types {
		v.byType[t] = nil
	}
	for _, f := range folders {
		inner := make(map[vocab.TypeName][]record.Word, len(types))
		for _, t := range types {
			inner[t] = nil
		}
		v.byFolder[f] = inner
	}
	return v
}

func (v *Vocabulary) add(folder vocab.FolderName, typ vocab.TypeName, words []record.Word) {
	inner, ok := v.byFolder[folder]
	if !ok {
		inner = make(map[vocab.TypeName][]record.Word)
		v.byFolder[folder] = inner
	}
	inner[typ] = append(inner[typ], words...)
	v.byType[typ] = append(v.byType[typ], words...)
	v.flat = append(v.flat, words...)
}

// Len returns the total number of records.
func (v *Vocabulary) Len() int { return len(v.flat) }

// Flatten returns every record exactly once.
func (v *Vocabulary) Flatten() []record.Word { return slices.Clone(v.flat) }

// Words returns the text of every record in flat order. This is the list
// handed to the forbidden-word filter.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.flat))
	for i, w := range v.flat {
		out[i] = w.Word
	}
	return out
}

// OfType returns the records of typ across all folders.
func (v *Vocabulary) OfType(typ vocab.TypeName) []record.Word {
	return slices.Clone(v.byType[typ])
}

// In returns the records read from the (folder, typ) data file.
func (v *Vocabulary) In(folder vocab.FolderName, typ vocab.TypeName) []record.Word {
	return slices.Clone(v.byFolder[folder][typ])
}

// ByType returns the by-type view.
func (v *Vocabulary) ByType() map[vocab.TypeName][]record.Word {
	out := make(map[vocab.TypeName][]record.Word, len(v.byType))
	for t, words := range v.byType {
		out[t] = slices.Clone(words)
	}
	return out
}

// ByFolder returns the by-folder-then-type view.
func (v *Vocabulary) ByFolder() map[vocab.FolderName]map[vocab.TypeName][]record.Word {
	out := make(map[vocab.FolderName]map[vocab.TypeName][]record.Word, len(v.byFolder))
	for f, inner := range v.byFolder {
		copied := make(map[vocab.TypeName][]record.Word, len(inner))
		for t, words := range inner {
			copied[t] = slices.Clone(words)
		}
		out[f] = copied
	}
	return out
}

// Summary returns the record count of each configured type, in configured order.
func (v *Vocabulary) Summary() []TypeCount {
	out := make([]TypeCount, 0, len(v.types))
	for _, t := range v.types {
		out = append(out, TypeCount{Type: t, Count: len(v.byType[t])})
	}
	return out
}

// FolderSummary returns the record count of each data file, folder-major.
func (v *Vocabulary) FolderSummary() []FolderTypeCount {
	out := make([]FolderTypeCount, 0, len(v.folders)*len(v.types))
	for _, f := range v.folders {
		for _, t := range v.types {
			out = append(out, FolderTypeCount{Folder: f, Type: t, Count: len(v.byFolder[f][t])})
		}
	}
	return out
}
