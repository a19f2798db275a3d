// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/gamo/vocab/internal/store"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FormatText is the "name: count" line format.
	FormatText Format = "text"
	// FormatTOML is the TOML document format.
	FormatTOML Format = "toml"

	// TotalLabel prefixes the flat record count line.
	TotalLabel = "Vocabulary"
)

// ErrInvalidFormat is returned when a Format value is not recognized.
var ErrInvalidFormat = errors.New("invalid report format")

type (
	// Format selects the report encoding.
	Format string

	// Options selects what a report contains.
	Options struct {
		Format Format
		// ByFolder reports one count per data file instead of per type.
		ByFolder bool
		// Total appends the flat record count.
		Total bool
	}

	// InvalidFormatError is returned when a Format value is not recognized.
	InvalidFormatError struct {
		Value Format
	}

	// document is the TOML report. Slices keep configured order.
	document struct {
		Total *int      `toml:"total,omitempty"`
		Types []typeRow `toml:"types,omitempty"`
		Files []fileRow `toml:"files,omitempty"`
	}

	typeRow struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}

	fileRow struct {
		Folder string `toml:"folder"`
		Type   string `toml:"type"`
		Count  int    `toml:"count"`
	}
)

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid report format %q (valid: text, toml)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is() compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Validate returns an error if the Format is not recognized.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatTOML:
		return nil
	default:
		return &InvalidFormatError{Value: f}
	}
}

// Write writes the report of v to w.
func Write(w io.Writer, v *store.Vocabulary, opts Options) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if err := opts.Format.Validate(); err != nil {
		return err
	}

	if opts.Format == FormatTOML {
		return writeTOML(w, v, opts)
	}

	if opts.ByFolder {
		if err := WriteFolderCounts(w, v.FolderSummary()); err != nil {
			return err
		}
	} else if err := WriteTypeCounts(w, v.Summary()); err != nil {
		return err
	}
	if opts.Total {
		return WriteTotal(w, v.Len())
	}
	return nil
}

// WriteTypeCounts writes one "type: count" line per entry.
func WriteTypeCounts(w io.Writer, counts []store.TypeCount) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c.Type, c.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteFolderCounts writes one "folder/type: count" line per entry.
func WriteFolderCounts(w io.Writer, counts []store.FolderTypeCount) error {
	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s/%s: %d\n", c.Folder, c.Type, c.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteTotal writes the "Vocabulary: n" line.
func WriteTotal(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "%s: %d\n", TotalLabel, n)
	return err
}

func writeTOML(w io.Writer, v *store.Vocabulary, opts Options) error {
	var doc document
	if opts.Total {
		n := v.Len()
		doc.Total = &n
	}
	if opts.ByFolder {
		for _, c := range v.FolderSummary() {
			doc.Files = append(doc.Files, fileRow{Folder: c.Folder.String(), Type: c.Type.String(), Count: c.Count})
		}
	} else {
		for _, c := range v.Summary() {
			doc.Types = append(doc.Types, typeRow{Name: c.Type.String(), Count: c.Count})
		}
	}

	enc := toml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode toml report: %w", err)
	}
	return nil
}
