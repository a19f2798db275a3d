// SPDX-License-Identifier: MPL-2.0

package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultExtension is the extension of every data and manifest file.
const DefaultExtension Extension = "on"

var (
	// ErrInvalidFolderName is the sentinel error wrapped by InvalidFolderNameError.
	ErrInvalidFolderName = errors.New("invalid folder name")
	// ErrInvalidTypeName is the sentinel error wrapped by InvalidTypeNameError.
	ErrInvalidTypeName = errors.New("invalid type name")
	// ErrInvalidExtension is the sentinel error wrapped by InvalidExtensionError.
	ErrInvalidExtension = errors.New("invalid extension")
)

type (
	// FolderName is a top-level category of the store, e.g. "nouns".
	FolderName string

	// TypeName is a sub-category present in every folder. Each
	// (FolderName, TypeName) pair maps to exactly one data file.
	TypeName string

	// Extension is the file extension (without the leading dot) of data files.
	Extension string

	// InvalidFolderNameError is returned when a FolderName is not a single path segment.
	InvalidFolderNameError struct {
		Value  FolderName
		Reason string
	}

	// InvalidTypeNameError is returned when a TypeName is not a single path segment.
	InvalidTypeNameError struct {
		Value  TypeName
		Reason string
	}

	// InvalidExtensionError is returned when an Extension is empty or contains
	// a dot or path separator.
	InvalidExtensionError struct {
		Value  Extension
		Reason string
	}
)

// String returns the string representation of the FolderName.
func (f FolderName) String() string { return string(f) }

// Validate returns an error if the FolderName cannot be used as a directory name.
func (f FolderName) Validate() error {
	if reason := segmentProblem(string(f)); reason != "" {
		return &InvalidFolderNameError{Value: f, Reason: reason}
	}
	return nil
}

// String returns the string representation of the TypeName.
func (t TypeName) String() string { return string(t) }

// Validate returns an error if the TypeName cannot be used as a file base name.
func (t TypeName) Validate() error {
	if reason := segmentProblem(string(t)); reason != "" {
		return &InvalidTypeNameError{Value: t, Reason: reason}
	}
	return nil
}

// String returns the string representation of the Extension.
func (e Extension) String() string { return string(e) }

// Validate returns an error if the Extension is empty or not a plain suffix.
func (e Extension) Validate() error {
	if reason := segmentProblem(string(e)); reason != "" {
		return &InvalidExtensionError{Value: e, Reason: reason}
	}
	if strings.Contains(string(e), ".") {
		return &InvalidExtensionError{Value: e, Reason: "must not contain a dot"}
	}
	return nil
}

// FileName returns "<base>.<ext>".
func (e Extension) FileName(base string) string {
	return base + "." + string(e)
}

// Error implements the error interface for InvalidFolderNameError.
func (e *InvalidFolderNameError) Error() string {
	return fmt.Sprintf("invalid folder name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidFolderName for errors.Is() compatibility.
func (e *InvalidFolderNameError) Unwrap() error { return ErrInvalidFolderName }

// Error implements the error interface for InvalidTypeNameError.
func (e *InvalidTypeNameError) Error() string {
	return fmt.Sprintf("invalid type name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidTypeName for errors.Is() compatibility.
func (e *InvalidTypeNameError) Unwrap() error { return ErrInvalidTypeName }

// Error implements the error interface for InvalidExtensionError.
func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("invalid extension %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidExtension for errors.Is() compatibility.
func (e *InvalidExtensionError) Unwrap() error { return ErrInvalidExtension }

// segmentProblem returns a non-empty reason when s is not usable as one path segment.
func segmentProblem(s string) string {
	switch {
	case strings.TrimSpace(s) == "":
		return "must be non-empty"
	case s != strings.TrimSpace(s):
		return "must not have leading or trailing whitespace"
	case s == "." || s == "..":
		return "must not be a relative path reference"
	case strings.ContainsAny(s, `/\`):
		return "must not contain a path separator"
	case strings.ContainsRune(s, 0):
		return "must not contain NUL"
	}
	return ""
}
