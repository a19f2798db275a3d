// SPDX-License-Identifier: MPL-2.0

package rename

import (
	"errors"
	"fmt"

	"github.com/gamo/vocab/pkg/vocab"
)

var (
	// ErrTargetMissing is the sentinel error wrapped by TargetMissingError.
	ErrTargetMissing = errors.New("rename source missing")
	// ErrConflict is the sentinel error wrapped by ConflictError.
	ErrConflict = errors.New("rename destination exists")
	// ErrIO is the sentinel error wrapped by IOError.
	ErrIO = errors.New("rename i/o error")
	// ErrAlreadyApplied is returned when Apply is called on an applied engine.
	ErrAlreadyApplied = errors.New("rename script already applied")
	// ErrInvalidOverwritePolicy is the sentinel error wrapped by InvalidOverwritePolicyError.
	ErrInvalidOverwritePolicy = errors.New("invalid overwrite policy")
)

type (
	// TargetMissingError is returned when the source file of an instruction does not exist.
	TargetMissingError struct {
		Folder vocab.FolderName
		From   vocab.TypeName
		Path   string
		Line   int
	}

	// ConflictError is returned when a destination exists and the overwrite policy forbids replacing it.
	ConflictError struct {
		Folder vocab.FolderName
		To     vocab.TypeName
		Path   string
		Line   int
		Policy OverwritePolicy
	}

	// IOError is returned when a rename or the script rewrite fails.
	IOError struct {
		Op   string
		Path string
		Err  error
		// Reverted reports whether the moves done before the failure were undone.
		Reverted bool
	}

	// InvalidOverwritePolicyError is returned when an OverwritePolicy value is not recognized.
	InvalidOverwritePolicyError struct {
		Value OverwritePolicy
	}
)

// Error implements the error interface.
func (e *TargetMissingError) Error() string {
	return fmt.Sprintf("line %d: %s/%s: source file %s does not exist", e.Line, e.Folder, e.From, e.Path)
}

// Unwrap returns ErrTargetMissing for errors.Is() compatibility.
func (e *TargetMissingError) Unwrap() error { return ErrTargetMissing }

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("line %d: %s/%s: destination %s exists (overwrite policy %q)", e.Line, e.Folder, e.To, e.Path, e.Policy)
}

// Unwrap returns ErrConflict for errors.Is() compatibility.
func (e *ConflictError) Unwrap() error { return ErrConflict }

// Error implements the error interface.
func (e *IOError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	if e.Reverted {
		msg += " (earlier renames reverted)"
	}
	return msg
}

// Unwrap returns both ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// Error implements the error interface.
func (e *InvalidOverwritePolicyError) Error() string {
	return fmt.Sprintf("invalid overwrite policy %q (valid: never, empty, always)", e.Value)
}

// Unwrap returns ErrInvalidOverwritePolicy for errors.Is() compatibility.
func (e *InvalidOverwritePolicyError) Unwrap() error { return ErrInvalidOverwritePolicy }
