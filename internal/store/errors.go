// SPDX-License-Identifier: MPL-2.0

package store

import (
	"errors"
	"fmt"
)

// ErrIO is the sentinel error wrapped by IOError.
var ErrIO = errors.New("store i/o error")

// IOError is returned when a directory or file of the layout cannot be created.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns both ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
