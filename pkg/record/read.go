// SPDX-License-Identifier: MPL-2.0

package record

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrFileUnreadable is the sentinel error wrapped by FileUnreadableError.
var ErrFileUnreadable = errors.New("file unreadable")

// FileUnreadableError is returned when a source file cannot be read or is not valid UTF-8 text.
type FileUnreadableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileUnreadableError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

// Unwrap returns both ErrFileUnreadable and the underlying cause.
func (e *FileUnreadableError) Unwrap() []error { return []error{ErrFileUnreadable, e.Err} }

// ReadFile returns the content of path as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileUnreadableError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileUnreadableError{Path: path, Err: errors.New("content is not valid UTF-8 text")}
	}
	return string(data), nil
}
