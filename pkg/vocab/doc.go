// SPDX-License-Identifier: MPL-2.0

// Package vocab defines the typed names shared by the vocabulary store:
// folder names, type names and the data file extension.
//
// All three end up as single path segments on disk, so a valid value must be
// non-empty, must not contain a path separator and must not be "." or "..".
package vocab
