// SPDX-License-Identifier: MPL-2.0

// Package record turns raw file text into structured records.
//
// Two parse modes exist. Word mode produces one [Word] per non-empty line of
// a data file. Rename mode splits a rename script into its leading comment
// block and the [Change] instructions that follow it.
//
// Both modes split on "\n", trim every line and drop lines that are empty
// after trimming. Line numbers always refer to the position in the original,
// unfiltered line sequence (1-based).
package record
