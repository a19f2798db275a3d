// SPDX-License-Identifier: MPL-2.0

// Package store implements the file-backed vocabulary store.
//
// A [Store] is derived from configuration alone: one [layout.Carrier] per
// folder, one data file per type. [Store.Materialize] creates whatever part of
// that layout is missing on disk, and [Store.Load] parses every data file into
// an immutable [Vocabulary] holding three views of the same records.
//
// The store assumes a single process works on a root directory at a time.
// Nothing here locks the directory; concurrent runs against the same root
// must be prevented by the caller.
package store
