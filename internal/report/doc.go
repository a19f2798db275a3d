// SPDX-License-Identifier: MPL-2.0

// Package report writes record counts of a loaded vocabulary.
//
// The text form is one "name: count" line per type in configured order,
// followed by "Vocabulary: <n>" when the total is requested. It is plain
// text on purpose: scripts read it. The TOML form carries the same numbers
// for machine consumers.
package report
