// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for vocab.
//
// The default action runs the whole pipeline against the store in the
// working directory: load the manifest, create missing folders and data
// files, read every record, apply the rename script, and print the per-type
// report. Subcommands run individual steps.
package cmd
