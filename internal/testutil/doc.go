// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover directory and file setup (MustMkdirAll, MustWriteFile,
// WriteTree), assertions on files (MustReadFile, AssertExists,
// AssertNotExists, Snapshot) and environment management (MustChdir,
// MustSetenv).
package testutil
