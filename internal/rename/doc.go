// SPDX-License-Identifier: MPL-2.0

// Package rename applies a self-consuming rename script to a vocabulary store.
//
// The script is a batch: every instruction is applied in every configured
// folder, and once the whole batch has succeeded the script is rewritten to
// keep only its comment block. Instructions therefore run at most once.
//
// An [Engine] works in three steps that never interleave:
//
//  1. Plan validates the whole batch against the current disk state.
//  2. Every planned move is executed in order.
//  3. The script is rewritten.
//
// If step 2 or 3 fails, the moves already executed are reverted in reverse
// order before the error is returned.
package rename
