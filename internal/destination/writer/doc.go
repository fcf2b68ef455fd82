// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a destination that renders the export as a table on
// the given io.Writer instead of creating files.
// It is primarily useful for previewing an export before writing it to disk.
package writer
