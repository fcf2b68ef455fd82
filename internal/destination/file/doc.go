// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package file implements destinations that write exports as CSV or JSON files
// inside an output directory.
package file
