// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package summary implements a destination that prints the completion progress
// of every exported employee followed by the titles of the completed tasks.
package summary
