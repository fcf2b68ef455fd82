// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package source defines the records read from a remote to-do service and the
// Fetcher contract every concrete source must satisfy.
// Sources are read-only: they never mutate the remote and keep no state between runs.
package source
