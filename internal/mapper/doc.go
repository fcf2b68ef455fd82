// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package mapper joins fetched tasks with their owners and reshapes them into
// the export structure consumed by destinations.
// Records always keep the order in which the source returned the tasks.
package mapper
