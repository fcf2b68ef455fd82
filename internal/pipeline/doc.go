// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package pipeline runs an export: it fetches from a source, reshapes the records
// with the mapper and hands the result to a destination.
// The stages run in sequence and the first error stops the run.
package pipeline
