// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package destination defines the exported data shape and the Writer contract
// shared by every output format.
package destination
