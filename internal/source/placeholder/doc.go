// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package placeholder implements source.Fetcher against a JSONPlaceholder compatible
// REST API exposing the /users and /todos collections.
package placeholder
