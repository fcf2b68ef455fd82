// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"context"
)

// Fetcher reads people and their tasks from a remote data source.
type Fetcher interface {
	// FetchPerson returns the Person with the given id. It returns an error wrapping
	// ErrSubjectNotFound when the remote does not answer with a success status.
	FetchPerson(ctx context.Context, id int) (*Person, error)

	// FetchAllPersons returns every Person known to the remote.
	FetchAllPersons(ctx context.Context) ([]Person, error)

	// FetchTasks returns the tasks selected by filter in the order given by the remote.
	FetchTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
}
