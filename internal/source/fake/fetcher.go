// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"fmt"
	"testing"

	"github.com/mia-platform/todo-exporter/internal/source"
)

var _ source.Fetcher = &FakeFetcher{}

// FakeFetcher serves in memory persons and tasks and records every call it receives.
type FakeFetcher struct {
	tb testing.TB

	Persons []source.Person
	Tasks   []source.Task

	// PersonErr, PersonsErr and TasksErr, when set, are returned by the matching method.
	PersonErr  error
	PersonsErr error
	TasksErr   error

	Calls []string
}

// NewFakeFetcher returns a FakeFetcher serving persons and tasks.
func NewFakeFetcher(tb testing.TB, persons []source.Person, tasks []source.Task) *FakeFetcher {
	tb.Helper()

	return &FakeFetcher{
		tb:      tb,
		Persons: persons,
		Tasks:   tasks,
	}
}

func (f *FakeFetcher) FetchPerson(ctx context.Context, id int) (*source.Person, error) {
	f.tb.Helper()
	f.Calls = append(f.Calls, fmt.Sprintf("person:%d", id))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.PersonErr != nil {
		return nil, f.PersonErr
	}

	for _, person := range f.Persons {
		if person.ID == id {
			return &person, nil
		}
	}

	return nil, fmt.Errorf("%w: id %d", source.ErrSubjectNotFound, id)
}

func (f *FakeFetcher) FetchAllPersons(ctx context.Context) ([]source.Person, error) {
	f.tb.Helper()
	f.Calls = append(f.Calls, "persons")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.PersonsErr != nil {
		return nil, f.PersonsErr
	}

	return f.Persons, nil
}

func (f *FakeFetcher) FetchTasks(ctx context.Context, filter source.TaskFilter) ([]source.Task, error) {
	f.tb.Helper()
	f.Calls = append(f.Calls, fmt.Sprintf("tasks:%d", filter.OwnerID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.TasksErr != nil {
		return nil, f.TasksErr
	}

	if filter.All() {
		return f.Tasks, nil
	}

	tasks := make([]source.Task, 0)
	for _, task := range f.Tasks {
		if task.OwnerID == filter.OwnerID {
			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}
