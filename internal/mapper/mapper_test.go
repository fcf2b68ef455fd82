// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/todo-exporter/internal/destination"
	"github.com/mia-platform/todo-exporter/internal/source"
)

var (
	leanne = source.Person{ID: 1, Name: "Leanne Graham", Username: "Bret"}
	ervin  = source.Person{ID: 2, Name: "Ervin Howell", Username: "Antonette"}
	clem   = source.Person{ID: 3, Name: "Clementine Bauch", Username: "Samantha"}
)

func TestSingleSubject(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		person        source.Person
		tasks         []source.Task
		expected      *destination.Data
		expectedError error
	}{
		"tasks keep the source order": {
			person: leanne,
			tasks: []source.Task{
				{ID: 1, OwnerID: 1, Title: "A", Completed: true},
				{ID: 2, OwnerID: 1, Title: "B"},
				{ID: 3, OwnerID: 1, Title: "0 first by title", Completed: true},
			},
			expected: &destination.Data{
				Name: "1",
				Groups: []destination.Group{
					{
						OwnerID:   1,
						OwnerName: "Leanne Graham",
						Records: []destination.Record{
							{OwnerID: 1, Username: "Bret", Title: "A", Completed: true},
							{OwnerID: 1, Username: "Bret", Title: "B"},
							{OwnerID: 1, Username: "Bret", Title: "0 first by title", Completed: true},
						},
						Total: 3,
						Done:  2,
					},
				},
			},
		},
		"no tasks still produce a group": {
			person: ervin,
			tasks:  nil,
			expected: &destination.Data{
				Name: "2",
				Groups: []destination.Group{
					{
						OwnerID:   2,
						OwnerName: "Ervin Howell",
						Records:   []destination.Record{},
					},
				},
			},
		},
		"task of another owner": {
			person: leanne,
			tasks: []source.Task{
				{ID: 1, OwnerID: 1, Title: "A"},
				{ID: 21, OwnerID: 2, Title: "B"},
			},
			expectedError: ErrUnknownOwner,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := SingleSubject(test.person, test.tasks)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Nil(t, data)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, data)
		})
	}
}

func TestGroupByOwner(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		persons       []source.Person
		tasks         []source.Task
		expected      *destination.Data
		expectedError error
	}{
		"groups follow the first seen owner": {
			persons: []source.Person{leanne, ervin, clem},
			tasks: []source.Task{
				{ID: 21, OwnerID: 2, Title: "e1"},
				{ID: 1, OwnerID: 1, Title: "l1", Completed: true},
				{ID: 22, OwnerID: 2, Title: "e2", Completed: true},
				{ID: 2, OwnerID: 1, Title: "l2"},
			},
			expected: &destination.Data{
				Name: AllEmployeesName,
				Groups: []destination.Group{
					{
						OwnerID:   2,
						OwnerName: "Ervin Howell",
						Records: []destination.Record{
							{OwnerID: 2, Username: "Antonette", Title: "e1"},
							{OwnerID: 2, Username: "Antonette", Title: "e2", Completed: true},
						},
						Total: 2,
						Done:  1,
					},
					{
						OwnerID:   1,
						OwnerName: "Leanne Graham",
						Records: []destination.Record{
							{OwnerID: 1, Username: "Bret", Title: "l1", Completed: true},
							{OwnerID: 1, Username: "Bret", Title: "l2"},
						},
						Total: 2,
						Done:  1,
					},
				},
			},
		},
		"no tasks": {
			persons: []source.Person{leanne},
			expected: &destination.Data{
				Name:   AllEmployeesName,
				Groups: []destination.Group{},
			},
		},
		"task owner missing from persons": {
			persons: []source.Person{leanne},
			tasks: []source.Task{
				{ID: 1, OwnerID: 1, Title: "l1"},
				{ID: 41, OwnerID: 4, Title: "p1"},
			},
			expectedError: ErrUnknownOwner,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := GroupByOwner(test.persons, test.tasks)
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Nil(t, data)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, data)
		})
	}
}

func TestGroupByOwnerKeepsEveryTask(t *testing.T) {
	t.Parallel()

	persons := []source.Person{leanne, ervin, clem}
	tasks := make([]source.Task, 0, 60)
	for i := range 60 {
		tasks = append(tasks, source.Task{ID: i + 1, OwnerID: i%3 + 1, Title: "task", Completed: i%4 == 0})
	}

	data, err := GroupByOwner(persons, tasks)
	require.NoError(t, err)

	total := 0
	for _, group := range data.Groups {
		for _, record := range group.Records {
			assert.Equal(t, group.OwnerID, record.OwnerID)
		}
		assert.Equal(t, len(group.Records), group.Total)
		total += len(group.Records)
	}
	assert.Equal(t, len(tasks), total)
	assert.Len(t, data.Groups, 3)
}
