// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mapper

import (
	"strconv"

	"github.com/mia-platform/todo-exporter/internal/destination"
	"github.com/mia-platform/todo-exporter/internal/source"
)

const (
	// AllEmployeesName is the artifact name used when exporting every owner.
	AllEmployeesName = "todo_all_employees"
)

// SingleSubject builds the export of a single person. Every task must belong to
// person; the resulting Data always holds exactly one group, possibly empty.
func SingleSubject(person source.Person, tasks []source.Task) (*destination.Data, error) {
	group := newGroup(person, len(tasks))
	for _, task := range tasks {
		if task.OwnerID != person.ID {
			return nil, &UnknownOwnerError{TaskID: task.ID, OwnerID: task.OwnerID}
		}

		group.append(person, task)
	}

	return &destination.Data{
		Name:   strconv.Itoa(person.ID),
		Groups: []destination.Group{group.Group},
	}, nil
}

// GroupByOwner builds the export of every task grouped by its owner. Groups appear
// in the order their first task is encountered; persons without tasks are omitted.
func GroupByOwner(persons []source.Person, tasks []source.Task) (*destination.Data, error) {
	personsByID := make(map[int]source.Person, len(persons))
	for _, person := range persons {
		personsByID[person.ID] = person
	}

	groups := make([]*groupBuilder, 0)
	groupsByOwner := make(map[int]*groupBuilder)
	for _, task := range tasks {
		person, ok := personsByID[task.OwnerID]
		if !ok {
			return nil, &UnknownOwnerError{TaskID: task.ID, OwnerID: task.OwnerID}
		}

		group, ok := groupsByOwner[task.OwnerID]
		if !ok {
			group = newGroup(person, 0)
			groupsByOwner[task.OwnerID] = group
			groups = append(groups, group)
		}

		group.append(person, task)
	}

	data := &destination.Data{
		Name:   AllEmployeesName,
		Groups: make([]destination.Group, 0, len(groups)),
	}
	for _, group := range groups {
		data.Groups = append(data.Groups, group.Group)
	}

	return data, nil
}

// groupBuilder accumulates records and counters for one owner.
type groupBuilder struct {
	destination.Group
}

func newGroup(person source.Person, capacity int) *groupBuilder {
	return &groupBuilder{
		Group: destination.Group{
			OwnerID:   person.ID,
			OwnerName: person.Name,
			Records:   make([]destination.Record, 0, capacity),
		},
	}
}

func (g *groupBuilder) append(person source.Person, task source.Task) {
	g.Records = append(g.Records, destination.Record{
		OwnerID:   task.OwnerID,
		Username:  person.Username,
		Title:     task.Title,
		Completed: task.Completed,
	})

	g.Total++
	if task.Completed {
		g.Done++
	}
}
