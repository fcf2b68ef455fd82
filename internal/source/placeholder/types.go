// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package placeholder

import (
	"fmt"
	"strings"

	"github.com/mia-platform/todo-exporter/internal/source"
)

// userPayload is the wire shape of a /users item. Pointers let us tell a
// missing field apart from its zero value.
type userPayload struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

func (p userPayload) toPerson() (source.Person, error) {
	missingFields := make([]string, 0)
	if p.ID == nil {
		missingFields = append(missingFields, "id")
	}
	if p.Name == nil {
		missingFields = append(missingFields, "name")
	}
	if p.Username == nil {
		missingFields = append(missingFields, "username")
	}

	if len(missingFields) > 0 {
		return source.Person{}, fmt.Errorf("%w: user missing required fields: %s", source.ErrMalformedRecord, strings.Join(missingFields, ", "))
	}

	return source.Person{
		ID:       *p.ID,
		Name:     *p.Name,
		Username: *p.Username,
	}, nil
}

// todoPayload is the wire shape of a /todos item.
type todoPayload struct {
	ID        *int    `json:"id"`
	UserID    *int    `json:"userId"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (p todoPayload) toTask() (source.Task, error) {
	missingFields := make([]string, 0)
	if p.ID == nil {
		missingFields = append(missingFields, "id")
	}
	if p.UserID == nil {
		missingFields = append(missingFields, "userId")
	}
	if p.Title == nil {
		missingFields = append(missingFields, "title")
	}
	if p.Completed == nil {
		missingFields = append(missingFields, "completed")
	}

	if len(missingFields) > 0 {
		return source.Task{}, fmt.Errorf("%w: todo missing required fields: %s", source.ErrMalformedRecord, strings.Join(missingFields, ", "))
	}

	return source.Task{
		ID:        *p.ID,
		OwnerID:   *p.UserID,
		Title:     *p.Title,
		Completed: *p.Completed,
	}, nil
}
