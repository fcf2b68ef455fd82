// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

// Person is the subject owning a set of tasks (an employee).
type Person struct {
	ID       int
	Name     string
	Username string
}

// Task is a single to-do item owned by exactly one Person.
type Task struct {
	ID        int
	OwnerID   int
	Title     string
	Completed bool
}

// TaskFilter restricts the tasks returned by a Fetcher.
// The zero value selects every task.
type TaskFilter struct {
	// OwnerID, when greater than zero, selects only the tasks owned by that Person.
	OwnerID int
}

// All reports whether the filter selects every task.
func (f TaskFilter) All() bool {
	return f.OwnerID <= 0
}
