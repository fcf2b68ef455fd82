// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mapper

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOwner reports a task whose owner is not among the fetched persons.
	ErrUnknownOwner = errors.New("unknown task owner")
)

// Ensure UnknownOwnerError implements the error interface.
var _ error = &UnknownOwnerError{}

// UnknownOwnerError carries the task that could not be joined to a person.
type UnknownOwnerError struct {
	TaskID  int
	OwnerID int
}

func (e *UnknownOwnerError) Error() string {
	return fmt.Sprintf("%s: task %d references user %d", ErrUnknownOwner, e.TaskID, e.OwnerID)
}

func (e *UnknownOwnerError) Unwrap() error {
	return ErrUnknownOwner
}
