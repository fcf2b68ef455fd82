// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidArgument reports a missing, non numeric or non positive subject id.
	ErrInvalidArgument = errors.New("invalid employee id")
	// ErrSubjectNotFound reports a person lookup answered with a non success status.
	ErrSubjectNotFound = errors.New("employee not found")
	// ErrFetchFailed reports a failed lookup other than the single person one.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrMalformedRecord reports a response body that cannot be decoded or misses required fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// ParseID converts a command line value into a subject id. Only positive integers are accepted.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q must be an integer", ErrInvalidArgument, value)
	}

	if id <= 0 {
		return 0, fmt.Errorf("%w: %d must be greater than zero", ErrInvalidArgument, id)
	}

	return id, nil
}
