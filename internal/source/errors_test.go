// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value         string
		expectedID    int
		expectedError string
	}{
		"valid id": {
			value:      "1",
			expectedID: 1,
		},
		"not a number": {
			value:         "abc",
			expectedError: `invalid employee id: "abc" must be an integer`,
		},
		"empty string": {
			value:         "",
			expectedError: `invalid employee id: "" must be an integer`,
		},
		"zero": {
			value:         "0",
			expectedError: "invalid employee id: 0 must be greater than zero",
		},
		"negative": {
			value:         "-4",
			expectedError: "invalid employee id: -4 must be greater than zero",
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			id, err := ParseID(test.value)
			if test.expectedError != "" {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.EqualError(t, err, test.expectedError)
				assert.Zero(t, id)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.expectedID, id)
		})
	}
}

func TestTaskFilter(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskFilter{}.All())
	assert.False(t, TaskFilter{OwnerID: 3}.All())
}
