// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomMarshaling(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input    Data
		expected string
	}{
		"single group": {
			input: Data{
				Name: "1",
				Groups: []Group{
					{
						OwnerID: 1,
						Records: []Record{
							{OwnerID: 1, Username: "Bret", Title: "A", Completed: true},
							{OwnerID: 1, Username: "Bret", Title: "B"},
						},
					},
				},
			},
			expected: `{"1":[{"task":"A","completed":true,"username":"Bret"},{"task":"B","completed":false,"username":"Bret"}]}`,
		},
		"groups keep their order": {
			input: Data{
				Name: "todo_all_employees",
				Groups: []Group{
					{OwnerID: 10, Records: []Record{{OwnerID: 10, Username: "Moriah.Stanton", Title: "x"}}},
					{OwnerID: 2, Records: []Record{{OwnerID: 2, Username: "Antonette", Title: "y", Completed: true}}},
				},
			},
			expected: `{"10":[{"task":"x","completed":false,"username":"Moriah.Stanton"}],"2":[{"task":"y","completed":true,"username":"Antonette"}]}`,
		},
		"group without records": {
			input: Data{
				Name:   "5",
				Groups: []Group{{OwnerID: 5}},
			},
			expected: `{"5":[]}`,
		},
		"no groups": {
			input:    Data{Name: "todo_all_employees"},
			expected: `{}`,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			marshaled, err := json.Marshal(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(marshaled))
		})
	}
}

func TestGroupKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Group{OwnerID: 42}.Key())
}

func TestMarshalingKeepsHTMLCharacters(t *testing.T) {
	t.Parallel()

	data := Data{
		Name: "3",
		Groups: []Group{
			{OwnerID: 3, Records: []Record{{OwnerID: 3, Username: "Samantha", Title: "fix <b> & </b> tags"}}},
		},
	}

	marshaled, err := data.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"3":[{"task":"fix <b> & </b> tags","completed":false,"username":"Samantha"}]}`, string(marshaled))
}
