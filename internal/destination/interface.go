// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var (
	// ErrWriteFailed reports a failure while producing an output artifact.
	ErrWriteFailed = errors.New("write failed")
)

// Writer serializes an export to its final destination.
type Writer interface {
	Write(ctx context.Context, data *Data) error
}

// Record is the projection of a task joined with its owner's username.
type Record struct {
	OwnerID   int
	Username  string
	Title     string
	Completed bool
}

// Group collects the records of a single owner in source order.
type Group struct {
	OwnerID   int
	OwnerName string
	Records   []Record

	Total int
	Done  int
}

// Key returns the owner id as used for keys and file names.
func (g Group) Key() string {
	return strconv.Itoa(g.OwnerID)
}

// Data is a complete export: an artifact name and the groups in first seen order.
type Data struct {
	// Name is the artifact base name, without extension.
	Name   string
	Groups []Group
}

// jsonRecord is the per task object written in JSON exports.
type jsonRecord struct {
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
	Username  string `json:"username"`
}

// MarshalJSON encodes the groups as an object keyed by owner id, keeping Groups order.
func (d Data) MarshalJSON() ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)

	buffer.WriteByte('{')
	for index, group := range d.Groups {
		if index > 0 {
			buffer.WriteByte(',')
		}

		key, _ := json.Marshal(group.Key())
		buffer.Write(key)
		buffer.WriteByte(':')

		records := make([]jsonRecord, 0, len(group.Records))
		for _, record := range group.Records {
			records = append(records, jsonRecord{
				Task:      record.Title,
				Completed: record.Completed,
				Username:  record.Username,
			})
		}

		if err := encoder.Encode(records); err != nil {
			return nil, err
		}
		buffer.Truncate(buffer.Len() - 1) // Encode terminates every value with a newline
	}
	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}
