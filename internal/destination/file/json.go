// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package file

import (
	"context"
	"encoding/json"
	"io"

	"github.com/mia-platform/todo-exporter/internal/destination"
)

const (
	jsonExtension = ".json"
)

var _ destination.Writer = &jsonDestination{}

type jsonDestination struct {
	fileDestination
}

// NewJSONDestination returns a destination writing the whole export into a single
// <name>.json file inside dir. Confirmation lines are printed on out.
func NewJSONDestination(dir string, out io.Writer) destination.Writer {
	return &jsonDestination{
		fileDestination: fileDestination{dir: dir, out: out},
	}
}

// Write implements destination.Writer.
func (d *jsonDestination) Write(ctx context.Context, data *destination.Data) error {
	return d.writeFile(ctx, data.Name+jsonExtension, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(data)
	})
}
