// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package summary

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mia-platform/todo-exporter/internal/destination"
)

const (
	headerTemplate = "Employee %s is done with tasks(%d/%d):\n"
	taskTemplate   = "\t %s\n"
)

var _ destination.Writer = &summaryDestination{}

type summaryDestination struct {
	writer io.Writer
}

// NewDestination returns a destination printing the progress report on w.
func NewDestination(w io.Writer) destination.Writer {
	return &summaryDestination{writer: w}
}

// Write implements destination.Writer.
func (d *summaryDestination) Write(_ context.Context, data *destination.Data) error {
	builder := new(strings.Builder)
	for _, group := range data.Groups {
		fmt.Fprintf(builder, headerTemplate, group.OwnerName, group.Done, group.Total)
		for _, record := range group.Records {
			if record.Completed {
				fmt.Fprintf(builder, taskTemplate, record.Title)
			}
		}
	}

	if _, err := io.WriteString(d.writer, builder.String()); err != nil {
		return fmt.Errorf("%w: %w", destination.ErrWriteFailed, err)
	}

	return nil
}
