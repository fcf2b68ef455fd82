// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mia-platform/todo-exporter/internal/destination"
)

var _ destination.Writer = &writerDestination{}

var (
	headerRow = table.Row{"USER_ID", "USERNAME", "TASK_COMPLETED_STATUS", "TASK_TITLE"}
)

type writerDestination struct {
	writer io.Writer
}

func NewDestination(w io.Writer) destination.Writer {
	return &writerDestination{
		writer: w,
	}
}

func (d *writerDestination) Write(_ context.Context, data *destination.Data) error {
	builder := new(strings.Builder)
	builder.WriteString("Export: " + data.Name + "\n")

	for _, group := range data.Groups {
		tw := table.NewWriter()
		tw.SetTitle("%s (%s)", group.OwnerName, group.Key())
		tw.AppendHeader(headerRow)
		for _, record := range group.Records {
			tw.AppendRow(table.Row{record.OwnerID, record.Username, record.Completed, record.Title})
		}
		tw.AppendFooter(table.Row{"", "", "DONE", fmt.Sprintf("%d/%d", group.Done, group.Total)})

		builder.WriteString(tw.Render())
		builder.WriteString("\n")
	}

	if _, err := io.WriteString(d.writer, builder.String()); err != nil {
		return fmt.Errorf("%w: %w", destination.ErrWriteFailed, err)
	}

	return nil
}
