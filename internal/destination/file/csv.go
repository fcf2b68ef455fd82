// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package file

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/mia-platform/todo-exporter/internal/destination"
)

const (
	csvExtension = ".csv"
	csvHeader    = "USER_ID,USERNAME,TASK_COMPLETED_STATUS,TASK_TITLE"
)

var _ destination.Writer = &csvDestination{}

type csvDestination struct {
	fileDestination
}

// NewCSVDestination returns a destination writing one <ownerId>.csv file per group
// inside dir. Confirmation lines are printed on out.
func NewCSVDestination(dir string, out io.Writer) destination.Writer {
	return &csvDestination{
		fileDestination: fileDestination{dir: dir, out: out},
	}
}

// Write implements destination.Writer.
func (d *csvDestination) Write(ctx context.Context, data *destination.Data) error {
	for _, group := range data.Groups {
		err := d.writeFile(ctx, group.Key()+csvExtension, func(w io.Writer) error {
			return encodeCSV(w, group)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// encodeCSV writes the header followed by one row of four quoted fields per record.
func encodeCSV(w io.Writer, group destination.Group) error {
	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return err
	}

	for _, record := range group.Records {
		row := []string{
			strconv.Itoa(record.OwnerID),
			record.Username,
			pythonBool(record.Completed),
			record.Title,
		}

		if _, err := io.WriteString(w, quoteRow(row)+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// quoteRow quotes every field, doubling embedded quotes.
func quoteRow(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
	}

	return strings.Join(quoted, ",")
}

func pythonBool(value bool) string {
	if value {
		return "True"
	}

	return "False"
}
