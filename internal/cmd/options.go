// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mia-platform/todo-exporter/internal/config"
	"github.com/mia-platform/todo-exporter/internal/destination"
	"github.com/mia-platform/todo-exporter/internal/destination/file"
	"github.com/mia-platform/todo-exporter/internal/destination/summary"
	"github.com/mia-platform/todo-exporter/internal/destination/writer"
	"github.com/mia-platform/todo-exporter/internal/logger"
	"github.com/mia-platform/todo-exporter/internal/pipeline"
	"github.com/mia-platform/todo-exporter/internal/source"
)

const (
	loggerName = "todo-exporter:cmd"
)

// options configures a single export run.
type options struct {
	all         bool
	employeeID  string
	format      string
	outputDir   string
	localOutput bool
	out         io.Writer

	// id is set by validate from employeeID.
	id int

	sourceGetter func() (source.Fetcher, error)
}

// validate checks the configured values, resolves the default format and parses
// the employee id.
func (o *options) validate() error {
	switch {
	case o.all && o.employeeID != "":
		return fmt.Errorf("%w: %q cannot be used together with --%s", source.ErrInvalidArgument, o.employeeID, allFlagName)
	case !o.all && o.employeeID == "":
		return errNoArguments
	}

	if o.format == "" {
		o.format = config.FormatSummary
		if o.all {
			o.format = config.FormatJSON
		}
	}

	if !slices.Contains(config.Formats, o.format) {
		return fmt.Errorf("%w: %q, expected one of %s", errInvalidFormat, o.format, strings.Join(config.Formats, ", "))
	}

	if o.all {
		return nil
	}

	id, err := source.ParseID(o.employeeID)
	if err != nil {
		return err
	}

	o.id = id
	return nil
}

// execute runs the export configured by the options.
func (o *options) execute(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	fetcher, err := o.sourceGetter()
	if err != nil {
		return err
	}

	log.Debug("starting export", "all", o.all, "employeeId", o.id, "format", o.format, "outputDir", o.outputDir, "localOutput", o.localOutput)
	pipeline := pipeline.New(fetcher, o.destination())
	if o.all {
		return pipeline.ExportAll(ctx)
	}

	return pipeline.ExportSubject(ctx, o.id)
}

// destination returns the Writer matching the selected format.
func (o *options) destination() destination.Writer {
	switch {
	case o.localOutput:
		return writer.NewDestination(o.out)
	case o.format == config.FormatCSV:
		return file.NewCSVDestination(o.outputDir, o.out)
	case o.format == config.FormatJSON:
		return file.NewJSONDestination(o.outputDir, o.out)
	default:
		return summary.NewDestination(o.out)
	}
}
