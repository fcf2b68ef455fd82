// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mia-platform/todo-exporter/internal/destination"
	"github.com/mia-platform/todo-exporter/internal/logger"
	"github.com/mia-platform/todo-exporter/internal/mapper"
	"github.com/mia-platform/todo-exporter/internal/source"
)

const (
	loggerName = "todo-exporter:pipeline"
)

// Pipeline connects a Fetcher to a destination Writer.
type Pipeline struct {
	source      source.Fetcher
	destination destination.Writer
}

// New returns a Pipeline reading from source and writing to destination.
func New(source source.Fetcher, destination destination.Writer) *Pipeline {
	return &Pipeline{
		source:      source,
		destination: destination,
	}
}

// ExportSubject exports the tasks of the person identified by id.
// A failure while fetching the tasks aborts the run and nothing is written.
func (p *Pipeline) ExportSubject(ctx context.Context, id int) error {
	log := runLogger(ctx).With("mode", "subject", "employeeId", id)
	if id <= 0 {
		return fmt.Errorf("%w: %d must be greater than zero", source.ErrInvalidArgument, id)
	}

	log.Trace("fetching person")
	person, err := p.source.FetchPerson(ctx, id)
	if err != nil {
		log.Debug("person fetch failed", "error", err)
		return err
	}

	log.Trace("fetching tasks")
	tasks, err := p.source.FetchTasks(ctx, source.TaskFilter{OwnerID: id})
	if err != nil {
		log.Debug("tasks fetch failed", "error", err)
		return err
	}

	data, err := mapper.SingleSubject(*person, tasks)
	if err != nil {
		log.Debug("mapping failed", "error", err)
		return err
	}

	return p.write(ctx, log, data)
}

// ExportAll exports every task grouped by its owner.
func (p *Pipeline) ExportAll(ctx context.Context) error {
	log := runLogger(ctx).With("mode", "all")

	log.Trace("fetching persons")
	persons, err := p.source.FetchAllPersons(ctx)
	if err != nil {
		log.Debug("persons fetch failed", "error", err)
		return err
	}

	log.Trace("fetching tasks")
	tasks, err := p.source.FetchTasks(ctx, source.TaskFilter{})
	if err != nil {
		log.Debug("tasks fetch failed", "error", err)
		return err
	}

	data, err := mapper.GroupByOwner(persons, tasks)
	if err != nil {
		log.Debug("mapping failed", "error", err)
		return err
	}

	return p.write(ctx, log, data)
}

func (p *Pipeline) write(ctx context.Context, log logger.Logger, data *destination.Data) error {
	log.Debug("writing export", "name", data.Name, "groups", len(data.Groups))
	if err := p.destination.Write(ctx, data); err != nil {
		log.Debug("write failed", "error", err)
		return err
	}

	log.Debug("export completed", "name", data.Name, "groups", len(data.Groups))
	return nil
}

// runLogger returns the pipeline logger tagged with a fresh run id.
func runLogger(ctx context.Context) logger.Logger {
	return logger.FromContext(ctx).WithName(loggerName).With("run", uuid.NewString())
}
