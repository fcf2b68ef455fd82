// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mia-platform/todo-exporter/internal/destination"
	"github.com/mia-platform/todo-exporter/internal/logger"
)

const (
	loggerName = "todo-exporter:destination:file"

	dirPermissions = 0o755

	exportedMessageTemplate = "Data exported to %s\n"
)

// encodeFunc writes the content of a single artifact.
type encodeFunc func(w io.Writer) error

// fileDestination holds the settings shared by the file based writers.
type fileDestination struct {
	dir string
	out io.Writer
}

// writeFile creates or truncates name inside the output directory, fills it with encode
// and prints the confirmation line on out. The file is always closed before returning.
func (d *fileDestination) writeFile(ctx context.Context, name string, encode encodeFunc) (err error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", destination.ErrWriteFailed, err)
	}

	path := filepath.Join(d.dir, name)
	log.Debug("writing file", "path", path)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", destination.ErrWriteFailed, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", destination.ErrWriteFailed, closeErr)
		}
	}()

	buffered := bufio.NewWriter(file)
	if err := encode(buffered); err != nil {
		return fmt.Errorf("%w: %s: %w", destination.ErrWriteFailed, path, err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", destination.ErrWriteFailed, path, err)
	}

	fmt.Fprintf(d.out, exportedMessageTemplate, path)
	log.Debug("file written", "path", path)
	return nil
}
