// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// GroupByOwner exports every task grouped by its owner.
	GroupByOwner = "owner"
	// GroupByNone exports the tasks of a single employee.
	GroupByNone = "none"

	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatSummary = "summary"
)

var (
	// ErrConfig reports an invalid export profile.
	ErrConfig = errors.New("invalid configuration")

	// Formats lists the accepted output formats.
	Formats = []string{FormatSummary, FormatCSV, FormatJSON}
)

// ExportConfig holds the parameters of an export run loaded from a profile file.
// Zero values mean the parameter is not set and the command line decides.
type ExportConfig struct {
	GroupBy    string `yaml:"groupBy"`
	Format     string `yaml:"format"`
	EmployeeID int    `yaml:"employeeId"`
	OutputDir  string `yaml:"outputDir"`
}

// NewExportConfigFromPath reads and validates the export profile at path.
// An empty file returns an empty profile.
func NewExportConfigFromPath(path string) (*ExportConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	config := new(ExportConfig)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w %q: %w", ErrConfig, path, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrConfig, path, err)
	}

	return config, nil
}

// All reports whether the profile asks for the export of every employee.
func (c *ExportConfig) All() bool {
	return c.GroupBy == GroupByOwner
}

func (c *ExportConfig) validate() error {
	errorsList := []string{}

	if c.GroupBy != "" && c.GroupBy != GroupByOwner && c.GroupBy != GroupByNone {
		errorsList = append(errorsList, fmt.Sprintf("unknown value %q for groupBy, expected %s or %s", c.GroupBy, GroupByOwner, GroupByNone))
	}

	if c.Format != "" && !slices.Contains(Formats, c.Format) {
		errorsList = append(errorsList, fmt.Sprintf("unknown value %q for format, expected one of %s", c.Format, strings.Join(Formats, ", ")))
	}

	if c.EmployeeID < 0 {
		errorsList = append(errorsList, fmt.Sprintf("employeeId %d must be greater than zero", c.EmployeeID))
	}

	if c.All() && c.EmployeeID != 0 {
		errorsList = append(errorsList, "employeeId cannot be set when groupBy is owner")
	}

	if len(errorsList) > 0 {
		return errors.New(strings.Join(errorsList, "; "))
	}

	return nil
}
