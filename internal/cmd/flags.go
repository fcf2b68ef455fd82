// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mia-platform/todo-exporter/internal/config"
)

const (
	allFlagName  = "all"
	allFlagUsage = "Export the tasks of every employee grouped by employee"

	formatFlagName  = "format"
	formatFlagShort = "o"
	formatFlagUsage = "Output format, one of summary, csv or json (default summary, json with --all)"

	outputDirFlagName  = "output-dir"
	outputDirFlagUsage = "Directory where the export files are written"
	defaultOutputDir   = "."

	configFileFlagName  = "config-file"
	configFileFlagShort = "f"
	configFileFlagUsage = "Path to a YAML file with the export parameters"

	localOutputFlagName  = "local-output"
	localOutputFlagUsage = "If set, prints the export as a table on stdout instead of writing files"
	defaultLocalOutput   = false
)

// flags collects the CLI options of the export command.
type flags struct {
	all         bool
	format      string
	outputDir   string
	configFile  string
	localOutput bool
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, allFlagName, false, allFlagUsage)
	cmd.Flags().StringVarP(&f.format, formatFlagName, formatFlagShort, "", formatFlagUsage)
	cmd.Flags().StringVar(&f.outputDir, outputDirFlagName, defaultOutputDir, outputDirFlagUsage)
	cmd.Flags().StringVarP(&f.configFile, configFileFlagName, configFileFlagShort, "", configFileFlagUsage)
	cmd.Flags().BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)

	_ = cmd.RegisterFlagCompletionFunc(formatFlagName, formatCompletion)
	_ = cmd.MarkFlagFilename(configFileFlagName, "yaml", "yml")
	_ = cmd.MarkFlagDirname(outputDirFlagName)
}

// toOptions builds an options instance from the parsed flags, the CLI arguments and
// the optional profile file. Flags set on the command line win over the profile.
func (f *flags) toOptions(cmd *cobra.Command, args []string) (*options, error) {
	profile := new(config.ExportConfig)
	if f.configFile != "" {
		var err error
		if profile, err = config.NewExportConfigFromPath(f.configFile); err != nil {
			return nil, err
		}
	}

	opts := &options{
		all:          profile.All(),
		format:       profile.Format,
		outputDir:    profile.OutputDir,
		localOutput:  f.localOutput,
		out:          cmd.OutOrStdout(),
		sourceGetter: placeholderFetcher,
	}

	if cmd.Flags().Changed(allFlagName) {
		opts.all = f.all
	}

	switch {
	case len(args) > 0:
		opts.employeeID = args[0]
		if !cmd.Flags().Changed(allFlagName) {
			opts.all = false
		}
	case profile.EmployeeID > 0 && !opts.all:
		opts.employeeID = strconv.Itoa(profile.EmployeeID)
	}

	if cmd.Flags().Changed(formatFlagName) {
		opts.format = f.format
	}
	if cmd.Flags().Changed(outputDirFlagName) || opts.outputDir == "" {
		opts.outputDir = f.outputDir
	}

	return opts, nil
}
