// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/todo-exporter/internal/config"
	"github.com/mia-platform/todo-exporter/internal/source"
	"github.com/mia-platform/todo-exporter/internal/source/placeholder"
)

var (
	errNoArguments   = errors.New("no employee id provided")
	errInvalidFormat = errors.New("invalid format provided")

	// availableFormats holds the output formats and their description for
	// command completion.
	availableFormats = map[string]string{
		config.FormatSummary: "progress report printed on stdout",
		config.FormatCSV:     "one csv file per employee",
		config.FormatJSON:    "a single json file",
	}
)

// handleError prints err on a single line and returns it so the command exits
// with a non zero code. Errors caused by a wrong invocation also print the usage.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	case errors.Is(err, errInvalidFormat):
		cmd.PrintErrln(singleLine(err))
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(singleLine(err))
		return err
	}
}

// singleLine collapses the multi line messages returned by some decoders.
func singleLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	for name, description := range availableFormats {
		if strings.HasPrefix(name, toComplete) {
			comps = append(comps, cobra.CompletionWithDesc(name, description))
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}

// placeholderFetcher returns the Fetcher reading from the remote API.
func placeholderFetcher() (source.Fetcher, error) {
	return placeholder.NewSource()
}
