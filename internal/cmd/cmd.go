// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	exportCmdUsage = "export [EMPLOYEE_ID]"
	exportCmdShort = "export the tasks of one employee or of every employee"
	exportCmdLong  = `Export the tasks of one employee or of every employee.
	The people and their tasks are read from the remote API configured with the
	TODO_API_ENDPOINT environment variable and written in the selected format.

	The available formats are:
	- summary: progress report with the completed tasks, printed on stdout
	- csv: one <EMPLOYEE_ID>.csv file per employee
	- json: one <EMPLOYEE_ID>.json file, or todo_all_employees.json with --all

	Flags always override the values read from the file passed with --config-file.`

	exportCmdExample = `# Print the progress report of the employee 1
	todo-exporter export 1

	# Write the tasks of the employee 2 in 2.csv inside the exports directory
	todo-exporter export 2 --format csv --output-dir exports

	# Write the tasks of every employee grouped by employee in todo_all_employees.json
	todo-exporter export --all

	# Preview the export as a table without writing any file
	todo-exporter export --all --local-output`
)

// ExportCmd returns the Cobra command that runs an export.
func ExportCmd() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     exportCmdUsage,
		Short:   heredoc.Doc(exportCmdShort),
		Long:    heredoc.Doc(exportCmdLong),
		Example: heredoc.Doc(exportCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.MaximumNArgs(1)(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
