package commands

import "github.com/spf13/cobra"

func (c *CLI) newAssignmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignments <rows>",
		Short: "Print the child:parent listing of a rows file",
		Long:  "Print the child:parent listing of a rows file. The root is listed as 0.\n\n" + rowsHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Assignments(cmd.Context(), common(cmd, args[0]))
		},
	}
}
