package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bubbles/internal/app"
)

func (c *CLI) newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <rows> <source> <dest>",
		Short: "Move a topic or merge a group into another group",
		Long: `Select <source> and click <dest>, exactly as in the chart, then print the
resulting child:parent assignments. Moving a group into another group merges
its members into the destination and removes it.

` + rowsHelp,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetString("assignments")
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			return c.app.Move(cmd.Context(), app.MoveOptions{
				Common:      common(cmd, args[0]),
				Source:      args[1],
				Dest:        args[2],
				Assignments: assignments,
				Output:      output,
				Format:      format,
			})
		},
	}
	cmd.Flags().StringP("assignments", "a", "", "File to write the assignments to (default from bubbles.yaml, else standard output)")
	cmd.Flags().StringP("output", "o", "", "Also draw the chart after the move to this file")
	cmd.Flags().StringP("format", "f", "", "Chart format: svg or png (default from bubbles.yaml)")
	return cmd
}
