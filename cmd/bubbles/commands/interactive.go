package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bubbles/internal/app"
)

func (c *CLI) newInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive <rows>",
		Aliases: []string{"ui"},
		Short:   "Browse and reorganize topics in the terminal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetString("assignments")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Interactive(cmd.Context(), app.InteractiveOptions{
				Common:      common(cmd, args[0]),
				Assignments: assignments,
				Watch:       watch,
			})
		},
	}
	cmd.Flags().StringP("assignments", "a", "", "File rewritten with the assignments after every move")
	cmd.Flags().BoolP("watch", "w", false, "Reload the rows whenever the file changes")
	return cmd
}
