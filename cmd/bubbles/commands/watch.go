package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bubbles/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <rows>",
		Short: "Draw the chart again whenever the rows file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{RenderOptions: renderOptions(cmd, args[0])})
		},
	}
	addRenderFlags(cmd)
	return cmd
}
