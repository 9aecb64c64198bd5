package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bubbles/internal/app"
)

const rowsHelp = `Rows are read from a .csv, .json, .yaml, .toml or SQLite (.db) file,
or from CSV on standard input when the file is "-".`

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <rows>",
		Short: "Draw the bubble chart of a rows file",
		Long:  "Draw the bubble chart of a rows file.\n\n" + rowsHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Render(cmd.Context(), renderOptions(cmd, args[0]))
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().String("focus", "", "Zoom into the node with this id")
	return cmd
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "-", "File to write the chart to, - for standard output")
	cmd.Flags().StringP("format", "f", "", "Chart format: svg or png (default from bubbles.yaml)")
	cmd.Flags().Float64("size", 0, "Chart width and height in pixels (default from bubbles.yaml)")
}

func renderOptions(cmd *cobra.Command, input string) app.RenderOptions {
	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	size, _ := cmd.Flags().GetFloat64("size")
	focus, _ := cmd.Flags().GetString("focus")
	return app.RenderOptions{
		Common: common(cmd, input),
		Output: output,
		Format: format,
		Size:   size,
		Focus:  focus,
	}
}
