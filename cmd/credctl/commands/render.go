package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/credkit/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [manifests...]",
		Short: "Render manifests into CredHub write request JSON",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			indent, _ := cmd.Flags().GetBool("indent")
			outputPath, _ := cmd.Flags().GetString("out")

			opts := app.RenderOptions{
				Indent:     indent,
				OutputPath: outputPath,
			}
			if outputPath == "" {
				opts.Out = cmd.OutOrStdout()
			}

			return c.app.Render(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolP("indent", "i", false, "Indent the rendered JSON")
	cmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")
	return cmd
}
