package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/credkit/internal/ui/style"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [manifests...]",
		Short: "Summarize manifests without printing credential values",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			summaries, err := c.app.Inspect(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, style.Header.Render(fmt.Sprintf("%d write requests", len(summaries))))
			for _, s := range summaries {
				overwrite := " "
				if s.Overwrite {
					overwrite = style.Check
				}
				line := fmt.Sprintf("%s %s  %s", overwrite, s.Name, style.Muted.Render(
					fmt.Sprintf("type=%s permissions=%d", s.Type, s.Permissions),
				))
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
