package commands

import "github.com/spf13/cobra"

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show every recorded application with its project and dependency count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Report(cmd.Context(), cmd.OutOrStdout(), runOptions(cmd))
			return err
		},
	}
}
