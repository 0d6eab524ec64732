package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/depsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "List deployed applications, resolve their projects and record new dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			report, err := c.app.Sync(cmd.Context(), app.SyncOptions{
				RunOptions: runOptions(cmd),
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d application(s), %d resolved, %d unresolved\n",
				len(report.Applications), len(report.Resolve.Resolved), len(report.Resolve.Unresolved))
			return nil
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Show new dependencies without saving them")
	return cmd
}

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Map deployed applications without a record to projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Resolve(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%d known, %d resolved, %d unresolved\n",
				len(report.Known), len(report.Resolved), len(report.Unresolved))
			for _, name := range report.Unresolved {
				_, _ = fmt.Fprintf(out, "  unresolved: %s\n", name)
			}
			return nil
		},
	}
}

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [apps...]",
		Short: "Record new dependencies of recorded applications (all when none are named)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			_, err := c.app.Fetch(cmd.Context(), args, app.SyncOptions{
				RunOptions: runOptions(cmd),
				DryRun:     dryRun,
			})
			return err
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Show new dependencies without saving them")
	return cmd
}
