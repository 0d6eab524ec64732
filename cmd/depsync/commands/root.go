// Package commands implements the CLI commands for depsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/depsync/internal/app"
	"go.trai.ch/depsync/internal/build"
	"go.trai.ch/depsync/internal/core/domain"
)

// CLI represents the command line interface for depsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, opts app.SyncOptions) (domain.SyncReport, error)
	Resolve(ctx context.Context, opts app.RunOptions) (domain.ResolveReport, error)
	Fetch(ctx context.Context, apps []string, opts app.SyncOptions) ([]domain.AppResult, error)
	Report(ctx context.Context, w io.Writer, opts app.RunOptions) ([]domain.LedgerRow, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "depsync",
		Short:         "Record the dependencies of deployed Cloud Foundry applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	flags.Bool("non-interactive", false, "Never prompt; skip ambiguous matches and accept new dependencies")
	flags.Bool("json-logs", false, "Write logs as JSON and disable stage output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newSyncCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	return app.RunOptions{
		ConfigPath:     configPath,
		NonInteractive: nonInteractive,
		JSONLogs:       jsonLogs,
	}
}
