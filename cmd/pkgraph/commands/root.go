// Package commands implements the CLI commands for pkgraph.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgraph/internal/app"
	"go.trai.ch/pkgraph/internal/build"
	"go.trai.ch/pkgraph/internal/core/domain"
)

// CLI represents the command line interface for pkgraph.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	globals Globals
	hook    func(Globals)
}

// Application represents the application logic interface.
type Application interface {
	Load(ctx context.Context, cwd string) (*domain.Workspace, error)
	Query(w io.Writer, opts app.QueryOptions) error
	Stat(w io.Writer, opts app.StatOptions) error
}

// Globals holds the values of the persistent flags.
type Globals struct {
	JSONLogs bool
	Verbose  bool
	Progress bool
	// Dir is the directory the configuration search starts from.
	Dir string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgraph",
		Short:         "Inspect the package dependency graph of a workspace",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&c.globals.JSONLogs, "json-logs", false, "Emit logs as JSON")
	flags.BoolVarP(&c.globals.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&c.globals.Progress, "progress", false, "Print load progress to stderr")
	flags.StringVarP(&c.globals.Dir, "config-dir", "C", ".", "Directory to start the pkgraph.yaml search from")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.hook != nil {
			c.hook(c.globals)
		}
	}

	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newStatCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetGlobalsHook registers fn to receive the persistent flag values before any command runs.
func (c *CLI) SetGlobalsHook(fn func(Globals)) {
	c.hook = fn
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
