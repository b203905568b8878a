// Package commands implements the CLI commands for depcache.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/depcache/internal/app"
	"go.trai.ch/depcache/internal/build"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for depcache.
type CLI struct {
	app       Application
	verbosity Verbosity
	rootCmd   *cobra.Command
	config    string
	verbose   bool
}

// Application represents the application logic interface.
type Application interface {
	Keys(ctx context.Context, cwd string, opts app.Options) ([]domain.Descriptor, error)
	Restore(ctx context.Context, cwd string, opts app.Options) ([]domain.RestoreResult, error)
	Save(ctx context.Context, cwd string, opts app.Options) ([]app.SaveResult, error)
}

// Verbosity toggles debug output.
type Verbosity interface {
	SetVerbose(verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, verbosity Verbosity) *CLI {
	rootCmd := &cobra.Command{
		Use:           "depcache",
		Short:         "Restore and save dependency caches keyed by their declaration files",
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
		app:       a,
		verbosity: verbosity,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.config, "config", "c", "",
		"Path to "+domain.ConfigFileName+" (default: search from the working directory upwards)")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Enable debug output")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.verbose && c.verbosity != nil {
			c.verbosity.SetVerbose(true)
		}
	}

	rootCmd.AddCommand(c.newKeysCmd())
	rootCmd.AddCommand(c.newRestoreCmd())
	rootCmd.AddCommand(c.newSaveCmd())
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

func (c *CLI) options(force bool) app.Options {
	return app.Options{Config: c.config, Force: force}
}

func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return cwd, nil
}
