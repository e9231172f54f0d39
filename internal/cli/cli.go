// Package cli implements the cargo-bitbake command-line interface.
//
// The tool exposes a single subcommand, "bitbake", which translates the
// resolved dependency graph of a Cargo project into a BitBake recipe.
// The odd-looking invocation (cargo-bitbake bitbake) keeps compatibility
// with the cargo plugin convention, where cargo forwards the subcommand
// name to the plugin binary.
//
// # Logging
//
// All commands support -q for quiet operation and repeatable -v for
// increased verbosity. Loggers are passed through context.Context;
// warnings are advisory and never affect the exit status.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jaskij/cargo-bitbake/pkg/buildinfo"
)

// Execute runs the cargo-bitbake CLI and returns an error if any command
// fails. Fatal conditions surface here as one structured error; main
// prints it and exits non-zero.
func Execute(ctx context.Context) error {
	var (
		quiet     bool
		verbosity int
	)

	root := &cobra.Command{
		Use:          "cargo-bitbake",
		Short:        "Generates BitBake recipes for Cargo projects",
		Long:         `cargo-bitbake translates a Cargo project's resolved dependency graph into a BitBake recipe, so the project can be rebuilt under an OpenEmbedded/Yocto build.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, logLevel(quiet, verbosity)))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "silence all output")
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose mode (-v, -vv, ...)")

	root.AddCommand(newBitbakeCmd())

	return root.ExecuteContext(ctx)
}

// logLevel maps the quiet and verbosity flags onto a log level. Quiet
// wins over any verbosity.
func logLevel(quiet bool, verbosity int) charmlog.Level {
	switch {
	case quiet:
		return charmlog.ErrorLevel
	case verbosity > 0:
		return charmlog.DebugLevel
	default:
		return charmlog.InfoLevel
	}
}
