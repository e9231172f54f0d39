package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaskij/cargo-bitbake/pkg/cargo"
	"github.com/jaskij/cargo-bitbake/pkg/errors"
	"github.com/jaskij/cargo-bitbake/pkg/gitutil"
	"github.com/jaskij/cargo-bitbake/pkg/recipe"
)

// bitbakeOpts holds the command-line flags for the bitbake command.
type bitbakeOpts struct {
	reproducible    bool   // pin git dependencies to exact resolved commits
	noChecksums     bool   // omit inline sha256 annotations
	legacyOverrides bool   // use legacy PV_append override syntax
	submodules      bool   // fetch git dependencies with the gitsm fetcher
	manifestPath    string // explicit Cargo.toml location
	quiet           bool
}

// newBitbakeCmd creates the bitbake command, the tool's single
// subcommand.
func newBitbakeCmd() *cobra.Command {
	var opts bitbakeOpts

	cmd := &cobra.Command{
		Use:   "bitbake",
		Short: "Generate a BitBake recipe for the current Cargo project",
		Long: `Generate a BitBake recipe for the current Cargo project.

The project's Cargo.lock supplies the resolved dependency set; the recipe
is written to <name>_<version>.bb in the working directory.

Examples:
  cargo-bitbake bitbake                      # recipe for the project in .
  cargo-bitbake bitbake -r                   # pin git dependencies exactly
  cargo-bitbake bitbake --manifest-path ../app/Cargo.toml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts.quiet, _ = c.Flags().GetBool("quiet")
			return runBitbake(c.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.reproducible, "reproducible", "r", false, "output exact git references for git dependencies")
	cmd.Flags().BoolVarP(&opts.noChecksums, "no-checksums", "c", false, "don't emit inline checksums")
	cmd.Flags().BoolVarP(&opts.legacyOverrides, "legacy-overrides", "l", false, "use legacy override syntax")
	cmd.Flags().BoolVar(&opts.submodules, "git-submodules", false, "fetch git dependencies with the submodule-aware fetcher")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest-path", "", "path to Cargo.toml (searched upward from the working directory if unset)")

	return cmd
}

// runBitbake loads the resolver snapshot, inspects the project checkout,
// runs the translation pass, and writes the recipe file.
func runBitbake(ctx context.Context, opts bitbakeOpts) error {
	logger := loggerFromContext(ctx)

	snap, err := cargo.Load(opts.manifestPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d resolved packages for %s %s", len(snap.Packages), snap.Package.Name, snap.Package.Version)

	prefix := gitutil.PrefixGit
	if opts.submodules {
		prefix = gitutil.PrefixGitSM
	}

	// introspection failure is recoverable: warn, continue with defaults
	repo, err := gitutil.Introspect(ctx, snap.RootDir, prefix)
	if err != nil {
		logger.Warn(errors.UserMessage(err))
	}

	prog := newProgress(logger)
	rec, err := recipe.Generate(snap, repo, recipe.Options{
		Reproducible:    opts.reproducible,
		NoChecksums:     opts.noChecksums,
		LegacyOverrides: opts.legacyOverrides,
		GitPrefix:       prefix,
		Warn:            logger.Warnf,
	})
	if err != nil {
		return err
	}

	path, err := rec.WriteFile("")
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %s", rec.FileName()))

	if !opts.quiet {
		fmt.Println(styleSuccess.Render("Wrote:"), styleValue.Render(path))
	}
	return nil
}
