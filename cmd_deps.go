package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uqfoundation/relgen/pkg/cliutil"
	"github.com/uqfoundation/relgen/pkg/depcheck"
	"github.com/uqfoundation/relgen/pkg/python/interp"
	"github.com/uqfoundation/relgen/pkg/release"
)

var argparserDeps = &cobra.Command{
	Use:   "deps {[flags]|SUBCOMMAND...}",
	Short: "Work with the project's dependency declarations",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserDeps)
}

func init() {
	var (
		cfgFile   string
		pythonExe string
	)
	cmd := &cobra.Command{
		Use:   "check [flags]",
		Short: "Probe an interpreter for unresolved dependencies",
		Long: "Asks the target interpreter to import each declared dependency and " +
			"compares the version it reports against the declared range.  Unresolved " +
			"dependencies are reported as a warning, not an error: a build is allowed " +
			"to proceed without them.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			cfg, err := release.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			tuple, err := interp.Inspect(flags.Context(), pythonExe)
			if err != nil {
				return err
			}
			reqs, err := cfg.Dependencies.RangesFor(tuple)
			if err != nil {
				return err
			}
			probe := func(ctx context.Context, module string) (string, bool, error) {
				return interp.ProbeModule(ctx, pythonExe, module)
			}
			unresolved, err := depcheck.Check(flags.Context(), reqs, probe)
			if err != nil {
				return err
			}
			if len(unresolved) > 0 {
				fmt.Fprint(flags.ErrOrStderr(), formatUnresolved(unresolved))
			}
			return nil
		},
	}
	addConfigFlag(cmd.Flags(), &cfgFile)
	cmd.Flags().StringVar(&pythonExe, "python", "python3",
		"Probe the interpreter at `EXE`")
	argparserDeps.AddCommand(cmd)
}

func init() {
	var (
		cfgFile   string
		pythonVer string
	)
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "Print the dependency ranges for an interpreter version",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			cfg, err := release.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			var reqs []depcheck.Requirement
			if pythonVer == "" {
				reqs, err = cfg.Dependencies.Defaults()
			} else {
				var tuple interp.VersionTuple
				tuple, err = interp.ParseVersionTuple(pythonVer)
				if err != nil {
					return err
				}
				reqs, err = cfg.Dependencies.RangesFor(tuple)
			}
			if err != nil {
				return err
			}
			for _, req := range reqs {
				suffix := ""
				if req.Optional {
					suffix = " (optional)"
				}
				fmt.Fprintf(os.Stdout, "%s%s\n", req, suffix)
			}
			return nil
		},
	}
	addConfigFlag(cmd.Flags(), &cfgFile)
	cmd.Flags().StringVar(&pythonVer, "python-version", "",
		"Select ranges for interpreter version `MAJOR.MINOR`")
	argparserDeps.AddCommand(cmd)
}

// formatUnresolved renders the traditional warning banner listing each
// unresolved dependency and its required range.
func formatUnresolved(unresolved []depcheck.Unresolved) string {
	var ret strings.Builder
	const banner = "***********************************************************"
	ret.WriteString("\n" + banner + "\n")
	ret.WriteString("WARNING: One of the following dependencies is unresolved:\n")
	for _, u := range unresolved {
		ret.WriteString("    " + u.Requirement.String())
		if u.Optional {
			ret.WriteString(" (optional)")
		}
		ret.WriteString("\n")
	}
	ret.WriteString(banner + "\n\n")
	return ret.String()
}
