package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uqfoundation/relgen/pkg/cliutil"
	"github.com/uqfoundation/relgen/pkg/release"
	"github.com/uqfoundation/relgen/pkg/reproducible"
)

func init() {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "resolve [flags]",
		Short: "Print the version string this build resolves to",
		Long: "Resolves the build's version: the version recorded in an already-generated " +
			"info module wins (so rebuilding an unpacked source distribution doesn't " +
			"re-version it); otherwise a stable release build resolves to the stable " +
			"version, and a development build resolves to the target version with a " +
			".dev0 suffix (date-stamped, if the project builds dated snapshots).",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			cfg, err := release.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			resolved, err := release.Resolve(flags.Context(), cfg, reproducible.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resolved.String())
			return nil
		},
	}
	addConfigFlag(cmd.Flags(), &cfgFile)
	argparser.AddCommand(cmd)
}
