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
	var (
		cfgFile string
		dated   bool
	)
	cmd := &cobra.Command{
		Use:   "generate [flags]",
		Short: "Resolve the version and write the README and info module",
		Long: "Resolves the build's version (see `relgen resolve`), renders the README " +
			"from the project's template, and writes the generated info module.  All " +
			"inputs (license file, README template) are read before anything is " +
			"written, so a missing input aborts the build without leaving partial " +
			"artifacts behind.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			cfg, err := release.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if flags.Flags().Changed("dated") {
				cfg.DatedSnapshots = dated
			}
			resolved, err := release.Resolve(flags.Context(), cfg, reproducible.Now())
			if err != nil {
				return err
			}
			if err := release.Generate(flags.Context(), cfg, resolved); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, resolved.String())
			return nil
		},
	}
	addConfigFlag(cmd.Flags(), &cfgFile)
	cmd.Flags().BoolVar(&dated, "dated", false,
		"Stamp a development build with the build date (overrides the config)")
	argparser.AddCommand(cmd)
}
