package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uqfoundation/relgen/pkg/cliutil"
	"github.com/uqfoundation/relgen/pkg/depcheck"
	"github.com/uqfoundation/relgen/pkg/python/interp"
	"github.com/uqfoundation/relgen/pkg/release"
	"github.com/uqfoundation/relgen/pkg/reproducible"
)

func init() {
	var (
		cfgFile   string
		pythonExe string
		pythonVer string
	)
	cmd := &cobra.Command{
		Use:   "manifest [flags] >OUT_FILE",
		Short: "Print the packaging descriptor for this build",
		Long: "Constructs the declarative descriptor that the external packaging tool " +
			"consumes: distribution name, the resolved version, descriptive metadata, " +
			"sub-package directory mappings, version-range dependency constraints " +
			"(selected for the target interpreter, when one is given), and helper " +
			"scripts.  relgen only describes the distribution; building and uploading " +
			"archives is the packaging tool's job.",
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

			var reqs []depcheck.Requirement
			switch {
			case pythonVer != "":
				tuple, err := interp.ParseVersionTuple(pythonVer)
				if err != nil {
					return err
				}
				reqs, err = cfg.Dependencies.RangesFor(tuple)
				if err != nil {
					return err
				}
			case pythonExe != "":
				tuple, err := interp.Inspect(flags.Context(), pythonExe)
				if err != nil {
					return err
				}
				reqs, err = cfg.Dependencies.RangesFor(tuple)
				if err != nil {
					return err
				}
			default:
				reqs, err = cfg.Dependencies.Defaults()
				if err != nil {
					return err
				}
			}

			manifest, err := release.BuildManifest(cfg, resolved, reqs)
			if err != nil {
				return err
			}
			out, err := release.MarshalManifest(manifest)
			if err != nil {
				return err
			}
			if _, err := os.Stdout.Write(out); err != nil {
				return err
			}
			return nil
		},
	}
	addConfigFlag(cmd.Flags(), &cfgFile)
	cmd.Flags().StringVar(&pythonExe, "python", "",
		"Select dependency ranges for the interpreter at `EXE`")
	cmd.Flags().StringVar(&pythonVer, "python-version", "",
		"Select dependency ranges for interpreter version `MAJOR.MINOR` (overrides --python)")
	argparser.AddCommand(cmd)
}
