// Command relgen generates versioned release metadata for a Python source
// distribution: it resolves the build's version string, writes the README
// and the generated info module, emits the packaging descriptor, and checks
// dependency availability.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uqfoundation/relgen/pkg/cliutil"
)

var argparser = &cobra.Command{
	Use:   "relgen {[flags]|SUBCOMMAND...}",
	Short: "Generate release metadata for a Python source distribution",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

func init() {
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
}

func main() {
	ctx := context.Background()

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
