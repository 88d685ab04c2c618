package main

import (
	"github.com/spf13/pflag"
)

func addConfigFlag(flags *pflag.FlagSet, cfgFile *string) {
	flags.StringVarP(cfgFile, "config-file", "f", "relgen.yaml",
		"Read the project release configuration from `FILE`")
}
