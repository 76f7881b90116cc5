package cmd

import (
	"os"

	"github.com/mewisme/mew/repl"
	"github.com/spf13/cobra"
)

// Version is overridden at release build time (see the version and
// upgrade subcommands).
var Version = "0.1.0-dev"

const banner = `  /\_/\
 ( o.o ) mew
  > ^ <`

var rootCmd = &cobra.Command{
	Use:     "mew",
	Short:   "Mew is an interpreter for a small cat-themed scripting language",
	Version: Version,
	// With no subcommand, start an interactive session, per the
	// specification's CLI surface (§6).
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.New(banner, Version, "------------------------", "mew> ")
		r.Start(os.Stdout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
