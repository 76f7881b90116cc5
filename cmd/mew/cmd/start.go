package cmd

import (
	"os"

	"github.com/mewisme/mew/repl"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive Mew session",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.New(banner, Version, "------------------------", "mew> ")
		r.Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
