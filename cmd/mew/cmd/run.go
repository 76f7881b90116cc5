package cmd

import (
	"fmt"
	"strings"

	"github.com/mewisme/mew/interp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.mew>",
	Short: "Run a Mew source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.HasSuffix(path, ".mew") {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s does not have a .mew extension\n", path)
		}
		if err := interp.EvalFile(path); err != nil {
			// EvalFile has already written a formatted diagnostic to
			// stderr; return a bare error so Execute exits non-zero
			// without printing it a second time.
			return errSilent{err}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// errSilent wraps an error already reported to the user so main's
// top-level error print is a no-op.
type errSilent struct{ err error }

func (e errSilent) Error() string { return "" }
func (e errSilent) Unwrap() error { return e.err }
