// Command mew is the CLI dispatcher: an external collaborator that
// drives the core through the interp package's entry points and is
// itself outside the specification's core (purpose §1).
package main

import (
	"fmt"
	"os"

	"github.com/mewisme/mew/cmd/mew/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
