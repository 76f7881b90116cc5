package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// manifest is the project descriptor scaffolded by `mew init`, analogous
// to the teacher's module manifest but trimmed to what a Mew project
// actually needs: a name and its entry file.
type manifest struct {
	Name  string `yaml:"name"`
	Entry string `yaml:"entry"`
}

const stubSource = `// a fresh mew project
purr("hiss hiss, world!");
`

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new Mew project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		name := filepath.Base(absPath(dir))
		m := manifest{Name: name, Entry: "main.mew"}

		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding manifest: %w", err)
		}
		manifestPath := filepath.Join(dir, "mew.yaml")
		if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", manifestPath, err)
		}

		entryPath := filepath.Join(dir, m.Entry)
		if _, err := os.Stat(entryPath); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, leaving it untouched\n", entryPath)
		} else {
			if err := os.WriteFile(entryPath, []byte(stubSource), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", entryPath, err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "scaffolded %q in %s\n", name, dir)
		return nil
	},
}

func absPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}

func init() {
	rootCmd.AddCommand(initCmd)
}
