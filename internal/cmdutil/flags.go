// Package cmdutil provides shared command utilities: flag groups and error
// reporting helpers.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// GenFlags holds the flags of the gen command.
type GenFlags struct {
	Options []string
	WorkDir string
	Engine  string
	DryRun  bool
}

// AddTo registers the gen flags on the given cobra command.
func (f *GenFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.Options, "option", "o", nil,
		"Override a variable: -o KEY VALUE or -o KEY=VALUE (can be repeated)")
	cmd.Flags().StringVarP(&f.WorkDir, "workdir", "c", "",
		"Directory to generate into (default: current directory)")
	cmd.Flags().StringVar(&f.Engine, "engine", "",
		"Template engine: jinja or go (default: from config)")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Render every template and print the paths without writing files")
}

// ConfirmFlags holds the flag that skips confirmation prompts.
type ConfirmFlags struct {
	Yes bool
}

// AddTo registers the confirmation flag on the given cobra command.
func (f *ConfirmFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Yes, "yes", "y", false, "Skip confirmation prompts")
}

// ResolveWorkDir returns the generation root, defaulting to the current directory.
func ResolveWorkDir(workDir string) string {
	if workDir == "" {
		return "."
	}
	return workDir
}
