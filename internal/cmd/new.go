package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/specs"
)

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var noEdit bool

	c := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a spec",
		Long: `Create a spec holding an example README template, then open it in
your editor.

The editor comes from the editor config key, TMPL_EDITOR or EDITOR.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, cfg, args[0], noEdit)
		},
	}

	c.Flags().BoolVar(&noEdit, "no-edit", false, "Do not open the new spec in the editor")

	return c
}

func runNew(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, noEdit bool) error {
	if err := cfg.Store.WriteSpec(name, specs.DefaultSpec()); err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatStatus(output.StatusCreated, name))

	if noEdit {
		return nil
	}
	return editSpec(cfg, name)
}

// editSpec opens a stored spec in the configured editor.
func editSpec(cfg *cmdtypes.GlobalConfig, name string) error {
	path, err := cfg.Store.Path(name)
	if err != nil {
		return err
	}
	return cfg.Editor.Launch(path)
}
