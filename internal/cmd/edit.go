package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
)

// NewEditCmd creates the edit command.
func NewEditCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name>",
		Short: "Open a spec in your editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return editSpec(cfg, args[0])
		},
	}
}
