// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the tmpl CLI.`,
	}

	c.AddCommand(
		NewConfigInitCmd(cfg),
		NewConfigShowCmd(cfg),
		NewConfigVetCmd(cfg),
	)

	return c
}
