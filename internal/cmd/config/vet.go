package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/config"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the tmpl configuration file against the config schema.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is valid YAML
  3. Keys and values match the schema (engine is jinja or go, storeDir is
     not empty, log.timestamps is a boolean)`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg.ConfigPath)
		},
	}
}

func runConfigVet(c *cobra.Command, configPath string) error {
	output.Debug("validating config", "path", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError("configuration file not found", configPath,
				"Run 'tmpl config init' to create a default configuration"),
			oerrors.ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(configPath); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+configPath))
	return nil
}
