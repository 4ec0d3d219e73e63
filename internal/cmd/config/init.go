package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/config"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

const configHeader = `# tmpl configuration
#
# storeDir:  directory holding spec files
# editor:    editor command, overrides $EDITOR (e.g. "code -w")
# engine:    template engine, "jinja" or "go"

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Long: `Create a configuration file with default values.

The file is written to the resolved config path:
  --config flag > TMPL_CONFIG env > <user config dir>/tmpl/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg.ConfigPath, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, configPath string, force bool) error {
	exists, err := config.ConfigFileExists(configPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath),
			oerrors.ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+configPath))
	return nil
}
