package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/config"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

// shownValue is the YAML form of one resolved setting.
type shownValue struct {
	Value  string `yaml:"value"`
	Source string `yaml:"source"`
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Long: `Show every setting together with where its value came from
(flag, env, config or default).`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigShow(c, cfg, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table",
		"Output format: "+strings.Join(output.ValidFormats(), ", "))

	return c
}

func runConfigShow(c *cobra.Command, cfg *cmdtypes.GlobalConfig, format string) error {
	if !slices.Contains(output.ValidFormats(), strings.ToLower(format)) {
		return oerrors.NewExitError(
			fmt.Errorf("invalid output format %q (valid: %s)", format, strings.Join(output.ValidFormats(), ", ")),
			oerrors.ExitGeneralError,
		)
	}

	resolved := cfg.Resolved
	if resolved == nil {
		resolved = config.ResolveAll(config.ResolveAllOptions{Config: cfg.Config})
	}
	values := resolved.Values()

	w := c.OutOrStdout()
	switch output.ParseOutputFormat(format) {
	case output.FormatYAML:
		shown := make(map[string]shownValue, len(values))
		for _, v := range values {
			shown[v.Key] = shownValue{Value: v.Value, Source: string(v.Source)}
		}
		data, err := yaml.Marshal(shown)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		tbl := output.NewTable("KEY", "VALUE", "SOURCE")
		for _, v := range values {
			tbl.Row(v.Key, v.Value, string(v.Source))
		}
		fmt.Fprintln(w, tbl.String())
	}

	return nil
}
