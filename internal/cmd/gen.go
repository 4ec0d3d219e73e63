package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/cmdutil"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/templates"
	"github.com/mcbunkus/tmpl/internal/variables"
)

// NewGenCmd creates the gen command.
func NewGenCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var gf cmdutil.GenFlags

	c := &cobra.Command{
		Use:     "gen <name>",
		Aliases: []string{"generate"},
		Short:   "Generate files from a spec",
		Long: `Render every template of a spec and write the results, relative to the
working directory, in the order the spec lists them.

Options override the spec's default variables. Values are typed: integers,
floats, true/false and TOML date/times keep their type, anything else is a
string. Templates that fail are reported together at the end; the others
are still written.

Examples:
  # Generate into the current directory
  tmpl gen rust-cli

  # Override variables
  tmpl gen rust-cli -o name bill -o count=3

  # Generate somewhere else
  tmpl gen rust-cli -c ./out`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGen(c, cfg, args[0], &gf)
		},
	}

	gf.AddTo(c)

	return c
}

func runGen(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, gf *cmdutil.GenFlags) error {
	spec, err := cfg.Store.ReadSpec(name)
	if err != nil {
		return err
	}

	engineName := gf.Engine
	if engineName == "" {
		engineName = cfg.Engine
	}
	engine, err := templates.NewEngine(engineName)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	vars := variables.Merge(spec.Variables, variables.Pairs(gf.Options))

	workDir := cmdutil.ResolveWorkDir(gf.WorkDir)
	output.SpecLogger(name).Debug("generating", "engine", engineName, "workdir", workDir)

	gen := templates.NewGenerator(engine, templates.GenerateOptions{
		WorkDir: workDir,
		DryRun:  gf.DryRun,
		Out:     c.OutOrStdout(),
	})

	if _, err := gen.Generate(name, spec, vars); err != nil {
		var genErr *templates.GenerationError
		if errors.As(err, &genErr) {
			cmdutil.PrintGenerationError(c.ErrOrStderr(), genErr)
			return &oerrors.ExitError{Err: genErr, Code: oerrors.ExitGenerateFailed, Printed: true}
		}
		return err
	}

	return nil
}
