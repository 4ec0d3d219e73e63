package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/cmdutil"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/specs"
)

// NewVetCmd creates the vet command.
func NewVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet [name...]",
		Short: "Validate stored specs",
		Long: `Validate specs against the spec schema.

Checks performed:
  1. The spec is valid TOML
  2. Variables are scalars (string, integer, float, boolean, date/time)
  3. Every template has a non-empty path and a body
  4. Every template path stays inside the working directory

With no names every stored spec is checked.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(c, cfg, args)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig, names []string) error {
	if len(names) == 0 {
		stored, err := cfg.Store.List()
		if err != nil {
			return err
		}
		sort.Strings(stored)
		names = stored
	}

	validator, err := specs.NewValidator()
	if err != nil {
		return err
	}

	failed := 0
	for _, name := range names {
		issues := vetSpec(cfg.Store, validator, name)
		if len(issues) > 0 {
			failed++
		}
		cmdutil.PrintVetResult(c.OutOrStdout(), name, issues)
	}

	if failed > 0 {
		return &oerrors.ExitError{
			Err:     fmt.Errorf("%w: %d of %d specs failed validation", oerrors.ErrValidation, failed, len(names)),
			Code:    oerrors.ExitValidationError,
			Printed: true,
		}
	}
	return nil
}

// vetSpec returns the problems found in one stored spec.
func vetSpec(store *specs.Store, validator *specs.Validator, name string) []string {
	data, err := store.ReadToString(name)
	if err != nil {
		return []string{err.Error()}
	}

	err = validator.Validate([]byte(data))
	if err == nil {
		return nil
	}

	var verrs specs.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	issues := make([]string, 0, len(verrs))
	for _, v := range verrs {
		issues = append(issues, v.Error())
	}
	return issues
}
