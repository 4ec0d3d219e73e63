package cmd

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/cmdutil"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/prompt"
)

// NewRmCmd creates the rm command.
func NewRmCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		cf    cmdutil.ConfirmFlags
		match string
	)

	c := &cobra.Command{
		Use:     "rm <name>...",
		Aliases: []string{"remove"},
		Short:   "Delete stored specs",
		Long: `Delete one or more specs. Each deletion is confirmed unless --yes is given.

A failure on one spec is reported and the rest are still processed.

Examples:
  tmpl rm old-spec
  tmpl rm -y a b c
  tmpl rm --match 'scratch-*'`,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) == 0 && match == "" {
				return fmt.Errorf("requires at least one spec name or --match")
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runRm(c, cfg, args, match, cf.Yes)
		},
	}

	cf.AddTo(c)
	c.Flags().StringVar(&match, "match", "", "Also remove every spec matching a glob pattern")

	return c
}

func runRm(c *cobra.Command, cfg *cmdtypes.GlobalConfig, names []string, match string, yes bool) error {
	if match != "" {
		if !doublestar.ValidatePattern(match) {
			return oerrors.NewExitError(fmt.Errorf("invalid pattern %q", match), oerrors.ExitGeneralError)
		}
		stored, err := cfg.Store.List()
		if err != nil {
			return err
		}
		slices.Sort(stored)
		for _, name := range filterNames(stored, match) {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}

	var confirmer prompt.Confirmer = cfg.Prompter
	if yes {
		confirmer = prompt.Always(true)
	}

	w := c.OutOrStdout()
	for _, name := range names {
		ok, err := confirmer.Confirm("Remove "+name, false)
		if err != nil {
			fmt.Fprintf(w, "Unexpected error handling prompt: %v\n", err)
			continue
		}
		if !ok {
			fmt.Fprintln(w, output.FormatStatus(output.StatusSkipped, name))
			continue
		}

		if err := cfg.Store.DeleteSpec(name); err != nil {
			fmt.Fprintf(w, "Failed to delete spec: %v\n", err)
			continue
		}
		fmt.Fprintln(w, output.FormatStatus(output.StatusDeleted, name))
	}

	return nil
}
