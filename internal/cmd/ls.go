package cmd

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/cmdutil"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

// emptyStoreMessage is printed by ls when the store holds no specs.
const emptyStoreMessage = "You don't have any templates yet. Please create a new one with: tmpl new <name of your template>"

// NewLsCmd creates the ls command.
func NewLsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var listVars bool

	c := &cobra.Command{
		Use:     "ls [pattern]",
		Aliases: []string{"list"},
		Short:   "List stored specs",
		Long: `List the names of stored specs, one per line.

An optional glob pattern filters the names. With --list-vars each name is
followed by the spec's default variables.

Examples:
  tmpl ls
  tmpl ls 'go-*'
  tmpl ls --list-vars`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}
			return runLs(c, cfg, pattern, listVars)
		},
	}

	c.Flags().BoolVarP(&listVars, "list-vars", "l", false, "Also print each spec's default variables")

	return c
}

func runLs(c *cobra.Command, cfg *cmdtypes.GlobalConfig, pattern string, listVars bool) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return oerrors.NewExitError(
			fmt.Errorf("invalid pattern %q", pattern), oerrors.ExitGeneralError)
	}

	names, err := cfg.Store.List()
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(w, emptyStoreMessage)
		return nil
	}

	names = filterNames(names, pattern)
	sort.Strings(names)

	if !listVars {
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	rows := make([]output.Row, 0, len(names))
	for _, name := range names {
		spec, err := cfg.Store.ReadSpec(name)
		if err != nil {
			return err
		}
		rows = append(rows, output.Row{Key: name, Value: cmdutil.FormatVariables(spec)})
	}
	fmt.Fprint(w, output.AlignColumns(rows))

	return nil
}

// filterNames keeps the names matching a doublestar pattern. An empty
// pattern keeps everything.
func filterNames(names []string, pattern string) []string {
	if pattern == "" {
		return names
	}
	var matched []string
	for _, name := range names {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, name)
		}
	}
	return matched
}
