package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/cmdutil"
	"github.com/mcbunkus/tmpl/internal/output"
)

// NewCpCmd creates the cp command.
func NewCpCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var cf cmdutil.ConfirmFlags

	c := &cobra.Command{
		Use:     "cp <source> <dest>",
		Aliases: []string{"copy"},
		Short:   "Duplicate a spec under a new name",
		Long: `Copy a spec file. If dest already exists you are asked before it is
overwritten, unless --yes is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCp(cfg, args[0], args[1], cf.Yes)
		},
	}

	cf.AddTo(c)

	return c
}

func runCp(cfg *cmdtypes.GlobalConfig, src, dst string, yes bool) error {
	if !yes && src != dst && cfg.Store.Exists(dst) {
		ok, err := cfg.Prompter.Confirm(fmt.Sprintf("%s exists, do you want to overwrite it?", dst), false)
		if err != nil {
			return err
		}
		if !ok {
			output.Debug("copy declined", "src", src, "dst", dst)
			return nil
		}
	}

	return cfg.Store.Copy(src, dst)
}
