// Package main is the entry point for the tmpl CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcbunkus/tmpl/internal/cmd"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(cmd.NormalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		code := oerrors.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
		os.Exit(code)
	}
}
