// Package editor opens files in the user's text editor.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

const unsetHint = "Set the EDITOR environment variable (or editor in the config file, or TMPL_EDITOR) to your preferred text editor."

// Launcher opens a file for editing and blocks until the editor exits.
type Launcher interface {
	Launch(path string) error
}

// Exec runs an editor command as a child process attached to the terminal.
type Exec struct {
	command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a launcher for command. The command is split on whitespace,
// so "code -w" works; the file path is appended as the last argument.
func New(command string) *Exec {
	return &Exec{
		command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Command returns the configured editor command.
func (e *Exec) Command() string {
	return e.command
}

// Launch opens path in the editor.
func (e *Exec) Launch(path string) error {
	fields := strings.Fields(e.command)
	if len(fields) == 0 {
		return oerrors.NewEditorError("EDITOR environment variable is not set", unsetHint, nil)
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	output.Debug("launching editor", "editor", e.command, "path", path)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return oerrors.NewEditorError(
				fmt.Sprintf("editor exited with non-zero status %d", exitErr.ExitCode()),
				"", err)
		}
		return oerrors.NewEditorError(
			fmt.Sprintf("failed to launch editor (editor: %s)", e.command),
			"Check that the editor command is installed and on your PATH.", err)
	}
	return nil
}
