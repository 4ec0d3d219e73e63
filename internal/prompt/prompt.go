// Package prompt asks the user yes/no questions.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

// Confirmer asks a yes/no question. def is returned for an empty answer.
type Confirmer interface {
	Confirm(question string, def bool) (bool, error)
}

// Prompt reads answers line by line from in and writes questions to out.
type Prompt struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
}

// New creates a prompt. Questions are styled only when in is a terminal.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:     bufio.NewReader(in),
		out:    out,
		styled: isTerminal(in),
	}
}

// Confirm writes "question (y/N): " and reads an answer. y/yes and n/no are
// accepted in any case; an empty line or end of input returns def. Anything
// else asks again.
func (p *Prompt) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		text := fmt.Sprintf("%s (%s): ", question, hint)
		if p.styled {
			text = output.StylePrompt.Render(text)
		}
		if _, err := io.WriteString(p.out, text); err != nil {
			return false, oerrors.WrapCause(oerrors.ErrPrompt, err, "writing prompt")
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, oerrors.WrapCause(oerrors.ErrPrompt, err, "reading answer")
		}
		eof := err != nil

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if eof {
				fmt.Fprintln(p.out)
			}
			return def, nil
		}

		if eof {
			fmt.Fprintln(p.out)
			return def, nil
		}
		fmt.Fprintln(p.out, "Please answer 'y' or 'n'")
	}
}

// Always answers every question with the same value. It backs -y flags.
type Always bool

// Confirm returns the fixed answer.
func (a Always) Confirm(string, bool) (bool, error) {
	return bool(a), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
