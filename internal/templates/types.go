// Package templates renders spec templates and writes the results to disk.
package templates

import (
	"fmt"
	"io"
	"strings"
)

// Engine renders a single template body. id identifies the template within a
// generation run; engines that support includes resolve names against the
// ids registered so far.
type Engine interface {
	Render(id, body string, vars map[string]any) (string, error)
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// WorkDir is the root every template path is resolved against.
	// Empty means the current directory.
	WorkDir string

	// DryRun renders every template without writing files.
	DryRun bool

	// Out receives the path of each generated file. Nil discards them.
	Out io.Writer
}

// Failure is a template that could not be rendered or written.
type Failure struct {
	Path string
	Err  error
}

// GenerateResult contains the outcome of a generation run.
type GenerateResult struct {
	// Spec is the spec that was generated.
	Spec string

	// Files lists the template paths written, in spec order.
	Files []string

	// Failures lists the templates that failed, in spec order.
	Failures []Failure

	// WorkDir is the directory the files were written under.
	WorkDir string
}

// GenerationError reports every template that failed during a run.
// Templates that succeeded are already on disk.
type GenerationError struct {
	Spec     string
	Failures []Failure
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following errors occurred while generating %s", e.Spec)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n\t%s: %v", f.Path, f.Err)
	}
	return b.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *GenerationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}
