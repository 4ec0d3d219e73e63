package templates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/safepath"
	"github.com/mcbunkus/tmpl/internal/specs"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Generator renders the templates of a spec into a work directory.
type Generator struct {
	engine Engine
	opts   GenerateOptions
}

// NewGenerator creates a generator that renders with engine.
func NewGenerator(engine Engine, opts GenerateOptions) *Generator {
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{engine: engine, opts: opts}
}

// Generate renders every template of spec against vars, in spec order.
//
// An unsafe or non UTF-8 template path aborts the run immediately. Render and
// write failures are collected instead: the remaining templates are still
// processed and a *GenerationError listing every failure is returned together
// with the result.
func (g *Generator) Generate(name string, spec *specs.Spec, vars map[string]specs.Value) (*GenerateResult, error) {
	if err := g.checkWorkDir(); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Spec:    name,
		Files:   make([]string, 0, len(spec.Templates)),
		WorkDir: g.opts.WorkDir,
	}
	native := specs.NativeMap(vars)

	output.Debug("generating spec",
		"spec", name,
		"templates", len(spec.Templates),
		"workdir", g.opts.WorkDir,
		"dry-run", g.opts.DryRun)

	for _, t := range spec.Templates {
		if err := safepath.Check(t.Path); err != nil {
			return result, fmt.Errorf("spec %s: %w", name, err)
		}
		if !utf8.ValidString(t.Path) {
			return result, oerrors.Wrap(oerrors.ErrInvalidPath, fmt.Sprintf("spec %s: template path %q is not valid UTF-8", name, t.Path))
		}

		if err := g.generateOne(t, native); err != nil {
			output.Debug("template failed", "path", t.Path, "error", err)
			result.Failures = append(result.Failures, Failure{Path: t.Path, Err: err})
			continue
		}

		fmt.Fprintln(g.opts.Out, t.Path)
		result.Files = append(result.Files, t.Path)
	}

	if len(result.Failures) > 0 {
		return result, &GenerationError{Spec: name, Failures: result.Failures}
	}
	return result, nil
}

// generateOne renders a single template and writes it, replacing any
// existing file.
func (g *Generator) generateOne(t specs.Template, vars map[string]any) error {
	rendered, err := g.engine.Render(t.Path, t.Body, vars)
	if err != nil {
		return err
	}

	if g.opts.DryRun {
		output.Debug("rendered template", "path", t.Path, "bytes", len(rendered))
		return nil
	}

	target := filepath.Join(g.opts.WorkDir, t.Path)

	parentDir := filepath.Dir(target)
	if err := os.MkdirAll(parentDir, dirMode); err != nil {
		return oerrors.WrapCause(oerrors.ErrIO, err, fmt.Sprintf("creating directory %s", parentDir))
	}

	if err := os.WriteFile(target, []byte(rendered), fileMode); err != nil {
		return oerrors.WrapCause(oerrors.ErrIO, err, fmt.Sprintf("writing %s", target))
	}

	output.Debug("created file", "path", t.Path)
	return nil
}

// checkWorkDir validates that the work directory exists.
func (g *Generator) checkWorkDir() error {
	info, err := os.Stat(g.opts.WorkDir)
	if os.IsNotExist(err) {
		return oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("working directory %s", g.opts.WorkDir))
	}
	if err != nil {
		return oerrors.WrapCause(oerrors.ErrIO, err, "checking working directory")
	}
	if !info.IsDir() {
		return oerrors.Wrap(oerrors.ErrInvalidPath, fmt.Sprintf("%s is not a directory", g.opts.WorkDir))
	}
	return nil
}
