package templates

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

var disableAutoescape sync.Once

// identifierRegex matches the context keys pongo2 accepts.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// JinjaEngine renders templates with pongo2. Every rendered template stays
// registered under its id, so later templates in the same run can
// {% include %} earlier ones.
type JinjaEngine struct {
	loader *registryLoader
	set    *pongo2.TemplateSet
}

// NewJinjaEngine creates a Jinja-style engine with an empty registry.
func NewJinjaEngine() *JinjaEngine {
	// Generated files are not HTML.
	disableAutoescape.Do(func() { pongo2.SetAutoescape(false) })

	loader := &registryLoader{bodies: make(map[string]string)}
	return &JinjaEngine{
		loader: loader,
		set:    pongo2.NewSet("tmpl", loader),
	}
}

// Render registers body under id and executes it.
func (e *JinjaEngine) Render(id, body string, vars map[string]any) (string, error) {
	e.loader.bodies[id] = body
	e.set.CleanCache(id)

	tpl, err := e.set.FromFile(id)
	if err != nil {
		return "", oerrors.WrapCause(oerrors.ErrTemplateSyntax, err, fmt.Sprintf("parsing template %s", id))
	}

	out, err := tpl.Execute(jinjaContext(vars))
	if err != nil {
		return "", oerrors.WrapCause(oerrors.ErrRender, err, fmt.Sprintf("rendering template %s", id))
	}
	return out, nil
}

// jinjaContext drops variables whose names pongo2 rejects. They could not be
// referenced from a template anyway.
func jinjaContext(vars map[string]any) pongo2.Context {
	ctx := make(pongo2.Context, len(vars))
	for k, v := range vars {
		if !identifierRegex.MatchString(k) {
			output.Debug("variable is not addressable from jinja templates", "key", k)
			continue
		}
		ctx[k] = v
	}
	return ctx
}

// registryLoader serves template bodies registered in memory.
type registryLoader struct {
	bodies map[string]string
}

// Abs resolves includes by id; ids are already relative to the work dir.
func (l *registryLoader) Abs(_, name string) string {
	return name
}

// Get returns the registered body for id.
func (l *registryLoader) Get(id string) (io.Reader, error) {
	body, ok := l.bodies[id]
	if !ok {
		return nil, fmt.Errorf("template %s is not registered", id)
	}
	return strings.NewReader(body), nil
}
