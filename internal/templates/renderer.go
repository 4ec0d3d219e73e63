package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
)

// funcMap holds the helpers available to Go templates.
var funcMap = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"yell":  strings.ToUpper,
	"title": func(s string) string {
		return cases.Title(language.Und).String(s)
	},
}

// GoEngine renders templates with text/template. Variables are addressed as
// {{ .name }} and a missing key is an error.
type GoEngine struct{}

// NewGoEngine creates a Go template engine.
func NewGoEngine() *GoEngine {
	return &GoEngine{}
}

// Render parses and executes body.
func (e *GoEngine) Render(id, body string, vars map[string]any) (string, error) {
	tmpl, err := template.New(id).Option("missingkey=error").Funcs(funcMap).Parse(body)
	if err != nil {
		return "", oerrors.WrapCause(oerrors.ErrTemplateSyntax, err, fmt.Sprintf("parsing template %s", id))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", oerrors.WrapCause(oerrors.ErrRender, err, fmt.Sprintf("rendering template %s", id))
	}
	return buf.String(), nil
}
