package templates

import (
	"fmt"
	"strings"
)

// DefaultEngine is the engine used when none is configured.
const DefaultEngine = "jinja"

// EngineInfo describes an available template engine.
type EngineInfo struct {
	// Name is the engine identifier used in config and on the command line.
	Name string

	// Description explains the template syntax.
	Description string

	factory func() Engine
}

// engines is the internal registry of available engines.
var engines = map[string]EngineInfo{
	"jinja": {
		Name:        "jinja",
		Description: "Jinja-style syntax: {{ name }}, {% if %}, filters such as {{ name|upper }}",
		factory:     func() Engine { return NewJinjaEngine() },
	},
	"go": {
		Name:        "go",
		Description: "Go text/template syntax: {{ .name }}, {{ upper .name }}",
		factory:     func() Engine { return NewGoEngine() },
	},
}

// Get returns an engine description by name.
func Get(name string) (EngineInfo, error) {
	e, ok := engines[name]
	if !ok {
		return EngineInfo{}, fmt.Errorf("unknown template engine %q; valid engines: %s", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// NewEngine creates a fresh engine instance by name.
func NewEngine(name string) (Engine, error) {
	info, err := Get(name)
	if err != nil {
		return nil, err
	}
	return info.factory(), nil
}

// Names returns all engine names.
func Names() []string {
	return []string{"jinja", "go"}
}
