// Package specs models spec documents and the flat directory that stores them.
package specs

import "sort"

// Spec is a stored document describing default variables and the files to
// generate. A Spec read for a generation run is treated as immutable; merging
// overrides produces a new variable map.
type Spec struct {
	// Variables maps variable names to their default values.
	Variables map[string]Value

	// Templates lists the files to generate, in output order.
	Templates []Template
}

// Template is one file to generate: a relative output path and the
// un-rendered template source.
type Template struct {
	Path string `toml:"path"`
	Body string `toml:"body,multiline"`
}

// NewSpec returns an empty spec.
func NewSpec() *Spec {
	return &Spec{
		Variables: make(map[string]Value),
		Templates: []Template{},
	}
}

// VariableNames returns the variable names in sorted order.
func (s *Spec) VariableNames() []string {
	names := make([]string, 0, len(s.Variables))
	for name := range s.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
