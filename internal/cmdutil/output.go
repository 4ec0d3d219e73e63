package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/mcbunkus/tmpl/internal/output"
	"github.com/mcbunkus/tmpl/internal/specs"
	"github.com/mcbunkus/tmpl/internal/templates"
)

// PrintGenerationError prints the aggregated failure report of a generation
// run: a header naming the spec, then one "\t<path>: <error>" line per
// failed template.
func PrintGenerationError(w io.Writer, err *templates.GenerationError) {
	fmt.Fprintln(w, err.Error())
}

// FormatVariables renders spec variables as "key=literal" pairs joined by
// ", ", keys sorted.
func FormatVariables(spec *specs.Spec) string {
	pairs := make([]string, 0, len(spec.Variables))
	for _, name := range spec.VariableNames() {
		pairs = append(pairs, name+"="+spec.Variables[name].Literal())
	}
	return strings.Join(pairs, ", ")
}

// PrintVetResult prints one line per validation issue, or "<name>: ok".
func PrintVetResult(w io.Writer, name string, issues []string) {
	if len(issues) == 0 {
		fmt.Fprintln(w, output.FormatVetCheck(name, ""))
		return
	}
	for _, issue := range issues {
		fmt.Fprintln(w, output.FormatVetCheck(name, issue))
	}
}
