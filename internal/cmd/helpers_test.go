package cmd

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/mcbunkus/tmpl/internal/cmdtypes"
	"github.com/mcbunkus/tmpl/internal/prompt"
	"github.com/mcbunkus/tmpl/internal/specs"
	"github.com/mcbunkus/tmpl/internal/testutil"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// stubEditor records the paths it was asked to open.
type stubEditor struct {
	opened []string
	err    error
}

func (e *stubEditor) Launch(path string) error {
	e.opened = append(e.opened, path)
	return e.err
}

// newTestConfig returns a GlobalConfig backed by a temporary store. answers
// feeds the prompter, one answer per line; prompt text goes to promptOut.
func newTestConfig(t *testing.T, answers string) (*cmdtypes.GlobalConfig, *stubEditor, *bytes.Buffer) {
	t.Helper()

	store, err := specs.NewStore(t.TempDir())
	require.NoError(t, err)

	ed := &stubEditor{}
	promptOut := &bytes.Buffer{}

	return &cmdtypes.GlobalConfig{
		Store:    store,
		Prompter: prompt.New(strings.NewReader(answers), promptOut),
		Editor:   ed,
		Engine:   "jinja",
	}, ed, promptOut
}

// addSpec stores a spec with a single template.
func addSpec(t *testing.T, cfg *cmdtypes.GlobalConfig, name string, vars map[string]specs.Value, path, body string) {
	t.Helper()

	spec := specs.NewSpec()
	for k, v := range vars {
		spec.Variables[k] = v
	}
	spec.Templates = append(spec.Templates, specs.Template{Path: path, Body: body})
	require.NoError(t, cfg.Store.WriteSpec(name, spec))
}

// addRawSpec writes a spec file without going through the encoder.
func addRawSpec(t *testing.T, cfg *cmdtypes.GlobalConfig, name, contents string) {
	t.Helper()
	testutil.WriteFile(t, cfg.Store.Dir(), name, contents)
}

// execute runs c with args and returns stdout, stderr and the error.
func execute(c *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetArgs(args)
	err := c.Execute()
	return stripAnsi(stdout.String()), stripAnsi(stderr.String()), err
}
