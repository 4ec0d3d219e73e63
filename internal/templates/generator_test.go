package templates

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/specs"
	"github.com/mcbunkus/tmpl/internal/variables"
)

// stubEngine echoes the body, failing for bodies registered in fail.
type stubEngine struct {
	fail     map[string]error
	rendered []string
}

func (s *stubEngine) Render(id, body string, _ map[string]any) (string, error) {
	s.rendered = append(s.rendered, id)
	if err, ok := s.fail[body]; ok {
		return "", err
	}
	return strings.ToUpper(body), nil
}

func specWith(templates ...specs.Template) *specs.Spec {
	spec := specs.NewSpec()
	spec.Variables["name"] = specs.String("testing")
	spec.Templates = templates
	return spec
}

func TestGenerator_WritesInOrder(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	engine := &stubEngine{}

	spec := specWith(
		specs.Template{Path: "b.txt", Body: "second"},
		specs.Template{Path: "nested/dir/a.txt", Body: "first"},
	)

	result, err := NewGenerator(engine, GenerateOptions{WorkDir: dir, Out: &out}).Generate("demo", spec, spec.Variables)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.txt", "nested/dir/a.txt"}, result.Files)
	assert.Equal(t, []string{"b.txt", "nested/dir/a.txt"}, engine.rendered)
	assert.Equal(t, "b.txt\nnested/dir/a.txt\n", out.String())

	data, err := os.ReadFile(filepath.Join(dir, "nested", "dir", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "FIRST", string(data))
}

func TestGenerator_OverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("old"), 0o644))

	spec := specWith(specs.Template{Path: "a.txt", Body: "new"})
	_, err := NewGenerator(&stubEngine{}, GenerateOptions{WorkDir: dir}).Generate("demo", spec, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "NEW", string(data))
}

func TestGenerator_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	boom := errors.New("boom")
	engine := &stubEngine{fail: map[string]error{"bad": boom}}

	spec := specWith(
		specs.Template{Path: "broken.txt", Body: "bad"},
		specs.Template{Path: "good.txt", Body: "good"},
	)

	result, err := NewGenerator(engine, GenerateOptions{WorkDir: dir, Out: &out}).Generate("demo", spec, nil)
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	require.Len(t, genErr.Failures, 1)
	assert.Equal(t, "broken.txt", genErr.Failures[0].Path)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "The following errors occurred while generating demo\n\tbroken.txt: boom", err.Error())

	assert.Equal(t, []string{"good.txt"}, result.Files)
	assert.Equal(t, "good.txt\n", out.String())
	assert.FileExists(t, filepath.Join(dir, "good.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "broken.txt"))
}

func TestGenerator_WriteFailureCollected(t *testing.T) {
	dir := t.TempDir()
	// A file where a directory is needed makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocker"), nil, 0o644))

	spec := specWith(
		specs.Template{Path: "blocker/child.txt", Body: "x"},
		specs.Template{Path: "ok.txt", Body: "y"},
	)

	result, err := NewGenerator(&stubEngine{}, GenerateOptions{WorkDir: dir}).Generate("demo", spec, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)
	assert.Equal(t, []string{"ok.txt"}, result.Files)
}

func TestGenerator_UnsafePathIsFatal(t *testing.T) {
	dir := t.TempDir()
	engine := &stubEngine{}

	spec := specWith(
		specs.Template{Path: "first.txt", Body: "x"},
		specs.Template{Path: "../escape.txt", Body: "y"},
		specs.Template{Path: "never.txt", Body: "z"},
	)

	result, err := NewGenerator(engine, GenerateOptions{WorkDir: dir}).Generate("demo", spec, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrInvalidPath)

	var genErr *GenerationError
	assert.False(t, errors.As(err, &genErr))
	assert.Equal(t, []string{"first.txt"}, result.Files)
	assert.NoFileExists(t, filepath.Join(dir, "never.txt"))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "escape.txt"))
}

func TestGenerator_AbsolutePathIsFatal(t *testing.T) {
	spec := specWith(specs.Template{Path: "/etc/passwd", Body: "x"})
	_, err := NewGenerator(&stubEngine{}, GenerateOptions{WorkDir: t.TempDir()}).Generate("demo", spec, nil)
	assert.ErrorIs(t, err, oerrors.ErrInvalidPath)
}

func TestGenerator_DryRun(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	spec := specWith(specs.Template{Path: "a.txt", Body: "x"})
	result, err := NewGenerator(&stubEngine{}, GenerateOptions{WorkDir: dir, DryRun: true, Out: &out}).Generate("demo", spec, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, result.Files)
	assert.Equal(t, "a.txt\n", out.String())
	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
}

func TestGenerator_MissingWorkDir(t *testing.T) {
	spec := specWith(specs.Template{Path: "a.txt", Body: "x"})
	_, err := NewGenerator(&stubEngine{}, GenerateOptions{WorkDir: filepath.Join(t.TempDir(), "missing")}).Generate("demo", spec, nil)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestGenerator_EndToEnd(t *testing.T) {
	spec := specWith(specs.Template{Path: "README.md", Body: "Hello, {{ name }}"})

	tests := []struct {
		name      string
		overrides []string
		want      string
	}{
		{name: "defaults", overrides: nil, want: "Hello, testing"},
		{name: "override", overrides: []string{"name", "bill"}, want: "Hello, bill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			vars := variables.Merge(spec.Variables, tt.overrides)

			_, err := NewGenerator(NewJinjaEngine(), GenerateOptions{WorkDir: dir}).Generate("demo", spec, vars)
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(dir, "README.md"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestGenerator_EndToEndRenderFailure(t *testing.T) {
	dir := t.TempDir()
	spec := specWith(
		specs.Template{Path: "broken.md", Body: "{% if %}"},
		specs.Template{Path: "README.md", Body: "Hello, {{ name }}"},
	)

	_, err := NewGenerator(NewJinjaEngine(), GenerateOptions{WorkDir: dir}).Generate("demo", spec, spec.Variables)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrTemplateSyntax)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, testing", string(data))
}
