package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "y", input: "y\n", def: false, want: true},
		{name: "n", input: "n\n", def: true, want: false},
		{name: "yes", input: "yes\n", def: false, want: true},
		{name: "no", input: "no\n", def: true, want: false},
		{name: "uppercase", input: "YES\n", def: false, want: true},
		{name: "surrounding space", input: "  n \n", def: true, want: false},
		{name: "empty uses default false", input: "\n", def: false, want: false},
		{name: "empty uses default true", input: "\n", def: true, want: true},
		{name: "eof uses default", input: "", def: true, want: true},
		{name: "answer without newline", input: "y", def: false, want: true},
		{name: "windows newline", input: "y\r\n", def: false, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := New(strings.NewReader(tt.input), &out).Confirm("Test?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var out bytes.Buffer
	_, err := New(strings.NewReader("y\n"), &out).Confirm("Remove demo", false)
	require.NoError(t, err)
	assert.Equal(t, "Remove demo (y/N): ", out.String())

	out.Reset()
	_, err = New(strings.NewReader("y\n"), &out).Confirm("Continue", true)
	require.NoError(t, err)
	assert.Equal(t, "Continue (Y/n): ", out.String())
}

func TestConfirm_AsksAgainOnInvalidAnswer(t *testing.T) {
	var out bytes.Buffer
	got, err := New(strings.NewReader("maybe\nyes\n"), &out).Confirm("Test?", false)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "Test? (y/N): Please answer 'y' or 'n'\nTest? (y/N): ", out.String())
}

func TestConfirm_SequentialQuestionsShareInput(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("y\nn\n"), &out)

	first, err := p.Confirm("one", false)
	require.NoError(t, err)
	second, err := p.Confirm("two", true)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConfirm_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := New(failingReader{}, &out).Confirm("Test?", false)
	assert.ErrorIs(t, err, oerrors.ErrPrompt)
}

func TestAlways(t *testing.T) {
	got, err := Always(true).Confirm("anything", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Always(false).Confirm("anything", true)
	require.NoError(t, err)
	assert.False(t, got)
}
