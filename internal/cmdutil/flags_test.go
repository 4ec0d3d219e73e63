package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenFlags_AddTo(t *testing.T) {
	var gf GenFlags
	cmd := &cobra.Command{Use: "test"}
	gf.AddTo(cmd)

	optionFlag := cmd.Flags().Lookup("option")
	require.NotNil(t, optionFlag)
	assert.Equal(t, "o", optionFlag.Shorthand)
	assert.Equal(t, "stringArray", optionFlag.Value.Type())

	workdirFlag := cmd.Flags().Lookup("workdir")
	require.NotNil(t, workdirFlag)
	assert.Equal(t, "c", workdirFlag.Shorthand)
	assert.Equal(t, "", workdirFlag.DefValue)

	engineFlag := cmd.Flags().Lookup("engine")
	require.NotNil(t, engineFlag)
	assert.Equal(t, "", engineFlag.DefValue)

	dryRunFlag := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "false", dryRunFlag.DefValue)
}

func TestGenFlags_Parse(t *testing.T) {
	var gf GenFlags
	cmd := &cobra.Command{Use: "test"}
	gf.AddTo(cmd)

	require.NoError(t, cmd.ParseFlags([]string{"-o", "name=bill", "--option", "count=3", "-c", "/tmp/out", "--engine", "go", "--dry-run"}))

	assert.Equal(t, []string{"name=bill", "count=3"}, gf.Options)
	assert.Equal(t, "/tmp/out", gf.WorkDir)
	assert.Equal(t, "go", gf.Engine)
	assert.True(t, gf.DryRun)
}

func TestConfirmFlags_AddTo(t *testing.T) {
	var cf ConfirmFlags
	cmd := &cobra.Command{Use: "test"}
	cf.AddTo(cmd)

	yesFlag := cmd.Flags().Lookup("yes")
	require.NotNil(t, yesFlag)
	assert.Equal(t, "y", yesFlag.Shorthand)

	require.NoError(t, cmd.ParseFlags([]string{"-y"}))
	assert.True(t, cf.Yes)
}

func TestResolveWorkDir(t *testing.T) {
	assert.Equal(t, ".", ResolveWorkDir(""))
	assert.Equal(t, "out", ResolveWorkDir("out"))
}
