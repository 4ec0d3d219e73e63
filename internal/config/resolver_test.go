package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvEngine, "jinja")

	rv := resolve(resolveOptions{
		key:          "engine",
		flagValue:    "go",
		envVar:       EnvEngine,
		configValue:  "other",
		defaultValue: DefaultEngine,
	})

	assert.Equal(t, "go", rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, "jinja", rv.Shadowed[SourceEnv])
	assert.Equal(t, "other", rv.Shadowed[SourceConfig])
	assert.Equal(t, DefaultEngine, rv.Shadowed[SourceDefault])
}

func TestResolve_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvStoreDir, "/env/specs")

	rv := resolve(resolveOptions{
		key:         "storeDir",
		envVar:      EnvStoreDir,
		configValue: "/config/specs",
	})

	assert.Equal(t, "/env/specs", rv.Value)
	assert.Equal(t, SourceEnv, rv.Source)
	assert.Equal(t, "/config/specs", rv.Shadowed[SourceConfig])
	assert.NotContains(t, rv.Shadowed, SourceFlag)
}

func TestResolve_EnvSeenThroughConfigIsNotShadowed(t *testing.T) {
	t.Setenv(EnvEditor, "nano")

	rv := resolve(resolveOptions{key: "editor", envVar: EnvEditor, configValue: "nano"})

	assert.Equal(t, SourceEnv, rv.Source)
	assert.Empty(t, rv.Shadowed)
}

func TestResolve_ConfigFallback(t *testing.T) {
	t.Setenv(EnvEngine, "")

	rv := resolve(resolveOptions{key: "engine", envVar: EnvEngine, configValue: "go", defaultValue: DefaultEngine})

	assert.Equal(t, "go", rv.Value)
	assert.Equal(t, SourceConfig, rv.Source)
	assert.Equal(t, DefaultEngine, rv.Shadowed[SourceDefault])
}

func TestResolve_Default(t *testing.T) {
	t.Setenv(EnvEngine, "")

	rv := resolve(resolveOptions{key: "engine", envVar: EnvEngine, defaultValue: DefaultEngine})

	assert.Equal(t, DefaultEngine, rv.Value)
	assert.Equal(t, SourceDefault, rv.Source)
	assert.Empty(t, rv.Shadowed)
}

func TestResolve_NothingSet(t *testing.T) {
	rv := resolve(resolveOptions{key: "editor"})
	assert.Empty(t, rv.Value)
	assert.Empty(t, rv.Source)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "/env/config.yaml")

	rv := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})
	assert.Equal(t, "/flag/config.yaml", rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, "/env/config.yaml", rv.Shadowed[SourceEnv])
	assert.Equal(t, DefaultPaths().ConfigFile, rv.Shadowed[SourceDefault])

	rv = ResolveConfigPath(ResolveConfigPathOptions{})
	assert.Equal(t, "/env/config.yaml", rv.Value)
	assert.Equal(t, SourceEnv, rv.Source)
}

func TestResolveAll(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvStoreDir, "")
	t.Setenv(EnvEditor, "")
	t.Setenv(EnvEngine, "")
	t.Setenv("EDITOR", "vi")

	resolved := ResolveAll(ResolveAllOptions{
		StoreDirFlag: "/flag/specs",
		Config:       &Config{Engine: "go"},
	})

	assert.Equal(t, "/flag/specs", resolved.StoreDir.Value)
	assert.Equal(t, SourceFlag, resolved.StoreDir.Source)

	assert.Equal(t, "go", resolved.Engine.Value)
	assert.Equal(t, SourceConfig, resolved.Engine.Source)

	assert.Equal(t, "vi", resolved.Editor.Value)
	assert.Equal(t, SourceDefault, resolved.Editor.Source)

	assert.Equal(t, DefaultPaths().ConfigFile, resolved.ConfigPath.Value)
	assert.Equal(t, SourceDefault, resolved.ConfigPath.Source)
}

func TestResolveAll_EditorConfigBeatsEDITOR(t *testing.T) {
	t.Setenv(EnvEditor, "")
	t.Setenv("EDITOR", "vi")

	resolved := ResolveAll(ResolveAllOptions{Config: &Config{Editor: "code -w"}})

	assert.Equal(t, "code -w", resolved.Editor.Value)
	assert.Equal(t, SourceConfig, resolved.Editor.Source)
	assert.Equal(t, "vi", resolved.Editor.Shadowed[SourceDefault])
}

func TestResolveAll_NilConfig(t *testing.T) {
	t.Setenv(EnvStoreDir, "")
	t.Setenv(EnvEngine, "")

	resolved := ResolveAll(ResolveAllOptions{})
	assert.Equal(t, DefaultStoreDir(), resolved.StoreDir.Value)
	assert.Equal(t, DefaultEngine, resolved.Engine.Value)
}
