package config

import (
	"os"

	"github.com/mcbunkus/tmpl/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// resolveOptions describes the candidates for a single value.
type resolveOptions struct {
	key          string
	flagValue    string
	envVar       string
	configValue  string
	defaultValue string
}

// resolve picks a value using precedence: flag > env > config > default,
// recording every lower-precedence candidate that was set.
func resolve(opts resolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	if opts.envVar != "" {
		envValue = os.Getenv(opts.envVar)
	}
	// The loader overlays env on top of the file, so an equal config value
	// is the env value seen twice.
	configValue := opts.configValue
	if configValue == envValue {
		configValue = ""
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, opts.defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) TMPL_CONFIG env, (3) <XDG config home>/tmpl/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) ResolvedValue {
	rv := resolve(resolveOptions{
		key:          "config",
		flagValue:    opts.FlagValue,
		envVar:       EnvConfig,
		defaultValue: DefaultPaths().ConfigFile,
	})
	rv.Value = ExpandTilde(rv.Value)
	return rv
}

// ResolveAllOptions contains the flag values and loaded config used to
// resolve every setting.
type ResolveAllOptions struct {
	ConfigFlag   string
	StoreDirFlag string
	EngineFlag   string
	Config       *Config
}

// ResolveAll resolves every configuration value.
//
// The editor falls back to the EDITOR environment variable, reported as the
// default source.
func ResolveAll(opts ResolveAllOptions) *ResolvedConfig {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	storeDir := resolve(resolveOptions{
		key:          "storeDir",
		flagValue:    opts.StoreDirFlag,
		envVar:       EnvStoreDir,
		configValue:  cfg.StoreDir,
		defaultValue: DefaultStoreDir(),
	})
	storeDir.Value = ExpandTilde(storeDir.Value)

	return &ResolvedConfig{
		ConfigPath: ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag}),
		StoreDir:   storeDir,
		Editor: resolve(resolveOptions{
			key:          "editor",
			envVar:       EnvEditor,
			configValue:  cfg.Editor,
			defaultValue: os.Getenv("EDITOR"),
		}),
		Engine: resolve(resolveOptions{
			key:          "engine",
			flagValue:    opts.EngineFlag,
			envVar:       EnvEngine,
			configValue:  cfg.Engine,
			defaultValue: DefaultEngine,
		}),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
