// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the tmpl configuration file.
// Loaded from <user config dir>/tmpl/config.yaml.
type Config struct {
	// StoreDir is the directory holding spec files.
	// Env: TMPL_STORE_DIR, Default: <XDG data home>/tmpl
	StoreDir string `mapstructure:"storeDir" yaml:"storeDir,omitempty"`

	// Editor is the command used by new and edit. Overrides EDITOR.
	// Env: TMPL_EDITOR
	Editor string `mapstructure:"editor" yaml:"editor,omitempty"`

	// Engine is the template engine: "jinja" or "go".
	// Env: TMPL_ENGINE, Default: jinja
	Engine string `mapstructure:"engine" yaml:"engine,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultEngine is the template engine used when none is configured.
const DefaultEngine = "jinja"

// DefaultConfig returns a Config with all default values populated.
// Used by `tmpl config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		StoreDir: DefaultStoreDir(),
		Engine:   DefaultEngine,
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// ResolvedValue is a configuration value together with where it came from.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	StoreDir   ResolvedValue
	Editor     ResolvedValue
	Engine     ResolvedValue
}

// Values returns the resolved values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.StoreDir, r.Editor, r.Engine}
}
