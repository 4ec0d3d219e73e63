package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables read by tmpl.
const (
	envPrefix     = "TMPL"
	EnvConfig     = "TMPL_CONFIG"
	EnvStoreDir   = "TMPL_STORE_DIR"
	EnvEditor     = "TMPL_EDITOR"
	EnvEngine     = "TMPL_ENGINE"
	EnvTimestamps = "TMPL_LOG_TIMESTAMPS"
)

// Loader handles loading and merging configuration from the config file and
// the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("storeDir", EnvStoreDir)
	_ = v.BindEnv("editor", EnvEditor)
	_ = v.BindEnv("engine", EnvEngine)
	_ = v.BindEnv("log.timestamps", EnvTimestamps)

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, the default config file path is used.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = GetConfigFile()
	}

	l.v.SetConfigFile(ExpandTilde(configFile))
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.StoreDir = ExpandTilde(cfg.StoreDir)
	return &cfg, nil
}
