package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// appName names the per-application directories.
const appName = "tmpl"

// Paths contains standard filesystem paths for tmpl.
type Paths struct {
	// ConfigFile is the path to the config file (<XDG config home>/tmpl/config.yaml).
	ConfigFile string

	// StoreDir is the default spec store (<XDG data home>/tmpl).
	StoreDir string
}

// DefaultPaths returns the default paths for tmpl.
func DefaultPaths() *Paths {
	return &Paths{
		ConfigFile: filepath.Join(xdg.ConfigHome, appName, "config.yaml"),
		StoreDir:   filepath.Join(xdg.DataHome, appName),
	}
}

// DefaultStoreDir returns the default spec store directory.
func DefaultStoreDir() string {
	return DefaultPaths().StoreDir
}

// GetConfigFile returns the config file path.
// If TMPL_CONFIG is set, it takes precedence.
func GetConfigFile() string {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath
	}
	return DefaultPaths().ConfigFile
}

// EnsureStoreDir creates the store directory if it doesn't exist.
func EnsureStoreDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	_, err := os.Stat(ExpandTilde(configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
