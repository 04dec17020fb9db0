package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfig overrides the settings file location.
	EnvConfig = "THEMECFG_CONFIG"

	// EnvFile names the theme document when --file is not given.
	EnvFile = "THEMECFG_FILE"

	// DefaultThemeFile is looked up in the working directory when nothing
	// else names a theme document.
	DefaultThemeFile = "tailwind.config.yaml"
)

// Paths contains standard filesystem paths for themecfg.
type Paths struct {
	// ConfigFile is the path to the settings file (~/.themecfg/config.yaml).
	ConfigFile string

	// HomeDir is the themecfg home directory (~/.themecfg).
	HomeDir string
}

// DefaultPaths returns the default paths for themecfg.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".themecfg")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
