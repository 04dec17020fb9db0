package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for themecfg settings.
const envPrefix = "THEMECFG"

// Loader reads the settings file and overlays environment variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// "file" is not bound here; ResolveThemeFile reads THEMECFG_FILE.
	_ = v.BindEnv("output", "THEMECFG_OUTPUT")
	_ = v.BindEnv("strict", "THEMECFG_STRICT")
	_ = v.BindEnv("contentRoot", "THEMECFG_CONTENT_ROOT")
	_ = v.BindEnv("log.timestamps", "THEMECFG_LOG_TIMESTAMPS")

	defaults := DefaultConfig()
	v.SetDefault("output", defaults.Output)

	return &Loader{v: v}
}

// Load reads settings from configFile. A missing file is not an error;
// defaults and environment variables still apply. Environment variables
// take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	if expandedPath != "" {
		l.v.SetConfigFile(expandedPath)
		if filepath.Ext(expandedPath) == "" {
			l.v.SetConfigType("yaml")
		}

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ConfigFileUsed returns the settings file viper read, or "" if none.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}
