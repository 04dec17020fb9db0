// Package config provides settings loading and precedence resolution.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	// Env: THEMECFG_LOG_TIMESTAMPS
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the themecfg settings file.
// Loaded from ~/.themecfg/config.yaml; every field is optional.
type Config struct {
	// File is the default theme document when --file is not given.
	// Env: THEMECFG_FILE (resolved separately, see ResolveThemeFile)
	File string `mapstructure:"file" yaml:"file,omitempty"`

	// Output is the default output format for resolve.
	// Env: THEMECFG_OUTPUT, Default: "table"
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Strict turns lint warnings into vet failures.
	// Env: THEMECFG_STRICT
	Strict bool `mapstructure:"strict" yaml:"strict,omitempty"`

	// ContentRoot is the directory content globs are matched against.
	// Env: THEMECFG_CONTENT_ROOT, Default: the theme document's directory
	ContentRoot string `mapstructure:"contentRoot" yaml:"contentRoot,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Output: "table",
	}
}
