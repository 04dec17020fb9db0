package config

import (
	"os"
	"sort"

	"github.com/lensfolio/themecfg/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the settings file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records a resolved setting, where it came from, and the
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// candidate is one precedence level.
type candidate struct {
	source ConfigSource
	value  string
}

// resolve picks the first non-empty candidate and records every other
// non-empty candidate after it as shadowed.
func resolve(key string, candidates ...candidate) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
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

// ResolveConfigPath resolves the settings file path using precedence:
// (1) --config flag, (2) THEMECFG_CONFIG env, (3) ~/.themecfg/config.yaml
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{Key: "config"}, err
	}

	return resolve("config",
		candidate{SourceFlag, flagValue},
		candidate{SourceEnv, os.Getenv(EnvConfig)},
		candidate{SourceDefault, paths.ConfigFile},
	), nil
}

// ResolveThemeFile resolves the theme document path using precedence:
// (1) --file flag, (2) THEMECFG_FILE env, (3) settings file, (4) DefaultThemeFile
func ResolveThemeFile(flagValue, configValue string) ResolvedValue {
	return resolve("file",
		candidate{SourceFlag, flagValue},
		candidate{SourceEnv, os.Getenv(EnvFile)},
		candidate{SourceConfig, configValue},
		candidate{SourceDefault, DefaultThemeFile},
	)
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)

		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
