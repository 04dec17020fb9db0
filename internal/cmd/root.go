// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/lensfolio/themecfg/internal/config"
	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Settings is the loaded settings file with env overrides applied.
	Settings *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// File is the resolved theme document path.
	File string

	// Output is the resolved --output format.
	Output output.Format

	Verbose bool
}

// rootFlags are the raw persistent flag values.
type rootFlags struct {
	config     string
	file       string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for themecfg.
func NewRootCmd() *cobra.Command {
	cfg := &GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "themecfg",
		Short: "Theme configuration toolkit",
		Long: `themecfg validates, resolves and converts the theme configuration document
consumed by a CSS utility-class build tool: content globs, font and color
extensions, and plugins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to settings file (env: THEMECFG_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "Theme document (env: THEMECFG_FILE, default: "+config.DefaultThemeFile+")")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: table, yaml, json (env: THEMECFG_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewVetCmd(cfg))
	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewResolveCmd(cfg))
	rootCmd.AddCommand(NewDiffCmd(cfg))
	rootCmd.AddCommand(NewConvertCmd(cfg))
	rootCmd.AddCommand(NewWatchCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads settings, resolves the theme document and sets up
// logging.
func initializeGlobals(cmd *cobra.Command, cfg *GlobalConfig, flags *rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	settings, err := config.NewLoader().Load(configPath.Value)
	if err != nil {
		return &oerrors.ExitError{
			Err:  fmt.Errorf("loading settings from %s: %w", configPath.Value, err),
			Code: oerrors.ExitParseError,
		}
	}

	// Resolve timestamps: flag (if explicitly set) > settings > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if settings.Log.Timestamps != nil {
		logCfg.Timestamps = settings.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	outputValue := settings.Output
	if cmd.Flags().Changed("output") {
		outputValue = flags.output
	}
	format, err := output.ParseFormat(outputValue)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	file := config.ResolveThemeFile(flags.file, settings.File)
	config.LogResolvedValues(configPath, file)

	cfg.Settings = settings
	cfg.ConfigPath = configPath.Value
	cfg.File = file.Value
	cfg.Output = format
	cfg.Verbose = flags.verbose

	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"file", cfg.File,
		"output", cfg.Output,
	)

	return nil
}

// documentArg returns the first positional argument, or the resolved theme
// document when none was given.
func (c *GlobalConfig) documentArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.File
}

// writeFailure classifies an error from creating or writing path. Only a
// real permission failure maps to ExitPermissionDenied; anything else keeps
// its cause.
func writeFailure(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError("could not write "+path, map[string]string{"Path": path}, "")
	}
	return fmt.Errorf("could not write %s: %w", path, err)
}
