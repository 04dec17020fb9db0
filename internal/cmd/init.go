package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/theme"
)

// initHeader is prepended to formats that support comments.
const initHeader = "# Theme configuration for the CSS utility-class build tool.\n# Check with: themecfg vet\n"

// NewInitCmd creates the init command.
func NewInitCmd(cfg *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the project theme document",
		Long: `Write the project's theme document: two content globs, the Inter font stack
and the six brand colors, with no plugins.

The format follows the file extension (.yaml, .yml, .json, .toml).

Arguments:
  file    Destination (default: --file, THEMECFG_FILE or tailwind.config.yaml)

Examples:
  # Create tailwind.config.yaml in the current directory
  themecfg init

  # Create a TOML document, replacing any existing one
  themecfg init site/tailwind.config.toml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, cfg.documentArg(args), force)
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")

	return c
}

func runInit(c *cobra.Command, path string, force bool) error {
	format, err := theme.FormatFromPath(path)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if !format.Writable() {
		return &oerrors.ExitError{
			Err:  fmt.Errorf("cannot write %s documents; use .yaml, .json or .toml", format),
			Code: oerrors.ExitGeneralError,
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return oerrors.NewValidationError("theme document already exists", path, "", "Use --force to overwrite it.")
	}

	data, err := theme.Marshal(theme.Project(), format)
	if err != nil {
		return err
	}
	if format == theme.FormatYAML || format == theme.FormatTOML {
		data = append([]byte(initHeader), data...)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return writeFailure(dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return writeFailure(path, err)
	}

	output.Debug("theme document written", "path", path, "format", format)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Created "+output.StyleNoun.Render(path)))
	return nil
}
