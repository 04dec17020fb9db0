package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/theme"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd(cfg *GlobalConfig) *cobra.Command {
	var explain bool

	c := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Print the merged palette",
		Long: `Print the palette the build tool sees: the base theme with the document's
font and color extensions merged in. Extension values replace base values on
a key collision; every other base token is kept.

Arguments:
  file    Theme document (default: --file, THEMECFG_FILE or tailwind.config.yaml)

Examples:
  # Show the palette with color swatches
  themecfg resolve

  # Emit the palette as JSON
  themecfg resolve -o json

  # List only the tokens the document adds or overrides
  themecfg resolve --explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runResolve(c.OutOrStdout(), cfg.documentArg(args), cfg.Output, explain)
		},
	}

	c.Flags().BoolVar(&explain, "explain", false, "Show only the tokens added or overridden by the document")

	return c
}

func runResolve(w io.Writer, path string, format output.Format, explain bool) error {
	doc, err := loadValid(path)
	if err != nil {
		return err
	}

	base := theme.BaseTheme()
	ext := doc.Config.Theme.Extend
	overrides := theme.Overrides(base, ext)

	if explain {
		return writeOverrides(w, overrides, format)
	}
	return writePalette(w, theme.Merge(base, ext), overrides, format)
}

// loadValid loads path and rejects documents that fail validation.
func loadValid(path string) (*theme.Document, error) {
	doc, err := theme.Load(path)
	if err != nil {
		return nil, oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	if err := theme.Validate(doc.Config); err != nil {
		return nil, &oerrors.ExitError{
			Err:  fmt.Errorf("%s: %w", path, err),
			Code: oerrors.ExitValidationError,
		}
	}
	return doc, nil
}

func writePalette(w io.Writer, palette theme.Tokens, overrides []theme.Override, format output.Format) error {
	switch format {
	case output.FormatYAML:
		return writeYAML(w, palette)
	case output.FormatJSON:
		return writeJSON(w, palette)
	}

	source := make(map[string]theme.Change, len(overrides))
	for _, o := range overrides {
		source[o.Group+"."+o.Key] = o.Change
	}
	status := func(group, key string) string {
		change, ok := source[group+"."+key]
		if !ok {
			return output.StyleDim.Render("base")
		}
		return output.StatusStyle(string(change)).Render(string(change))
	}

	tbl := output.NewTable("GROUP", "TOKEN", "VALUE", "SOURCE")
	for _, role := range palette.FontRoles() {
		tbl.Row("fontFamily", role, theme.FormatFontStack(palette.FontFamily[role]), status("fontFamily", role))
	}
	for _, name := range palette.ColorNames() {
		tbl.Row("colors", name, output.Swatch(palette.Colors[name]), status("colors", name))
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func writeOverrides(w io.Writer, overrides []theme.Override, format output.Format) error {
	if overrides == nil {
		overrides = []theme.Override{}
	}

	switch format {
	case output.FormatYAML:
		return writeYAML(w, overrides)
	case output.FormatJSON:
		return writeJSON(w, overrides)
	}

	if len(overrides) == 0 {
		_, err := fmt.Fprintln(w, "The document does not extend the base theme.")
		return err
	}

	tbl := output.NewTable("GROUP", "TOKEN", "CHANGE", "BASE", "VALUE")
	for _, o := range overrides {
		value := o.Value
		baseValue := o.Base
		if o.Group == "colors" {
			value = output.Swatch(value)
			baseValue = output.Swatch(baseValue)
		}
		tbl.Row(o.Group, o.Key, output.StatusStyle(string(o.Change)).Render(string(o.Change)), baseValue, value)
	}

	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
