package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/theme"
)

// convertOptions controls a convert run.
type convertOptions struct {
	to    string
	write string
}

// NewConvertCmd creates the convert command.
func NewConvertCmd(cfg *GlobalConfig) *cobra.Command {
	opts := convertOptions{}

	c := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a theme document",
		Long: `Re-encode a theme document as YAML, JSON or TOML. CUE documents can be read
but not written. The target format comes from --to, or from the extension of
--write, or defaults to YAML.

Arguments:
  file    Source document (default: --file, THEMECFG_FILE or tailwind.config.yaml)

Examples:
  # Print the document as JSON
  themecfg convert --to json

  # Turn a CUE document into TOML on disk
  themecfg convert theme.cue --write tailwind.config.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runConvert(c, cfg.documentArg(args), opts)
		},
	}

	c.Flags().StringVar(&opts.to, "to", "", "Target format: yaml, json, toml")
	c.Flags().StringVar(&opts.write, "write", "", "Write to this path instead of stdout")

	return c
}

// targetFormat picks the output format from the flags.
func (o convertOptions) targetFormat() (theme.Format, error) {
	switch {
	case o.to != "":
		return theme.ParseFormat(o.to)
	case o.write != "":
		return theme.FormatFromPath(o.write)
	default:
		return theme.FormatYAML, nil
	}
}

func runConvert(c *cobra.Command, path string, opts convertOptions) error {
	format, err := opts.targetFormat()
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}
	if !format.Writable() {
		return &oerrors.ExitError{
			Err:  fmt.Errorf("cannot write %s documents; use yaml, json or toml", format),
			Code: oerrors.ExitGeneralError,
		}
	}

	doc, err := theme.Load(path)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}

	data, err := theme.Marshal(doc.Config, format)
	if err != nil {
		return err
	}

	if opts.write == "" {
		_, err = c.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(opts.write, data, 0o644); err != nil {
		return writeFailure(opts.write, err)
	}
	output.Debug("document converted", "from", path, "to", opts.write, "format", format)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf("Wrote %s (%s)", output.StyleNoun.Render(opts.write), format)))
	return nil
}
