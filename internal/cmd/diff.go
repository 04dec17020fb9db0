package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/theme"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(cfg *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Show a YAML-aware diff",
		Long: `Show a structural diff between two theme documents, or between the base
theme and the palette a document resolves to. Documents may use different
formats; key order is not a difference.

Arguments:
  from    Theme document (default: --file, THEMECFG_FILE or tailwind.config.yaml)
  to      Second theme document. Without it, the base theme is compared with
          the resolved palette of "from".

Examples:
  # What does the project document change in the base theme?
  themecfg diff

  # Compare two documents
  themecfg diff tailwind.config.yaml tailwind.config.next.toml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			from := cfg.documentArg(args)
			if len(args) == 2 {
				return runDiffDocuments(c.OutOrStdout(), from, args[1])
			}
			return runDiffPalette(c.OutOrStdout(), from)
		},
	}

	return c
}

// runDiffPalette compares the base theme with the resolved palette.
func runDiffPalette(w io.Writer, path string) error {
	doc, err := loadValid(path)
	if err != nil {
		return err
	}

	from, err := toDiffInput("base theme", theme.BaseTheme())
	if err != nil {
		return err
	}
	to, err := toDiffInput(path+" (resolved)", theme.Resolve(doc.Config))
	if err != nil {
		return err
	}

	return writeDiff(w, from, to)
}

// runDiffDocuments compares two documents field by field.
func runDiffDocuments(w io.Writer, fromPath, toPath string) error {
	docs := make([]*theme.Document, 0, 2)
	for _, path := range []string{fromPath, toPath} {
		doc, err := theme.Load(path)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}
		docs = append(docs, doc)
	}

	from, err := toDiffInput(fromPath, docs[0].Config)
	if err != nil {
		return err
	}
	to, err := toDiffInput(toPath, docs[1].Config)
	if err != nil {
		return err
	}

	return writeDiff(w, from, to)
}

// toDiffInput renders v as YAML through its json tags.
func toDiffInput(name string, v any) (output.DiffInput, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return output.DiffInput{}, fmt.Errorf("encoding %s: %w", name, err)
	}
	return output.DiffInput{Name: name, YAML: data}, nil
}

func writeDiff(w io.Writer, from, to output.DiffInput) error {
	diff, err := output.DiffYAML(from, to, output.IsTTY())
	if err != nil {
		return err
	}

	if diff == "" {
		_, err = fmt.Fprintln(w, "No differences.")
		return err
	}

	output.Debug("diff computed", "from", from.Name, "to", to.Name)
	_, err = fmt.Fprintln(w, diff)
	return err
}
