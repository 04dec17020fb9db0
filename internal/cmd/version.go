package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show themecfg version information.

Displays:
  - themecfg version, build date and git commit
  - Go version
  - CUE SDK version used for .cue documents and the embedded schema`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			switch cfg.Output {
			case output.FormatJSON:
				return writeJSON(c.OutOrStdout(), info)
			case output.FormatYAML:
				return writeYAML(c.OutOrStdout(), info)
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), info.String())
			return err
		},
	}
}
