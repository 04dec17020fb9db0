package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lensfolio/themecfg/internal/config"
)

// checkFlags holds the flags shared by commands that vet documents
// (vet, watch).
type checkFlags struct {
	Strict       bool
	CheckContent bool
	Root         string
}

// addTo registers the check flags on the given cobra command.
func (f *checkFlags) addTo(c *cobra.Command) {
	c.Flags().BoolVar(&f.Strict, "strict", false,
		"Treat lint warnings as failures (env: THEMECFG_STRICT)")
	c.Flags().BoolVar(&f.CheckContent, "check-content", false,
		"Warn about content globs that match no files")
	c.Flags().StringVar(&f.Root, "root", "",
		"Directory content globs are matched against (env: THEMECFG_CONTENT_ROOT, default: the document's directory)")
}

// options resolves the flags against the settings file: an explicit flag
// wins, then the settings value.
func (f *checkFlags) options(c *cobra.Command, settings *config.Config) vetOptions {
	opts := vetOptions{
		strict:       f.Strict,
		checkContent: f.CheckContent,
		root:         f.Root,
	}
	if settings == nil {
		return opts
	}
	if !c.Flags().Changed("strict") {
		opts.strict = settings.Strict
	}
	if opts.root == "" {
		opts.root = settings.ContentRoot
	}
	return opts
}
