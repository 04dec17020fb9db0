package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/output"
)

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 150 * time.Millisecond

// NewWatchCmd creates the watch command.
func NewWatchCmd(cfg *GlobalConfig) *cobra.Command {
	var checks checkFlags

	c := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-run vet whenever the document changes",
		Long: `Vet a theme document, then vet it again every time it is written, until
interrupted. Failures are reported but do not stop the watch.

Arguments:
  file    Theme document (default: --file, THEMECFG_FILE or tailwind.config.yaml)

Examples:
  themecfg watch
  themecfg watch site/tailwind.config.yaml --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts := checks.options(c, cfg.Settings)
			opts.jobs = 1

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, c.OutOrStdout(), cfg.documentArg(args), opts)
		},
	}

	checks.addTo(c)

	return c
}

// runWatch vets path once, then again after every relevant change, until
// ctx is done.
func runWatch(ctx context.Context, w io.Writer, path string, opts vetOptions) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch the directory.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return oerrors.NewNotFoundError("cannot watch directory", dir, "")
	}

	vetOnce := func() {
		if err := runVet(ctx, w, []string{path}, opts); err != nil {
			var exitErr *oerrors.ExitError
			if !errors.As(err, &exitErr) || !exitErr.Printed {
				output.Error("vet failed", "error", err)
				return
			}
			output.Debug("vet finished", "result", oerrors.ExitCodeName(exitErr.Code))
		}
	}

	output.Info("watching for changes", "path", path)
	vetOnce()

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			output.Info("watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantEvent(event, abs) {
				continue
			}
			output.Debug("change detected", "path", event.Name, "op", event.Op.String())
			debounce = time.After(watchDebounce)
		case <-debounce:
			debounce = nil
			vetOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			output.Warn("watch error", "error", err)
		}
	}
}

// isRelevantEvent reports whether event changes the watched document.
func isRelevantEvent(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
