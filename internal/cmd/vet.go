package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/metrics"
	"github.com/lensfolio/themecfg/internal/output"
	"github.com/lensfolio/themecfg/internal/theme"
)

// defaultVetJobs bounds concurrent document checks.
const defaultVetJobs = 4

// vetOptions controls a vet run.
type vetOptions struct {
	strict       bool
	checkContent bool
	root         string
	metricsFile  string
	jobs         int
}

// vetResult is the outcome of vetting one document.
type vetResult struct {
	Path     string
	Errors   theme.ValidationErrors
	Warnings []theme.Warning
	// Err is a failure to load or check the document at all.
	Err      error
	Duration time.Duration
}

// failed reports whether the document fails the run.
func (r vetResult) failed(strict bool) bool {
	return r.Err != nil || len(r.Errors) > 0 || (strict && len(r.Warnings) > 0)
}

// exitCode maps the result to a process exit code.
func (r vetResult) exitCode(strict bool) int {
	switch {
	case r.Err != nil:
		return oerrors.ExitCodeFromError(r.Err)
	case r.failed(strict):
		return oerrors.ExitValidationError
	default:
		return oerrors.ExitSuccess
	}
}

// NewVetCmd creates the vet command.
func NewVetCmd(cfg *GlobalConfig) *cobra.Command {
	var (
		checks      checkFlags
		metricsFile string
		jobs        int
	)

	c := &cobra.Command{
		Use:   "vet [file...]",
		Short: "Validate theme documents",
		Long: `Validate one or more theme documents.

Each document is checked against the embedded schema (unknown keys, wrong
shapes), then validated (non-empty content, well-formed globs, #RRGGBB colors,
non-empty font stacks, unique plugins), then linted. Lint findings are
warnings unless --strict is given.

Arguments:
  file    Theme documents (default: --file, THEMECFG_FILE or tailwind.config.yaml)

Examples:
  # Validate the default document
  themecfg vet

  # Validate several documents, failing on warnings
  themecfg vet site/tailwind.config.yaml docs/tailwind.config.json --strict

  # Also check that every content glob matches files
  themecfg vet --check-content --root ./site`,
		RunE: func(c *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = []string{cfg.File}
			}
			opts := checks.options(c, cfg.Settings)
			opts.metricsFile = metricsFile
			opts.jobs = jobs
			return runVet(c.Context(), c.OutOrStdout(), files, opts)
		},
	}

	checks.addTo(c)
	c.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")
	c.Flags().IntVarP(&jobs, "jobs", "j", defaultVetJobs, "Documents checked concurrently")

	return c
}

// runVet checks every file, prints the results in input order and returns
// an ExitError when any document fails.
func runVet(ctx context.Context, w io.Writer, files []string, opts vetOptions) error {
	results, err := vetFiles(ctx, files, opts)
	if err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := writeVetMetrics(opts.metricsFile, results, opts.strict); err != nil {
			err = writeFailure(opts.metricsFile, err)
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}
		output.Debug("metrics written", "path", opts.metricsFile)
	}

	printVetResults(w, results, opts.strict)

	failed, code := 0, oerrors.ExitSuccess
	for _, r := range results {
		if !r.failed(opts.strict) {
			continue
		}
		failed++
		if code == oerrors.ExitSuccess {
			code = r.exitCode(opts.strict)
		}
	}

	if failed > 0 {
		summary := fmt.Sprintf("%d of %d document(s) failed", failed, len(results))
		fmt.Fprintln(w, output.StyleSummary.Render(summary))
		return &oerrors.ExitError{Err: errors.New(summary), Code: code, Printed: true}
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%d document(s) valid", len(results))))
	return nil
}

// vetFiles checks files concurrently. Results are indexed by input order.
func vetFiles(ctx context.Context, files []string, opts vetOptions) ([]vetResult, error) {
	results := make([]vetResult, len(files))

	jobs := opts.jobs
	if jobs < 1 {
		jobs = 1
	}

	check := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(jobs)

		for i, file := range files {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = vetFile(file, opts)
				return nil
			})
		}
		return g.Wait()
	}

	err := output.RunWithSpinner(ctx, check,
		output.WithTitle(fmt.Sprintf("Vetting %d documents...", len(files))),
		output.WithSpinnerEnabled(len(files) > 1 && output.IsTTY()),
	)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// vetFile runs every check on one document. Each call builds its own schema
// validator because a CUE context must not be shared between goroutines.
func vetFile(path string, opts vetOptions) vetResult {
	start := time.Now()
	result := vetResult{Path: path}
	log := output.DocumentLogger(path)

	doc, err := theme.Load(path)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := theme.Validate(doc.Config); err != nil {
		if !appendValidationErrors(&result.Errors, err) {
			result.Err = err
		}
	}

	validator, err := theme.NewSchemaValidator()
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	if err := validator.Validate(doc); err != nil {
		if !appendValidationErrors(&result.Errors, err) {
			result.Err = err
		}
	}

	result.Warnings = theme.Lint(doc.Config)

	if opts.checkContent {
		root := opts.root
		if root == "" {
			root = filepath.Dir(path)
		}
		matches, err := theme.CheckContent(root, doc.Config.Content)
		if err != nil {
			log.Warn("content check skipped", "error", err)
		} else {
			for _, m := range matches {
				log.Debug("content glob expanded", "glob", m.Pattern, "files", len(m.Files))
			}
			result.Warnings = append(result.Warnings, theme.ContentWarnings(matches)...)
		}
	}

	if len(result.Errors) == 0 {
		for _, o := range theme.Overrides(theme.BaseTheme(), doc.Config.Theme.Extend) {
			log.Debug("token "+string(o.Change), "group", o.Group, "key", o.Key, "value", o.Value)
		}
	}

	result.Duration = time.Since(start)
	log.Debug("vetted", "errors", len(result.Errors), "warnings", len(result.Warnings), "duration", result.Duration)
	return result
}

// appendValidationErrors appends err's findings to dst, skipping fields
// already reported. It returns false if err is not a ValidationErrors.
func appendValidationErrors(dst *theme.ValidationErrors, err error) bool {
	var verrs theme.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}

	reported := make(map[string]bool, len(*dst))
	for _, e := range *dst {
		reported[e.Field] = true
	}
	for _, e := range verrs {
		if reported[e.Field] {
			continue
		}
		*dst = append(*dst, e)
	}
	return true
}

// printVetResults writes one block per document.
func printVetResults(w io.Writer, results []vetResult, strict bool) {
	for _, r := range results {
		path := output.StyleNoun.Render(r.Path)

		switch {
		case r.Err != nil:
			fmt.Fprintln(w, output.FormatCross(output.StatusStyle(output.StatusInvalid).Render(output.StatusInvalid)+" "+path))
			fmt.Fprintln(w, "  "+r.Err.Error())
		case len(r.Errors) > 0:
			fmt.Fprintln(w, output.FormatCross(output.StatusStyle(output.StatusInvalid).Render(output.StatusInvalid)+" "+path))
			for _, e := range r.Errors {
				fmt.Fprintln(w, output.FormatFinding(e.Field, e.Message))
			}
		case strict && len(r.Warnings) > 0:
			fmt.Fprintln(w, output.FormatCross(output.StatusStyle(output.StatusInvalid).Render(output.StatusInvalid)+" "+path))
		case len(r.Warnings) > 0:
			fmt.Fprintln(w, output.FormatCheckmark(output.StatusStyle(output.StatusWarning).Render(output.StatusWarning)+" "+path))
		default:
			fmt.Fprintln(w, output.FormatCheckmark(output.StatusStyle(output.StatusValid).Render(output.StatusValid)+" "+path))
		}

		for _, warn := range r.Warnings {
			fmt.Fprintln(w, output.FormatFinding(warn.Field, output.StatusStyle(output.StatusWarning).Render(warn.Message)))
		}
	}
}

// writeVetMetrics records every result and writes the textfile. A result
// is invalid exactly when it fails the run.
func writeVetMetrics(path string, results []vetResult, strict bool) error {
	rec := metrics.NewRecorder()
	for _, r := range results {
		result := metrics.ResultValid
		switch {
		case r.Err != nil:
			result = metrics.ResultError
		case r.failed(strict):
			result = metrics.ResultInvalid
		}
		rec.ObserveFile(result, len(r.Errors), len(r.Warnings), r.Duration)
	}
	return rec.WriteTextfile(path)
}
