package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	enabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithSpinnerEnabled forces the spinner on or off. By default it is shown
// only when stdout is a terminal.
func WithSpinnerEnabled(enabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.enabled = enabled
	}
}

// RunWithSpinner executes an action with a spinner and returns the action's
// error. Without a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title:   "Working...",
		enabled: IsTTY(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.enabled {
		return action()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	var actionErr error
	done := false
	s := spinner.New().Title(cfg.title).Action(func() {
		select {
		case <-ctx.Done():
		case actionErr = <-errCh:
			done = true
		}
	})

	if err := s.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	if done {
		return actionErr
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
