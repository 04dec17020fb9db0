// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp display. nil means on.
	// Verbose forces timestamps on regardless.
	Timestamps *bool

	// Writer is the log destination. nil means stderr.
	Writer io.Writer
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// DocumentLogger returns a child logger prefixed with a document path, so
// concurrent vet runs stay attributable.
func DocumentLogger(path string) *log.Logger {
	return logger.WithPrefix(StyleNoun.Render(path))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

