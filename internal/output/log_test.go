package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	logger.Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	logger.Info("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	logger.Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel(), "verbose should set debug level")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel(), "default should be info level")

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestHelpers_WriteKeyvals(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})

	Info("loaded", "path", "tailwind.config.yaml")
	Warn("glob matches nothing", "glob", "./app/static/js/**/*.js")
	Error("validation failed", "errors", 2)

	out := buf.String()
	assert.Contains(t, out, "path=tailwind.config.yaml")
	assert.Contains(t, out, "glob matches nothing")
	assert.Contains(t, out, "errors=2")
}

func TestDocumentLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	docLog := DocumentLogger("site/tailwind.config.yaml")

	assert.NotNil(t, docLog)
	assert.Contains(t, docLog.GetPrefix(), "site/tailwind.config.yaml")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
