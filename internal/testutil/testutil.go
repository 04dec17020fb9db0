// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// settingsEnv lists the variables that change CLI behavior.
var settingsEnv = []string{
	"THEMECFG_FILE",
	"THEMECFG_OUTPUT",
	"THEMECFG_STRICT",
	"THEMECFG_CONTENT_ROOT",
	"THEMECFG_LOG_TIMESTAMPS",
}

// IsolateEnv clears every THEMECFG_* setting for the test and points
// THEMECFG_CONFIG at a settings file that does not exist, so the user's
// own settings never leak in.
func IsolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range settingsEnv {
		t.Setenv(name, "")
	}
	t.Setenv("THEMECFG_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

// WriteFile creates a file with the given content in the specified directory.
// name may contain slashes; parent directories are created.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTree creates each slash-separated file under root with placeholder
// markup, the way a template tree looks to a content scan.
func WriteTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		WriteFile(t, root, f, "<div></div>")
	}
}
