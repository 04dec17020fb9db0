package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/themecfg/internal/config"
	oerrors "github.com/lensfolio/themecfg/internal/errors"
	"github.com/lensfolio/themecfg/internal/testutil"
	"github.com/lensfolio/themecfg/internal/theme"
)

// executeCmd runs the root command with args against an empty settings
// file and returns what it wrote to stdout.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateEnv(t)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// writeDoc writes cfg to dir/name in the format implied by name.
func writeDoc(t *testing.T, dir, name string, cfg *theme.ThemeConfig) string {
	t.Helper()
	format, err := theme.FormatFromPath(name)
	require.NoError(t, err)
	data, err := theme.Marshal(cfg, format)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.Code, "exit code")
	return exitErr
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	assert.Equal(t, "themecfg", root.Use)
	for _, name := range []string{"config", "file", "output", "verbose", "timestamps"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag %s", name)
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"vet", "init", "resolve", "diff", "convert", "watch", "version"})
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	_, err := executeCmd(t, "version", "-o", "dir")
	requireExitCode(t, err, oerrors.ExitGeneralError)
}

func TestRoot_SettingsFileSuppliesDocument(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "site.yaml", theme.Project())
	settings := testutil.WriteFile(t, dir, "config.yaml", "file: "+doc+"\noutput: json\n")

	out, err := executeCmd(t, "--config", settings, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, `"brandAccent": "#DDAA77"`)
}

func TestRoot_FileFlagBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	good := writeDoc(t, dir, "good.yaml", theme.Project())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"vet", "--file", good})
	testutil.IsolateEnv(t)
	t.Setenv(config.EnvFile, filepath.Join(dir, "missing.yaml"))

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "1 document(s) valid")
}

func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := executeCmd(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "themecfg:")
		assert.Contains(t, out, "CUE:")
	})

	t.Run("json", func(t *testing.T) {
		out, err := executeCmd(t, "version", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"goVersion"`)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := executeCmd(t, "version", "extra")
		assert.Error(t, err)
	})
}

func TestInit(t *testing.T) {
	t.Run("writes the project document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tailwind.config.yaml")

		out, err := executeCmd(t, "init", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Created")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Check with: themecfg vet")

		doc, err := theme.Load(path)
		require.NoError(t, err)
		assert.Equal(t, theme.Project(), doc.Config)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site", "tailwind.config.json")

		_, err := executeCmd(t, "init", path)
		require.NoError(t, err)

		doc, err := theme.Load(path)
		require.NoError(t, err)
		assert.Equal(t, theme.Project(), doc.Config)
	})

	t.Run("refuses to overwrite without --force", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "tailwind.config.toml", "content = [\"a/*.html\"]\n")

		_, err := executeCmd(t, "init", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		var detail *oerrors.DetailError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, path, detail.Location)
		assert.Contains(t, detail.Hint, "--force")

		_, err = executeCmd(t, "init", path, "--force")
		require.NoError(t, err)

		doc, err := theme.Load(path)
		require.NoError(t, err)
		assert.Equal(t, theme.Project(), doc.Config)
	})

	t.Run("cannot write cue", func(t *testing.T) {
		_, err := executeCmd(t, "init", filepath.Join(t.TempDir(), "theme.cue"))
		requireExitCode(t, err, oerrors.ExitGeneralError)
	})
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	src := writeDoc(t, dir, "tailwind.config.yaml", theme.Project())

	t.Run("stdout", func(t *testing.T) {
		out, err := executeCmd(t, "convert", src, "--to", "json")
		require.NoError(t, err)

		doc, err := theme.Parse([]byte(out), theme.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, theme.Project(), doc.Config)
	})

	t.Run("write infers format", func(t *testing.T) {
		dst := filepath.Join(dir, "out.toml")

		out, err := executeCmd(t, "convert", src, "--write", dst)
		require.NoError(t, err)
		assert.Contains(t, out, "Wrote")

		doc, err := theme.Load(dst)
		require.NoError(t, err)
		assert.Equal(t, theme.Project(), doc.Config)
	})

	t.Run("defaults to yaml", func(t *testing.T) {
		json := writeDoc(t, dir, "in.json", theme.Project())

		out, err := executeCmd(t, "convert", json)
		require.NoError(t, err)
		assert.Contains(t, out, "brandAccent:")
		assert.Contains(t, out, "#DDAA77")
		assert.NotContains(t, out, "{")
	})

	t.Run("cue target", func(t *testing.T) {
		_, err := executeCmd(t, "convert", src, "--to", "cue")
		requireExitCode(t, err, oerrors.ExitGeneralError)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := executeCmd(t, "convert", filepath.Join(dir, "nope.yaml"))
		requireExitCode(t, err, oerrors.ExitNotFound)
	})

	t.Run("missing target directory keeps the cause", func(t *testing.T) {
		_, err := executeCmd(t, "convert", src, "--write", filepath.Join(dir, "no-such-dir", "out.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.NotErrorIs(t, err, oerrors.ErrPermission)
		assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
	})
}

func TestWriteFailure(t *testing.T) {
	denied := &fs.PathError{Op: "open", Path: "/ro/theme.yaml", Err: fs.ErrPermission}
	err := writeFailure("/ro/theme.yaml", denied)
	assert.ErrorIs(t, err, oerrors.ErrPermission)
	assert.Equal(t, oerrors.ExitPermissionDenied, oerrors.ExitCodeFromError(err))

	full := errors.New("no space left on device")
	err = writeFailure("/data/theme.yaml", full)
	assert.ErrorIs(t, err, full)
	assert.Contains(t, err.Error(), "/data/theme.yaml")
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestDiff(t *testing.T) {
	dir := t.TempDir()

	t.Run("base theme vs resolved palette", func(t *testing.T) {
		path := writeDoc(t, dir, "tailwind.config.yaml", theme.Project())

		out, err := executeCmd(t, "diff", path)
		require.NoError(t, err)
		assert.Contains(t, out, "brandAccent")
		assert.Contains(t, out, "Inter")
	})

	t.Run("same document in two formats", func(t *testing.T) {
		a := writeDoc(t, dir, "a.yaml", theme.Project())
		b := writeDoc(t, dir, "b.toml", theme.Project())

		out, err := executeCmd(t, "diff", a, b)
		require.NoError(t, err)
		assert.Contains(t, out, "No differences.")
	})

	t.Run("changed color", func(t *testing.T) {
		next := theme.Project()
		next.Theme.Extend.Colors["brandAccent"] = "#EEBB88"
		a := writeDoc(t, dir, "before.yaml", theme.Project())
		b := writeDoc(t, dir, "after.json", next)

		out, err := executeCmd(t, "diff", a, b)
		require.NoError(t, err)
		assert.Contains(t, out, "brandAccent")
		assert.Contains(t, out, "#EEBB88")
	})
}
