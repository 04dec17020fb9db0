package output

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status   string
		wantFG   lipgloss.TerminalColor
		wantBold bool
	}{
		{status: StatusValid, wantFG: ColorGreen},
		{status: StatusAdded, wantFG: ColorGreen},
		{status: StatusWarning, wantFG: ColorYellow},
		{status: StatusChanged, wantFG: ColorYellow},
		{status: StatusInvalid, wantFG: ColorBoldRed, wantBold: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantFG, style.GetForeground())
			assert.Equal(t, tt.wantBold, style.GetBold())
		})
	}

	t.Run("unknown is unstyled", func(t *testing.T) {
		assert.Equal(t, "x", StatusStyle("mystery").Render("x"))
	})
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatCheckmark("valid: a.yaml"), "valid: a.yaml")
	assert.Contains(t, FormatCross("invalid: a.yaml"), "invalid: a.yaml")

	finding := FormatFinding("theme.extend.colors.brandAccent", "bad hex")
	assert.True(t, strings.HasPrefix(finding, "  "))
	assert.Contains(t, finding, "theme.extend.colors.brandAccent:")
	assert.Contains(t, finding, "bad hex")
}

func TestSwatch(t *testing.T) {
	assert.Contains(t, Swatch("#DDAA77"), "#DDAA77")
	assert.Equal(t, "red", Swatch("red"))
	assert.Equal(t, "#fff", Swatch("#fff"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"dir", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}

	assert.False(t, Format("dir").IsValid())
	assert.Equal(t, []string{"table", "yaml", "json"}, ValidFormats())
}

func TestTable(t *testing.T) {
	tbl := NewTable("TOKEN", "VALUE").
		Row("brandAccent", "#DDAA77").
		Row("brandBase", "#0f0f0f")

	out := tbl.String()
	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "TOKEN")
	assert.Contains(t, out, "brandAccent")
	assert.Contains(t, out, "#0f0f0f")
}

func TestDiffYAML(t *testing.T) {
	from := DiffInput{Name: "base", YAML: []byte("colors:\n  black: \"#000000\"\n  white: \"#ffffff\"\n")}

	t.Run("reports changed values", func(t *testing.T) {
		to := DiffInput{Name: "resolved", YAML: []byte("colors:\n  black: \"#000000\"\n  white: \"#fafafa\"\n")}

		diff, err := DiffYAML(from, to, false)
		require.NoError(t, err)
		assert.Contains(t, diff, "white")
		assert.Contains(t, diff, "#fafafa")
	})

	t.Run("key order is not a change", func(t *testing.T) {
		to := DiffInput{Name: "resolved", YAML: []byte("colors:\n  white: \"#ffffff\"\n  black: \"#000000\"\n")}

		diff, err := DiffYAML(from, to, false)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("both empty", func(t *testing.T) {
		diff, err := DiffYAML(DiffInput{Name: "a"}, DiffInput{Name: "b"}, false)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := DiffYAML(from, DiffInput{Name: "bad", YAML: []byte("colors: [")}, false)
		assert.Error(t, err)
	})
}

func TestRunWithSpinner_Disabled(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithSpinnerEnabled(false), WithTitle("Validating"))

	require.NoError(t, err)
	assert.True(t, called)

	want := errors.New("boom")
	err = RunWithSpinner(context.Background(), func() error { return want }, WithSpinnerEnabled(false))
	assert.ErrorIs(t, err, want)
}
