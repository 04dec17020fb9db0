package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base := Tokens{
		FontFamily: map[string][]string{
			"sans": {"ui-sans-serif", "sans-serif"},
			"mono": {"ui-monospace", "monospace"},
		},
		Colors: map[string]string{
			"black": "#000000",
			"white": "#ffffff",
		},
	}
	ext := Tokens{
		FontFamily: map[string][]string{
			"sans": {"Inter", "sans-serif"},
		},
		Colors: map[string]string{
			"white":       "#fafafa",
			"brandAccent": "#DDAA77",
		},
	}

	merged := Merge(base, ext)

	t.Run("extension wins on collision", func(t *testing.T) {
		assert.Equal(t, []string{"Inter", "sans-serif"}, merged.FontFamily["sans"])
		assert.Equal(t, "#fafafa", merged.Colors["white"])
	})

	t.Run("unlisted base keys are preserved", func(t *testing.T) {
		assert.Equal(t, []string{"ui-monospace", "monospace"}, merged.FontFamily["mono"])
		assert.Equal(t, "#000000", merged.Colors["black"])
	})

	t.Run("new keys are added", func(t *testing.T) {
		assert.Equal(t, "#DDAA77", merged.Colors["brandAccent"])
		assert.Len(t, merged.Colors, 3)
		assert.Len(t, merged.FontFamily, 2)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		assert.Equal(t, "#ffffff", base.Colors["white"])
		assert.Equal(t, []string{"ui-sans-serif", "sans-serif"}, base.FontFamily["sans"])
		assert.NotContains(t, base.Colors, "brandAccent")
	})

	t.Run("result does not alias the extension", func(t *testing.T) {
		merged.FontFamily["sans"][0] = "Roboto"
		assert.Equal(t, "Inter", ext.FontFamily["sans"][0])
	})
}

func TestMerge_EmptyExtension(t *testing.T) {
	base := BaseTheme()
	merged := Merge(base, Tokens{})

	assert.Equal(t, base, merged)
}

func TestResolve_Project(t *testing.T) {
	palette := Resolve(Project())
	base := BaseTheme()

	assert.Equal(t, []string{"Inter", "sans-serif"}, palette.FontFamily["sans"])
	assert.Equal(t, base.FontFamily["serif"], palette.FontFamily["serif"])
	assert.Equal(t, "#DDAA77", palette.Colors["brandAccent"])
	assert.Equal(t, "#000000", palette.Colors["black"])
	assert.Len(t, palette.Colors, len(base.Colors)+6)
}

func TestResolve_Nil(t *testing.T) {
	assert.Equal(t, BaseTheme(), Resolve(nil))
}

func TestOverrides(t *testing.T) {
	overrides := Overrides(BaseTheme(), Project().Theme.Extend)

	require.Len(t, overrides, 7)

	sans := overrides[0]
	assert.Equal(t, "fontFamily", sans.Group)
	assert.Equal(t, "sans", sans.Key)
	assert.Equal(t, ChangeOverridden, sans.Change)
	assert.Equal(t, "Inter, sans-serif", sans.Value)
	assert.Contains(t, sans.Base, `"Apple Color Emoji"`)

	for _, o := range overrides[1:] {
		assert.Equal(t, "colors", o.Group)
		assert.Equal(t, ChangeAdded, o.Change)
		assert.Empty(t, o.Base)
	}
	assert.Equal(t, "brandAccent", overrides[1].Key)
	assert.Equal(t, "brandSidebar", overrides[6].Key)
}

func TestFormatFontStack(t *testing.T) {
	assert.Equal(t, "Inter, sans-serif", FormatFontStack([]string{"Inter", "sans-serif"}))
	assert.Equal(t, `"Times New Roman", serif`, FormatFontStack([]string{"Times New Roman", "serif"}))
	assert.Equal(t, "", FormatFontStack(nil))
}
