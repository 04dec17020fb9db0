package theme

import (
	"slices"
	"strings"
)

// Merge layers ext over base. Every base key is kept; on a key collision
// the extension value wins. Neither input is modified.
func Merge(base, ext Tokens) Tokens {
	out := base.Clone()
	for role, stack := range ext.FontFamily {
		out.FontFamily[role] = slices.Clone(stack)
	}
	for name, value := range ext.Colors {
		out.Colors[name] = value
	}
	return out
}

// Resolve returns the palette the build tool sees for cfg: the base theme
// with the document's extensions merged in.
func Resolve(cfg *ThemeConfig) Tokens {
	if cfg == nil {
		return BaseTheme()
	}
	return Merge(BaseTheme(), cfg.Theme.Extend)
}

// Change classifies what an extension did to a token.
type Change string

const (
	// ChangeAdded means the token is new to the base theme.
	ChangeAdded Change = "added"
	// ChangeOverridden means the token replaced a base theme value.
	ChangeOverridden Change = "overridden"
)

// Override records a single token contributed by an extension.
type Override struct {
	Group  string `json:"group" yaml:"group"`
	Key    string `json:"key" yaml:"key"`
	Change Change `json:"change" yaml:"change"`
	Base   string `json:"base,omitempty" yaml:"base,omitempty"`
	Value  string `json:"value" yaml:"value"`
}

// Overrides lists the tokens ext adds to or replaces in base, font families
// first, each group sorted by key.
func Overrides(base, ext Tokens) []Override {
	var out []Override

	for _, role := range ext.FontRoles() {
		o := Override{
			Group:  "fontFamily",
			Key:    role,
			Change: ChangeAdded,
			Value:  FormatFontStack(ext.FontFamily[role]),
		}
		if prev, ok := base.FontFamily[role]; ok {
			o.Change = ChangeOverridden
			o.Base = FormatFontStack(prev)
		}
		out = append(out, o)
	}

	for _, name := range ext.ColorNames() {
		o := Override{
			Group:  "colors",
			Key:    name,
			Change: ChangeAdded,
			Value:  ext.Colors[name],
		}
		if prev, ok := base.Colors[name]; ok {
			o.Change = ChangeOverridden
			o.Base = prev
		}
		out = append(out, o)
	}

	return out
}

// FormatFontStack renders a font stack the way it appears in CSS, quoting
// family names that contain spaces.
func FormatFontStack(stack []string) string {
	parts := make([]string, len(stack))
	for i, name := range stack {
		if strings.ContainsAny(name, " \t") {
			parts[i] = `"` + name + `"`
			continue
		}
		parts[i] = name
	}
	return strings.Join(parts, ", ")
}
