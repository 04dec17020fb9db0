// Package theme models the configuration document consumed by a CSS
// utility-class build tool: content globs, theme extensions and plugins.
package theme

import (
	"slices"
)

// ThemeConfig is the configuration document.
// It is loaded fresh for every invocation and never mutated after load.
type ThemeConfig struct {
	// Content lists glob patterns of source files the build tool scans for
	// class usage. Order carries no meaning and duplicates are harmless.
	Content []string `json:"content" yaml:"content" toml:"content"`

	// Theme holds the design tokens layered over the default theme.
	Theme Theme `json:"theme" yaml:"theme" toml:"theme"`

	// Plugins lists build-tool plugin references by name.
	Plugins []string `json:"plugins" yaml:"plugins" toml:"plugins"`
}

// Theme wraps the extension block. Only `extend` is recognized; replacing
// the default theme wholesale is not supported by the document format.
type Theme struct {
	Extend Tokens `json:"extend" yaml:"extend" toml:"extend"`
}

// Tokens is a set of design tokens. It is used both for the `extend` block
// of a document and for a fully resolved palette.
type Tokens struct {
	// FontFamily maps a font role (e.g. "sans") to a font stack.
	// The first entry is preferred, later entries are fallbacks.
	FontFamily map[string][]string `json:"fontFamily" yaml:"fontFamily" toml:"fontFamily"`

	// Colors maps a token name to a #RRGGBB hex string.
	Colors map[string]string `json:"colors" yaml:"colors" toml:"colors"`
}

// Clone returns a deep copy of the document.
func (c *ThemeConfig) Clone() *ThemeConfig {
	if c == nil {
		return nil
	}
	out := &ThemeConfig{
		Content: slices.Clone(c.Content),
		Theme:   Theme{Extend: c.Theme.Extend.Clone()},
		Plugins: slices.Clone(c.Plugins),
	}
	out.normalize()
	return out
}

// normalize replaces nil collections with empty ones so that documents
// compare equal regardless of the codec they were decoded by.
func (c *ThemeConfig) normalize() {
	if c.Content == nil {
		c.Content = []string{}
	}
	if c.Plugins == nil {
		c.Plugins = []string{}
	}
	c.Theme.Extend.normalize()
}

// Clone returns a deep copy of the token set.
func (t Tokens) Clone() Tokens {
	out := Tokens{
		FontFamily: make(map[string][]string, len(t.FontFamily)),
		Colors:     make(map[string]string, len(t.Colors)),
	}
	for role, stack := range t.FontFamily {
		out.FontFamily[role] = slices.Clone(stack)
	}
	for name, value := range t.Colors {
		out.Colors[name] = value
	}
	return out
}

func (t *Tokens) normalize() {
	if t.FontFamily == nil {
		t.FontFamily = map[string][]string{}
	}
	for role, stack := range t.FontFamily {
		if stack == nil {
			t.FontFamily[role] = []string{}
		}
	}
	if t.Colors == nil {
		t.Colors = map[string]string{}
	}
}

// ColorNames returns the color token names in sorted order.
func (t Tokens) ColorNames() []string {
	return sortedKeys(t.Colors)
}

// FontRoles returns the font roles in sorted order.
func (t Tokens) FontRoles() []string {
	return sortedKeys(t.FontFamily)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
