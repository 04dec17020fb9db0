package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	oerrors "github.com/lensfolio/themecfg/internal/errors"
)

// hexColorRegex matches #RRGGBB color strings.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationError names one offending field of a document.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("theme validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// IsHexColor reports whether s is a #RRGGBB color string.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// Validate checks a document against the structural rules of the format.
// Findings are reported in a stable order: content, font families, colors,
// plugins, each keyed by sorted token name. An empty plugin list is valid.
func Validate(cfg *ThemeConfig) error {
	if cfg == nil {
		return ValidationErrors{{Field: "document", Message: "must not be empty"}}
	}

	var errs ValidationErrors
	errs = append(errs, validateContent(cfg.Content)...)
	errs = append(errs, validateFontFamily(cfg.Theme.Extend.FontFamily)...)
	errs = append(errs, validateColors(cfg.Theme.Extend.Colors)...)
	errs = append(errs, validatePlugins(cfg.Plugins)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateContent(globs []string) ValidationErrors {
	if len(globs) == 0 {
		return ValidationErrors{{
			Field:   "content",
			Message: "must list at least one glob, otherwise no classes are generated",
		}}
	}

	var errs ValidationErrors
	for i, glob := range globs {
		field := fmt.Sprintf("content[%d]", i)
		if strings.TrimSpace(glob) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty or whitespace only"})
			continue
		}
		if !doublestar.ValidatePattern(normalizeGlob(glob)) {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("invalid glob pattern %q", glob)})
		}
	}
	return errs
}

func validateFontFamily(families map[string][]string) ValidationErrors {
	var errs ValidationErrors
	for _, role := range sortedKeys(families) {
		field := "theme.extend.fontFamily." + role
		if strings.TrimSpace(role) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "font role name must not be empty"})
			continue
		}
		stack := families[role]
		if len(stack) == 0 {
			errs = append(errs, ValidationError{Field: field, Message: "must list at least one font family"})
			continue
		}
		for i, name := range stack {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s[%d]", field, i),
					Message: "font family name must not be empty",
				})
			}
		}
	}
	return errs
}

func validateColors(colors map[string]string) ValidationErrors {
	var errs ValidationErrors
	for _, name := range sortedKeys(colors) {
		field := "theme.extend.colors." + name
		if strings.TrimSpace(name) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "color token name must not be empty"})
			continue
		}
		if value := colors[name]; !IsHexColor(value) {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%q is not a hex color of the form #RRGGBB", value),
			})
		}
	}
	return errs
}

func validatePlugins(plugins []string) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[string]int, len(plugins))
	for i, plugin := range plugins {
		field := fmt.Sprintf("plugins[%d]", i)
		if strings.TrimSpace(plugin) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "plugin reference must not be empty"})
			continue
		}
		if first, dup := seen[plugin]; dup {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicate plugin %q (first listed at plugins[%d])", plugin, first),
			})
			continue
		}
		seen[plugin] = i
	}
	return errs
}
