package theme

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal finding. The build tool accepts the document, but
// the result is probably not what the author intended.
type Warning struct {
	Field   string
	Message string
}

// String renders the warning as "field: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

// genericFamilies are the CSS generic font families a stack should end in.
var genericFamilies = map[string]bool{
	"serif":      true,
	"sans-serif": true,
	"monospace":  true,
	"cursive":    true,
	"fantasy":    true,
	"system-ui":  true,
	"math":       true,
	"emoji":      true,
	"fangsong":   true,
}

// Lint reports duplicate content globs and font stacks without a generic
// fallback family.
func Lint(cfg *ThemeConfig) []Warning {
	if cfg == nil {
		return nil
	}

	var warnings []Warning

	seen := make(map[string]int, len(cfg.Content))
	for i, glob := range cfg.Content {
		key := normalizeGlob(glob)
		if first, dup := seen[key]; dup {
			warnings = append(warnings, Warning{
				Field:   fmt.Sprintf("content[%d]", i),
				Message: fmt.Sprintf("duplicate of content[%d]", first),
			})
			continue
		}
		seen[key] = i
	}

	families := cfg.Theme.Extend.FontFamily
	for _, role := range sortedKeys(families) {
		stack := families[role]
		if len(stack) == 0 {
			continue
		}
		last := strings.ToLower(strings.TrimSpace(stack[len(stack)-1]))
		if genericFamilies[last] || strings.HasPrefix(last, "ui-") {
			continue
		}
		warnings = append(warnings, Warning{
			Field:   "theme.extend.fontFamily." + role,
			Message: fmt.Sprintf("font stack ends in %q, add a generic family such as sans-serif as the last fallback", stack[len(stack)-1]),
		})
	}

	return warnings
}
