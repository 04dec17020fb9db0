package output

import (
	"fmt"
	"strings"
)

// Format specifies how commands print structured results.
type Format string

const (
	// FormatYAML outputs in YAML format.
	FormatYAML Format = "yaml"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"

	// FormatTable outputs human-readable tables.
	FormatTable Format = "table"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. Empty input means table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}
