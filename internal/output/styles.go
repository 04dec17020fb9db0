package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for CLI chrome. Use these instead of inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, token names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "valid" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and overridden tokens.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "invalid" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, token names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (field paths, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Document status values printed by vet.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusWarning = "warning"
	StatusAdded   = "added"
	StatusChanged = "overridden"
)

// StatusStyle returns the style for a status string. Unknown statuses
// return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusValid, StatusAdded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarning, StatusChanged:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusInvalid:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatFinding renders "  field: message" with a dim field path.
func FormatFinding(field, message string) string {
	return "  " + StyleDim.Render(field+":") + " " + message
}

// Swatch renders a two-cell block filled with a hex color followed by the
// hex value. Values that are not #RRGGBB render as plain text.
func Swatch(hex string) string {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return hex
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return block + " " + hex
}
