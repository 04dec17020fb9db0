package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1),
		CellStyle:   lipgloss.NewStyle().Padding(0, 1),
	}
}

// Table collects rows and renders them with lipgloss.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}
