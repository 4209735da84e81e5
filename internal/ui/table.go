package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns without borders. Column widths account for
// ANSI styling, so styled cells align correctly.
type Table struct {
	rows      [][]string
	colWidths []int
	padding   int
}

// NewTable creates a table with the given number of columns.
func NewTable(cols int) *Table {
	return &Table{colWidths: make([]int, cols), padding: 2}
}

// AddRow appends a row. Extra cells beyond the column count are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// String renders the table.
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	pad := strings.Repeat(" ", t.padding)
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(pad)
			}
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell)))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
