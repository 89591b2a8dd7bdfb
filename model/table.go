package model

import (
	"strings"
)

// Position identifies a cell by its 0-based row and column indices.
type Position struct {
	Row int
	Col int
}

// Cell is one entry of an extracted table: either recognized text (possibly
// empty) or a failure recorded in Err. Exactly one of the two views is
// meaningful; a cell with a non-nil Err has no usable text.
type Cell struct {
	Text string
	Err  error
}

// Failed returns true if recognition failed for this cell.
func (c Cell) Failed() bool { return c.Err != nil }

// Table is the result of one extraction run: a row-major matrix of cells
// whose shape matches the stencil the run was made with. A Table is not a
// live view of the stencil; it is immutable by convention once assembled.
type Table struct {
	Rows [][]Cell
}

// NewTable creates an empty table with the given dimensions.
func NewTable(rows, cols int) *Table {
	t := &Table{Rows: make([][]Cell, rows)}
	for i := range t.Rows {
		t.Rows[i] = make([]Cell, cols)
	}
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// At returns the cell at the given position, or nil if out of range.
func (t *Table) At(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// Failed returns the positions of all cells whose recognition failed,
// in row-major order. An empty slice means the run was fully successful.
func (t *Table) Failed() []Position {
	var failed []Position
	for i, row := range t.Rows {
		for j, cell := range row {
			if cell.Failed() {
				failed = append(failed, Position{Row: i, Col: j})
			}
		}
	}
	return failed
}

// Strings renders the table as a row-major matrix of strings. Failed cells
// render as marker; pass "" to leave them blank. How failures are shown is a
// presentation decision, so the caller chooses the marker.
func (t *Table) Strings(marker string) [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			if cell.Failed() {
				out[i][j] = marker
			} else {
				out[i][j] = cell.Text
			}
		}
	}
	return out
}

// ToCSV converts the table to CSV. Failed cells render as marker.
func (t *Table) ToCSV(marker string) string {
	var sb strings.Builder
	for _, row := range t.Strings(marker) {
		for j, text := range row {
			// Escape quotes and wrap in quotes if necessary
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to a markdown table, treating the first row
// as the header. Failed cells render as marker.
func (t *Table) ToMarkdown(marker string) string {
	rows := t.Strings(marker)
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		for _, text := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(rows[0])
	for range rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return sb.String()
}
