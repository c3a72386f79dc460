package cgt

import (
	"fmt"
	"strings"
)

// The row-source contract: a header row of column names and data rows of
// tagged cells. Column positions are looked up by name exactly once, then
// cells are accessed by position with an explicit type expectation, so a
// failure can always name the column it belongs to.

// Cell is a single worksheet cell, tagged as either text or a number.
type Cell struct {
	text   string
	number float64
	isNum  bool
}

// Text returns the cell content as a string, for both text and number cells.
func (c Cell) Text() string { return c.text }

// Float returns the cell content as a number. ok is false for text cells.
func (c Cell) Float() (f float64, ok bool) { return c.number, c.isNum }

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{text: s} }

// NumberCell returns a numeric cell. Its textual form uses the shortest
// representation that round-trips.
func NumberCell(f float64) Cell {
	return Cell{text: fmt.Sprintf("%g", f), number: f, isNum: true}
}

// Row is one data row of the source sheet.
type Row []Cell

// at returns the cell at position i, or an empty text cell when the row is
// shorter. xlsx readers drop trailing empty cells, that is not an error.
func (r Row) at(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// columnIndex locates a column by exact trimmed name in the header row.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Column: name}
}
