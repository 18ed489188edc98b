package mdwriter

import (
	"fmt"
	"slices"
	"strings"
)

// Table is a pipe-delimited table. Cells are not padded or aligned.
type Table struct {
	headerEnabled bool
	header        []Cell
	rows          [][]Cell
}

// NewTable returns an empty table. When headerEnabled is false the header
// and separator lines are omitted, but the header still fixes the column
// count.
func NewTable(headerEnabled bool) Table {
	return Table{headerEnabled: headerEnabled}
}

func (Table) isElement() {}

// Header sets the header cells.
func (t Table) Header(cells ...Cell) Table {
	t.header = slices.Clone(cells)
	return t
}

// Rows replaces the body rows.
func (t Table) Rows(rows ...[]Cell) Table {
	t.rows = make([][]Cell, len(rows))
	for i, r := range rows {
		t.rows[i] = slices.Clone(r)
	}
	return t
}

// Row appends one body row.
func (t Table) Row(cells ...Cell) Table {
	t.rows = append(slices.Clip(t.rows), slices.Clone(cells))
	return t
}

// Columns returns the column count: the header length, or the first row's
// length when no header is set.
func (t Table) Columns() int {
	if len(t.header) > 0 || len(t.rows) == 0 {
		return len(t.header)
	}
	return len(t.rows[0])
}

// Validate checks every row against the column count.
func (t Table) Validate() error {
	cols := t.Columns()
	for i, row := range t.rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), cols, ErrColumnMismatch)
		}
	}
	return nil
}

// Render renders the table. It fails with ErrColumnMismatch, before
// producing any output, when a row's length differs from the column count.
func (t Table) Render() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	if t.headerEnabled && len(t.header) > 0 {
		writeRow(&b, t.header)
		sep := make([]string, len(t.header))
		for i := range sep {
			sep[i] = "---"
		}
		b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	}
	for _, row := range t.rows {
		writeRow(&b, row)
	}
	return b.String(), nil
}

// Markdown renders the table.
func (t Table) Markdown() (string, error) {
	return t.Render()
}

func writeRow(b *strings.Builder, cells []Cell) {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = renderCell(c)
	}
	b.WriteString("| " + strings.Join(out, " | ") + " |\n")
}

// renderCell renders c on a single line. Pipes left bare by code spans are
// escaped so they cannot split the cell.
func renderCell(c Cell) string {
	var s string
	switch c := c.(type) {
	case Styled:
		s = escapePipes(c.String())
	case Plain:
		s = EscapeText(string(c))
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// escapePipes backslash-escapes every | not already preceded by an odd
// number of backslashes.
func escapePipes(s string) string {
	if !strings.Contains(s, "|") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	backslashes := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '|' && backslashes%2 == 0 {
			b.WriteByte('\\')
		}
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
		b.WriteByte(c)
	}
	return b.String()
}
