package report

import "github.com/xuri/excelize/v2"

// Cursor tracks the next free row while report blocks are emitted top to
// bottom. All row arithmetic of the detail layout goes through it so block
// heights stay testable away from the rendering library.
type Cursor struct {
	row int
}

// NewCursor starts at the first spreadsheet row.
func NewCursor() *Cursor {
	return &Cursor{row: 1}
}

// Row returns the current 1-based row.
func (c *Cursor) Row() int {
	return c.row
}

// Advance moves the cursor down by n rows.
func (c *Cursor) Advance(n int) {
	c.row += n
}

// Cell returns the cell name at the given 1-based column on the current row.
func (c *Cursor) Cell(col int) string {
	return CellAt(col, c.row)
}

// CellAt returns the cell name for a 1-based column and row pair.
func CellAt(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
