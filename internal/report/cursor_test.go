package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorStartsAtFirstRow(t *testing.T) {
	cur := NewCursor()

	assert.Equal(t, 1, cur.Row())
	assert.Equal(t, "A1", cur.Cell(1))
}

func TestCursorAdvance(t *testing.T) {
	cur := NewCursor()
	cur.Advance(3)

	assert.Equal(t, 4, cur.Row())
	assert.Equal(t, "B4", cur.Cell(2))

	cur.Advance(1)
	assert.Equal(t, "D5", cur.Cell(4))
}

func TestCellAt(t *testing.T) {
	assert.Equal(t, "A1", CellAt(1, 1))
	assert.Equal(t, "C7", CellAt(3, 7))
	assert.Equal(t, "AA10", CellAt(27, 10))
}
