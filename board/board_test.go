package board_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPiece(t *testing.T, kind shape.Kind, x, y int) *piece.Piece {
	t.Helper()
	tmpl, ok := shape.Lookup(kind)
	require.True(t, ok)
	p, err := piece.New(tmpl)
	require.NoError(t, err)
	p.MoveTo(x, y)
	return p
}

func emptyRows() [][]shape.Cell {
	rows := make([][]shape.Cell, board.Height)
	for y := range rows {
		rows[y] = make([]shape.Cell, board.Width)
	}
	return rows
}

func fullRow(c shape.Cell) []shape.Cell {
	row := make([]shape.Cell, board.Width)
	for x := range row {
		row[x] = c
	}
	return row
}

func mustBoard(t *testing.T, rows [][]shape.Cell) *board.Board {
	t.Helper()
	b, err := board.FromRows(rows)
	require.NoError(t, err)
	return b
}

func TestFromRowsDimensions(t *testing.T) {
	_, err := board.FromRows(make([][]shape.Cell, 3))
	assert.ErrorIs(t, err, board.ErrDimensions)

	rows := emptyRows()
	rows[4] = rows[4][:9]
	_, err = board.FromRows(rows)
	assert.ErrorIs(t, err, board.ErrDimensions)

	b, err := board.FromRows(emptyRows())
	require.NoError(t, err)
	assert.Equal(t, 0, b.Occupied())
	assert.Equal(t, board.Width, b.Width())
	assert.Equal(t, board.Height, b.Height())
}

func TestCollidesInPlace(t *testing.T) {
	rows := emptyRows()
	rows[11][6] = 3
	b := mustBoard(t, rows)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"overlapping block", 5, 10, true},
		{"left of block", 4, 10, false},
		{"clear of block", 0, 0, false},
		{"directly above", 5, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPiece(t, shape.O, tt.x, tt.y)
			assert.Equal(t, tt.want, b.Collides(p, 0, 0))
		})
	}
}

func TestCollidesPaddingIgnored(t *testing.T) {
	rows := emptyRows()
	rows[0][0] = 1
	b := mustBoard(t, rows)

	// I piece cells live in matrix column 1; column 0 is padding.
	p := newPiece(t, shape.I, 0, 0)
	assert.False(t, b.Collides(p, 0, 0))
}

func TestCollidesOffsets(t *testing.T) {
	rows := emptyRows()
	rows[5][3] = 1
	rows[8][5] = 1
	b := mustBoard(t, rows)

	p := newPiece(t, shape.O, 4, 4) // covers (4..5, 4..5)

	assert.False(t, b.Collides(p, 0, 0))
	assert.True(t, b.Collides(p, -1, 0), "block at (3,5) is left of the piece")
	assert.False(t, b.Collides(p, 1, 0))
	assert.False(t, b.Collides(p, 0, 1))
	assert.True(t, b.Collides(p, 0, 3), "block at (5,8) is three rows down")
}

func TestCollidesWallsAndFloor(t *testing.T) {
	b := board.New()

	assert.True(t, b.Collides(newPiece(t, shape.O, 0, 0), -1, 0))
	assert.True(t, b.Collides(newPiece(t, shape.O, board.Width-2, 0), 1, 0))
	assert.True(t, b.Collides(newPiece(t, shape.O, 0, board.Height-2), 0, 1))
	assert.False(t, b.Collides(newPiece(t, shape.O, 0, -1), 0, 0), "above the top row is open")
}

func TestCollidesDiagonalPanics(t *testing.T) {
	b := board.New()
	p := newPiece(t, shape.O, 4, 4)

	assert.Panics(t, func() { b.Collides(p, 1, 1) })
}

func TestOnWalls(t *testing.T) {
	b := board.New()

	tests := []struct {
		name string
		kind shape.Kind
		x    int
		want board.Walls
	}{
		{"middle", shape.O, 4, board.Walls{}},
		{"left", shape.O, 0, board.Walls{Left: true}},
		{"right", shape.O, board.Width - 2, board.Walls{Right: true}},
		{"I padding column off the left", shape.I, -1, board.Walls{Left: true}},
		{"I padding column at the left", shape.I, 0, board.Walls{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.OnWalls(newPiece(t, tt.kind, tt.x, 3)))
		})
	}
}

func TestAtBottomFloor(t *testing.T) {
	b := board.New()

	o := newPiece(t, shape.O, 4, board.Height-3)
	assert.False(t, b.AtBottom(o))
	o.MoveTo(4, board.Height-2)
	assert.True(t, b.AtBottom(o))

	// T has an empty bottom row, so it rests with its anchor one row lower.
	tp := newPiece(t, shape.T, 4, board.Height-3)
	assert.False(t, b.AtBottom(tp))
	tp.MoveTo(4, board.Height-2)
	assert.True(t, b.AtBottom(tp))

	// Horizontal I sits in matrix row 2 of 4.
	i := newPiece(t, shape.I, 3, 0)
	i.Rotate(shape.Left)
	i.MoveTo(3, board.Height-4)
	assert.False(t, b.AtBottom(i))
	i.MoveTo(3, board.Height-3)
	assert.True(t, b.AtBottom(i))
}

func TestAtBottomStack(t *testing.T) {
	rows := emptyRows()
	rows[15][5] = 2
	b := mustBoard(t, rows)

	p := newPiece(t, shape.O, 5, 12)
	assert.False(t, b.AtBottom(p))
	p.MoveTo(5, 13)
	assert.True(t, b.AtBottom(p))
}

func TestPlace(t *testing.T) {
	b := board.New()
	p := newPiece(t, shape.S, 2, 5)

	b.Place(p)

	assert.Equal(t, 4, b.Occupied())
	assert.Equal(t, shape.Cell(5), b.At(3, 5))
	assert.Equal(t, shape.Cell(5), b.At(4, 5))
	assert.Equal(t, shape.Cell(5), b.At(2, 6))
	assert.Equal(t, shape.Cell(5), b.At(3, 6))
	assert.Equal(t, shape.Empty, b.At(2, 5))
}

func TestPlaceDropsBlocksOffTheBoard(t *testing.T) {
	b := board.New()
	p := newPiece(t, shape.O, -1, 0)

	b.Place(p)

	assert.Equal(t, 2, b.Occupied())
	assert.Equal(t, shape.Cell(4), b.At(0, 0))
	assert.Equal(t, shape.Cell(4), b.At(0, 1))
}

func TestClearLinesAfterPlacingLastCell(t *testing.T) {
	rows := emptyRows()
	for x := 0; x < board.Width-2; x++ {
		rows[board.Height-1][x] = 1
	}
	rows[board.Height-2][0] = 2
	rows[3][5] = 7
	b := mustBoard(t, rows)

	b.Place(newPiece(t, shape.O, board.Width-2, board.Height-2))
	require.Equal(t, 14, b.Occupied())

	cleared := b.ClearLines()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 14-board.Width, b.Occupied())
	assert.Equal(t, []shape.Cell{2, 0, 0, 0, 0, 0, 0, 0, 4, 4}, b.Rows()[board.Height-1])
	assert.Equal(t, make([]shape.Cell, board.Width), b.Rows()[board.Height-2])
	assert.Equal(t, shape.Cell(7), b.At(5, 4), "rows above shift down by one")
	assert.Equal(t, shape.Empty, b.At(5, 3))
	assert.Equal(t, make([]shape.Cell, board.Width), b.Rows()[0])
}

func TestClearLinesMultiple(t *testing.T) {
	t.Run("adjacent rows", func(t *testing.T) {
		rows := emptyRows()
		rows[board.Height-1] = fullRow(1)
		rows[board.Height-2] = fullRow(2)
		rows[10][3] = 6
		b := mustBoard(t, rows)

		assert.Equal(t, 2, b.ClearLines())
		assert.Equal(t, 1, b.Occupied())
		assert.Equal(t, shape.Cell(6), b.At(3, 12))
	})

	t.Run("rows split by a partial row", func(t *testing.T) {
		rows := emptyRows()
		rows[board.Height-1] = fullRow(1)
		rows[board.Height-2][4] = 3
		rows[board.Height-3] = fullRow(2)
		rows[0][9] = 5
		b := mustBoard(t, rows)

		assert.Equal(t, 2, b.ClearLines())
		assert.Equal(t, 2, b.Occupied())
		assert.Equal(t, shape.Cell(3), b.At(4, board.Height-1))
		assert.Equal(t, shape.Cell(5), b.At(9, 2))
	})

	t.Run("full top row", func(t *testing.T) {
		rows := emptyRows()
		rows[0] = fullRow(4)
		b := mustBoard(t, rows)

		assert.Equal(t, 1, b.ClearLines())
		assert.Equal(t, 0, b.Occupied())
	})

	t.Run("nothing full", func(t *testing.T) {
		rows := emptyRows()
		rows[board.Height-1] = fullRow(1)
		rows[board.Height-1][0] = 0
		b := mustBoard(t, rows)

		assert.Equal(t, 0, b.ClearLines())
		assert.Equal(t, board.Width-1, b.Occupied())
	})
}

func TestClear(t *testing.T) {
	rows := emptyRows()
	rows[20] = fullRow(2)
	rows[2][2] = 1
	b := mustBoard(t, rows)

	b.Clear()

	assert.Equal(t, 0, b.Occupied())
}

func TestAtOutOfRangePanics(t *testing.T) {
	b := board.New()

	assert.Panics(t, func() { b.At(board.Width, 0) })
	assert.Panics(t, func() { b.At(0, board.Height) })
	assert.Panics(t, func() { b.At(-1, 0) })
}
