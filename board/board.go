// Package board implements the fixed-size playfield: collision probes,
// locking pieces into place and removing completed rows.
package board

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
)

const (
	Width  = 10
	Height = 22
)

// ErrDimensions is returned by FromRows when the rows do not describe a
// Width x Height grid.
var ErrDimensions = errors.New("board: wrong dimensions")

// Walls reports which side walls a piece is touching.
type Walls struct {
	Left, Right bool
}

// Board is the playfield grid, indexed [row][column] with row 0 at the top.
type Board struct {
	cells [Height][Width]shape.Cell
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// FromRows builds a board from Height rows of Width cells each.
func FromRows(rows [][]shape.Cell) (*Board, error) {
	if len(rows) != Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrDimensions, len(rows), Height)
	}

	b := New()
	for y, row := range rows {
		if len(row) != Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensions, y, len(row), Width)
		}
		copy(b.cells[y][:], row)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return Width }

// Height returns the number of rows.
func (b *Board) Height() int { return Height }

// At returns the cell at column x, row y. Coordinates off the board panic.
func (b *Board) At(x, y int) shape.Cell {
	if !inside(x, y) {
		panic(fmt.Sprintf("board: access (%d,%d) outside %dx%d", x, y, Width, Height))
	}
	return b.cells[y][x]
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]shape.Cell {
	rows := make([][]shape.Cell, Height)
	for y := range rows {
		rows[y] = append([]shape.Cell(nil), b.cells[y][:]...)
	}
	return rows
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c.Occupied() {
				n++
			}
		}
	}
	return n
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// solid reports whether a probe at (x, y) hits something. The side walls and
// the floor are solid; the space above the top row is open.
func (b *Board) solid(x, y int) bool {
	if y < 0 {
		return x < 0 || x >= Width
	}
	if !inside(x, y) {
		return true
	}
	return b.cells[y][x].Occupied()
}

// Collides probes the piece against the board along each axis separately.
// For every occupied piece cell at (x, y) it checks (x+dx, y) and (x, y+dy);
// either hit counts as a collision. This is not a diagonal translation: at
// most one of dx and dy may be nonzero, and passing both panics.
// Collides(p, 0, 0) tests the piece where it stands.
func (b *Board) Collides(p *piece.Piece, dx, dy int) bool {
	if dx != 0 && dy != 0 {
		panic(fmt.Sprintf("board: diagonal collision probe (%d,%d)", dx, dy))
	}

	for blk := range p.Blocks() {
		if b.solid(blk.X+dx, blk.Y) || b.solid(blk.X, blk.Y+dy) {
			return true
		}
	}
	return false
}

// OnWalls reports whether any occupied cell sits in the first or last column
// (or beyond it).
func (b *Board) OnWalls(p *piece.Piece) Walls {
	var w Walls
	for blk := range p.Blocks() {
		if blk.X <= 0 {
			w.Left = true
		}
		if blk.X >= Width-1 {
			w.Right = true
		}
	}
	return w
}

// AtBottom reports whether the piece can no longer fall: either its lowest
// occupied row has reached the floor, or the cells below it are taken.
func (b *Board) AtBottom(p *piece.Piece) bool {
	size := p.Size()
	return p.Y+size-trailingEmptyRows(p) >= Height || b.Collides(p, 0, 1)
}

// trailingEmptyRows counts the padding rows under the shape. Row 0 is never
// counted, so a piece whose only blocks sit in row 0 reports no padding.
func trailingEmptyRows(p *piece.Piece) int {
	size := p.Size()
	for y := size - 1; y > 0; y-- {
		for x := 0; x < size; x++ {
			if p.At(x, y).Occupied() {
				return size - 1 - y
			}
		}
	}
	return 0
}

// Place locks the piece into the grid, overwriting whatever is underneath.
// Blocks outside the board are dropped.
func (b *Board) Place(p *piece.Piece) {
	for blk := range p.Blocks() {
		if inside(blk.X, blk.Y) {
			b.cells[blk.Y][blk.X] = blk.Cell
		}
	}
}

// ClearLines removes full rows in a single top-to-bottom pass. Each full row
// is emptied and everything above it drops by one, leaving row 0 empty. Rows
// are handled as the pass reaches them; nothing is rescanned after a shift.
// It returns the number of rows removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := 0; y < Height; y++ {
		if !b.full(y) {
			continue
		}

		b.cells[y] = [Width]shape.Cell{}
		for i := y; i > 0; i-- {
			b.cells[i] = b.cells[i-1]
		}
		b.cells[0] = [Width]shape.Cell{}
		cleared++
	}
	return cleared
}

func (b *Board) full(y int) bool {
	for _, c := range b.cells[y] {
		if !c.Occupied() {
			return false
		}
	}
	return true
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells = [Height][Width]shape.Cell{}
}
