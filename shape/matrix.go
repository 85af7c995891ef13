package shape

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMalformedTemplate is reported when a template's rows are not all as long
// as the template is tall.
var ErrMalformedTemplate = errors.New("shape: template is not square")

// Direction selects a quarter turn.
type Direction uint8

const (
	None Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Matrix is a square grid of cells stored row-major.
type Matrix struct {
	size  int
	cells []Cell
}

// NewMatrix copies rows into a square matrix whose size is the row count.
// When a row length differs from the row count the matrix is still built
// (short rows are zero-padded, long rows truncated) and the returned error
// wraps ErrMalformedTemplate.
func NewMatrix(rows [][]Cell) (Matrix, error) {
	size := len(rows)
	m := Matrix{size: size, cells: make([]Cell, size*size)}

	var err error
	for y, row := range rows {
		if len(row) != size && err == nil {
			err = fmt.Errorf("%w: row %d has %d cells, want %d (%dx%d)",
				ErrMalformedTemplate, y, len(row), size, len(row), size)
		}
		copy(m.cells[y*size:(y+1)*size], row)
	}

	return m, err
}

// Size returns the side length.
func (m Matrix) Size() int {
	return m.size
}

// At returns the cell at column x, row y. Coordinates outside [0, Size)
// are a caller bug and panic.
func (m Matrix) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		panic(fmt.Sprintf("shape: matrix access (%d,%d) outside %dx%d", x, y, m.size, m.size))
	}
	return m.cells[y*m.size+x]
}

// Rows returns a copy of the matrix as a slice of rows.
func (m Matrix) Rows() [][]Cell {
	rows := make([][]Cell, m.size)
	for y := range rows {
		rows[y] = slices.Clone(m.cells[y*m.size : (y+1)*m.size])
	}
	return rows
}

// Clone returns an independent copy.
func (m Matrix) Clone() Matrix {
	return Matrix{size: m.size, cells: slices.Clone(m.cells)}
}

// Equal reports whether both matrices hold the same cells.
func (m Matrix) Equal(other Matrix) bool {
	return m.size == other.size && slices.Equal(m.cells, other.cells)
}

// Rotate returns a rotated copy of m, leaving m untouched.
func Rotate(m Matrix, d Direction) Matrix {
	out := m.Clone()
	out.Rotate(d)
	return out
}

// Rotate turns the matrix a quarter in place. Left is a transpose followed by
// reversing the row order; Right is a transpose followed by reversing each row.
func (m *Matrix) Rotate(d Direction) {
	if d != Left && d != Right {
		return
	}

	n := m.size
	for y := 0; y < n; y++ {
		for x := y + 1; x < n; x++ {
			m.cells[y*n+x], m.cells[x*n+y] = m.cells[x*n+y], m.cells[y*n+x]
		}
	}

	switch d {
	case Left:
		for top, bottom := 0, n-1; top < bottom; top, bottom = top+1, bottom-1 {
			for x := 0; x < n; x++ {
				m.cells[top*n+x], m.cells[bottom*n+x] = m.cells[bottom*n+x], m.cells[top*n+x]
			}
		}
	case Right:
		for y := 0; y < n; y++ {
			slices.Reverse(m.cells[y*n : (y+1)*n])
		}
	}
}
