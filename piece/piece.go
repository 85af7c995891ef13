// Package piece implements the positioned, rotatable instance of a shape
// template that falls through the board.
package piece

import (
	"fmt"
	"iter"

	"github.com/plus3/blockfall/shape"
)

// Block is one occupied cell of a piece in board coordinates.
type Block struct {
	X, Y int
	Cell shape.Cell
}

// Piece is a square cell matrix anchored on the board by its top-left corner.
type Piece struct {
	X, Y int

	kind   shape.Kind
	matrix shape.Matrix
}

// New builds a piece at anchor (0, 0) from a template. A malformed template
// still yields a usable piece sized by the template's row count; the error
// wraps shape.ErrMalformedTemplate so callers can decide whether it is fatal.
func New(t shape.Template) (*Piece, error) {
	m, err := t.Matrix()
	p := &Piece{kind: t.Kind(), matrix: m}
	if err != nil {
		return p, fmt.Errorf("piece %s: %w", t.Kind(), err)
	}
	return p, nil
}

// Kind returns the shape the piece was built from.
func (p *Piece) Kind() shape.Kind {
	return p.kind
}

// Size returns the matrix side length.
func (p *Piece) Size() int {
	return p.matrix.Size()
}

// At returns the cell at matrix offset (x, y). Offsets outside [0, Size) panic.
func (p *Piece) At(x, y int) shape.Cell {
	return p.matrix.At(x, y)
}

// Rotate turns the matrix a quarter in place. The anchor does not move.
func (p *Piece) Rotate(d shape.Direction) {
	p.matrix.Rotate(d)
}

// Matrix returns a copy of the current orientation.
func (p *Piece) Matrix() shape.Matrix {
	return p.matrix.Clone()
}

// Clone returns an independent copy, used to probe moves before committing them.
func (p *Piece) Clone() *Piece {
	return &Piece{X: p.X, Y: p.Y, kind: p.kind, matrix: p.matrix.Clone()}
}

// MoveTo sets the anchor.
func (p *Piece) MoveTo(x, y int) {
	p.X, p.Y = x, y
}

// Blocks yields every occupied cell in board coordinates, row by row.
func (p *Piece) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		n := p.matrix.Size()
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				c := p.matrix.At(x, y)
				if !c.Occupied() {
					continue
				}
				if !yield(Block{X: p.X + x, Y: p.Y + y, Cell: c}) {
					return
				}
			}
		}
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)", p.kind, p.X, p.Y)
}
