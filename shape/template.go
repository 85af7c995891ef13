// Package shape holds the canonical piece templates and the square cell
// matrix they are built from.
package shape

import "fmt"

// Cell is a single board or piece square. Empty is zero; occupied cells carry
// the value of the shape that produced them.
type Cell uint8

const Empty Cell = 0

// Occupied reports whether the cell holds a block.
func (c Cell) Occupied() bool {
	return c != Empty
}

// Kind identifies one of the seven shapes.
type Kind uint8

const (
	I Kind = iota
	L
	J
	O
	S
	T
	Z
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

var kindNames = [KindCount]string{"I", "L", "J", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell returns the value this kind writes into the board.
func (k Kind) Cell() Cell {
	return Cell(k) + 1
}

// Template is an immutable shape definition.
type Template struct {
	kind Kind
	rows [][]Cell
}

// NewTemplate copies rows into a template. No validation happens here;
// malformed templates are reported when a matrix is built from them.
func NewTemplate(kind Kind, rows [][]Cell) Template {
	copied := make([][]Cell, len(rows))
	for i, row := range rows {
		copied[i] = append([]Cell(nil), row...)
	}
	return Template{kind: kind, rows: copied}
}

// Kind returns the shape this template defines.
func (t Template) Kind() Kind {
	return t.kind
}

// Size returns the template's row count.
func (t Template) Size() int {
	return len(t.rows)
}

// Rows returns a copy of the template rows.
func (t Template) Rows() [][]Cell {
	return NewTemplate(t.kind, t.rows).rows
}

// Matrix builds a square matrix from the template.
func (t Template) Matrix() (Matrix, error) {
	return NewMatrix(t.rows)
}

func (t Template) String() string {
	return t.kind.String()
}

var catalog = [KindCount]Template{
	{kind: I, rows: [][]Cell{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
	}},
	{kind: L, rows: [][]Cell{
		{0, 0, 2},
		{2, 2, 2},
		{0, 0, 0},
	}},
	{kind: J, rows: [][]Cell{
		{3, 0, 0},
		{3, 3, 3},
		{0, 0, 0},
	}},
	{kind: O, rows: [][]Cell{
		{4, 4},
		{4, 4},
	}},
	{kind: S, rows: [][]Cell{
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	}},
	{kind: T, rows: [][]Cell{
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	}},
	{kind: Z, rows: [][]Cell{
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	}},
}

// Catalog returns the seven canonical templates in declaration order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog[:])
	return out
}

// Lookup returns the canonical template for kind.
func Lookup(kind Kind) (Template, bool) {
	if int(kind) >= len(catalog) {
		return Template{}, false
	}
	return catalog[kind], true
}
