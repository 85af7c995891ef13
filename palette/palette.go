// Package palette maps cell values to display colours. It has no bearing on
// the simulation; frontends use it to colour blocks.
package palette

import (
	"image/color"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/shape"
)

// Palette is a fixed cell-to-colour table.
type Palette struct {
	colors     *intmap.Map[shape.Cell, color.RGBA]
	background color.RGBA
}

var defaultColors = [...]color.RGBA{
	shape.Empty: {R: 255, G: 255, B: 255, A: 255},
	1:           {R: 0, G: 121, B: 241, A: 255},
	2:           {R: 0, G: 82, B: 172, A: 255},
	3:           {R: 255, G: 161, B: 0, A: 255},
	4:           {R: 253, G: 249, B: 0, A: 255},
	5:           {R: 0, G: 228, B: 48, A: 255},
	6:           {R: 200, G: 122, B: 255, A: 255},
	7:           {R: 230, G: 41, B: 55, A: 255},
}

// Default returns the standard palette: white background, one colour per
// shape.
func Default() *Palette {
	return New(defaultColors[:])
}

// New builds a palette where colors[i] is the colour of cell value i.
// colors[0] is the background.
func New(colors []color.RGBA) *Palette {
	p := &Palette{colors: intmap.New[shape.Cell, color.RGBA](len(colors))}
	for i, c := range colors {
		if i == 0 {
			p.background = c
			continue
		}
		p.colors.Put(shape.Cell(i), c)
	}
	return p
}

// Color returns the colour for c. Empty cells and unknown values map to the
// background.
func (p *Palette) Color(c shape.Cell) color.RGBA {
	if rgba, ok := p.colors.Get(c); ok {
		return rgba
	}
	return p.background
}

// Background returns the empty-cell colour.
func (p *Palette) Background() color.RGBA {
	return p.background
}

// Len returns the number of occupied-cell colours.
func (p *Palette) Len() int {
	return p.colors.Len()
}
