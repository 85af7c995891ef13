// Package bag supplies piece templates so that every template appears exactly
// once per cycle.
package bag

import (
	"math/rand/v2"
	"slices"

	"github.com/plus3/blockfall/shape"
)

// Bag draws templates from a current sequence and keeps a second, already
// shuffled, lookahead sequence so upcoming pieces can be previewed across the
// cycle boundary.
type Bag struct {
	current   []shape.Template
	lookahead []shape.Template
	cursor    int
	rng       *rand.Rand
}

// New returns a bag over templates. The first cycle deals templates in the
// given order; the lookahead is shuffled immediately with src.
func New(templates []shape.Template, src rand.Source) *Bag {
	b := &Bag{
		current:   slices.Clone(templates),
		lookahead: slices.Clone(templates),
		rng:       rand.New(src),
	}
	b.shuffle(b.lookahead)
	return b
}

// NewSeeded returns a bag over the catalog with a reproducible shuffle order.
func NewSeeded(seed uint64) *Bag {
	return New(shape.Catalog(), rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (b *Bag) shuffle(seq []shape.Template) {
	b.rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
}

// Draw returns the next template. When the current sequence is spent the
// lookahead is promoted as-is and a fresh lookahead is shuffled.
func (b *Bag) Draw() shape.Template {
	if b.cursor >= len(b.current) {
		b.cursor = 0
		b.current, b.lookahead = b.lookahead, b.current
		b.shuffle(b.lookahead)
	}

	t := b.current[b.cursor]
	b.cursor++
	return t
}

// Preview returns up to n upcoming templates without drawing them: the rest
// of the current sequence followed by the head of the lookahead.
func (b *Bag) Preview(n int) []shape.Template {
	if n <= 0 {
		return nil
	}

	out := make([]shape.Template, 0, n)
	out = append(out, b.current[b.cursor:min(len(b.current), b.cursor+n)]...)
	if rest := n - len(out); rest > 0 {
		out = append(out, b.lookahead[:min(rest, len(b.lookahead))]...)
	}
	return out
}

// Cursor returns how many templates of the current sequence have been drawn.
func (b *Bag) Cursor() int {
	return b.cursor
}

// Len returns the cycle length.
func (b *Bag) Len() int {
	return len(b.current)
}
