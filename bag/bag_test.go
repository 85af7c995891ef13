package bag_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(templates []shape.Template) []shape.Kind {
	out := make([]shape.Kind, len(templates))
	for i, t := range templates {
		out[i] = t.Kind()
	}
	return out
}

func draw(b *bag.Bag, n int) []shape.Kind {
	out := make([]shape.Kind, n)
	for i := range out {
		out[i] = b.Draw().Kind()
	}
	return out
}

func TestFirstCycleIsDeclarationOrder(t *testing.T) {
	b := bag.NewSeeded(42)

	assert.Equal(t, kinds(shape.Catalog()), draw(b, shape.KindCount))
	assert.Equal(t, shape.KindCount, b.Cursor())
}

func TestEveryCycleDealsEachTemplateOnce(t *testing.T) {
	for seed := range uint64(20) {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			b := bag.NewSeeded(seed)
			for cycle := 0; cycle < 10; cycle++ {
				got := draw(b, shape.KindCount)
				assert.ElementsMatch(t, kinds(shape.Catalog()), got, "cycle %d", cycle)
			}
		})
	}
}

func TestCursorWrapsAtCycleBoundary(t *testing.T) {
	b := bag.NewSeeded(7)

	draw(b, shape.KindCount)
	require.Equal(t, shape.KindCount, b.Cursor())

	b.Draw()
	assert.Equal(t, 1, b.Cursor())
}

func TestSameSeedSameSequence(t *testing.T) {
	a := bag.NewSeeded(99)
	b := bag.NewSeeded(99)

	assert.Equal(t, draw(a, 50), draw(b, 50))
}

func TestInjectedSource(t *testing.T) {
	src := rand.NewPCG(1, 2)
	a := bag.New(shape.Catalog(), src)
	b := bag.New(shape.Catalog(), rand.NewPCG(1, 2))

	assert.Equal(t, draw(a, 21), draw(b, 21))
}

func TestPreviewMatchesUpcomingDraws(t *testing.T) {
	b := bag.NewSeeded(3)

	for step := 0; step < 30; step++ {
		preview := kinds(b.Preview(6))
		require.Len(t, preview, 6)

		probe := bag.NewSeeded(3)
		draw(probe, step)
		assert.Equal(t, draw(probe, 6), preview, "step %d", step)

		b.Draw()
	}
}

func TestPreviewSpansLookahead(t *testing.T) {
	b := bag.NewSeeded(11)
	draw(b, 5)

	preview := b.Preview(6)
	require.Len(t, preview, 6)
	assert.Equal(t, []shape.Kind{shape.T, shape.Z}, kinds(preview[:2]))

	assert.Len(t, b.Preview(100), 2+shape.KindCount)
	assert.Empty(t, b.Preview(0))
}

func ExampleBag() {
	b := bag.NewSeeded(1)
	for range shape.KindCount {
		fmt.Print(b.Draw(), " ")
	}
	fmt.Println()
	// Output: I L J O S T Z
}
