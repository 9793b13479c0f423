package testutils

import "github.com/argus-labs/sparse-ecs/pkg/assert"

// Gen walks every combination of bounded choices made inside a `for !g.Done()` loop. Each pass
// records the sequence of values it handed out together with the bound requested at that
// position. Done advances the sequence like an odometer: it bumps the rightmost position that is
// still below its bound and forgets everything after it, so positions past it restart at zero on
// the next pass.
//
// See: <https://matklad.github.io/2021/11/07/generate-all-the-things.html>
type Gen struct {
	started bool
	v       [32]struct{ value, bound uint32 }
	p       int
	pMax    int
}

// NewGen creates a new exhaustive generator.
func NewGen() *Gen {
	return &Gen{}
}

// Done returns true when all combinations have been exhausted.
func (g *Gen) Done() bool {
	if !g.started {
		g.started = true
		return false
	}
	for i := g.pMax - 1; i >= 0; i-- {
		if g.v[i].value < g.v[i].bound {
			g.v[i].value++
			g.pMax = i + 1
			g.p = 0
			return false
		}
	}
	return true
}

func (g *Gen) next(bound uint32) uint32 {
	assert.That(g.p < len(g.v), "exhaustigen: exceeded maximum depth of %d", len(g.v))
	if g.p == g.pMax {
		g.v[g.p].value = 0
		g.pMax++
	}
	g.v[g.p].bound = bound
	g.p++
	return g.v[g.p-1].value
}

// Intn returns an int in range [0, bound] (inclusive).
func (g *Gen) Intn(bound int) int {
	return int(g.next(uint32(bound))) //nolint:gosec // bound is expected to be small in tests
}

// Index returns a valid index into a slice of the given length.
func (g *Gen) Index(length int) int {
	assert.That(length > 0, "exhaustigen: empty slice")
	return g.Intn(length - 1)
}

// Pick returns an element from the slice.
func Pick[T any](g *Gen, slice []T) T {
	return slice[g.Index(len(slice))]
}
