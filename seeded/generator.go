// Package seeded provides a small deterministic random stream for
// reproducible layouts.
//
// A Generator built from a seed always produces the same sequence of words
// for the same sequence of calls. It is not suitable for anything
// security related.
//
//	g := seeded.New(42)
//	x := seeded.Uniform(g, 0.15, 0.85)
//	e, ok := seeded.Pick(g, []string{"a", "b", "c"})
package seeded

import "math"

// golden is 2^64 divided by the golden ratio, rounded to an odd number.
// It is both the seed multiplier and the per-draw state increment.
const golden = 0x9E3779B97F4A7C15

// Source is the capability the sampling helpers depend on.
// Every call to Next is one draw and advances the stream.
type Source interface {
	Next() uint64
}

// Generator is a splitmix64 stream.
//
// A Generator is not safe for concurrent use. Use one instance per layout
// pass and discard it afterwards.
type Generator struct {
	state uint64
}

// Ensure Generator implements Source.
var _ Source = (*Generator)(nil)

// New creates a Generator for the given seed.
// The seed is multiplied by the golden constant so that seed 0 and other
// small seeds do not start from a weak state.
func New(seed uint64) *Generator {
	return &Generator{state: seed * golden}
}

// Next advances the state and returns the next output word.
func (g *Generator) Next() uint64 {
	g.state += golden
	z := g.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Uint64 is Next under the name expected by math/rand/v2.Source, so a
// Generator can back a *rand.Rand.
func (g *Generator) Uint64() uint64 {
	return g.Next()
}

// Uniform returns a value between low and high using exactly one draw.
//
// The drawn word is normalized by math.MaxUint64. Words close to the maximum
// round to 1.0 in float64; those are pulled just below 1 so that the result
// stays in [low, high) whenever low < high.
func (g *Generator) Uniform(low, high float64) float64 {
	return Uniform(g, low, high)
}

// Uniform draws one word from src and maps it linearly into [low, high).
func Uniform(src Source, low, high float64) float64 {
	t := float64(src.Next()) / float64(math.MaxUint64)
	if t >= 1 {
		t = math.Nextafter(1, 0)
	}
	v := low + (high-low)*t
	if v >= high && low < high {
		v = math.Nextafter(high, low)
	}
	return v
}

// Pick returns a random element of seq using exactly one draw.
// An empty seq yields the zero value and false without consuming a draw.
func Pick[T any](src Source, seq []T) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}
	return seq[src.Next()%uint64(len(seq))], true
}
