// Package generator produces arbitrary input sequences for tests.
package generator

import (
	"iter"
	"math/rand/v2"
)

// Integer is the set of value types a Generator can produce.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Generator yields pseudo-random integers.
type Generator[T Integer] struct {
	rnd *rand.Rand
}

// New returns a generator seeded from the runtime's random source.
func New[T Integer]() *Generator[T] {
	return &Generator[T]{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint:gosec
}

// NewSeeded returns a deterministic generator.
func NewSeeded[T Integer](seed1, seed2 uint64) *Generator[T] {
	return &Generator[T]{rnd: rand.New(rand.NewPCG(seed1, seed2))} //nolint:gosec
}

// Next returns the next value.
func (g *Generator[T]) Next() T { //nolint:ireturn
	return T(g.rnd.Uint64())
}

// Values returns n generated values.
func (g *Generator[T]) Values(n int) []T {
	vs := make([]T, n)

	for i := range vs {
		vs[i] = g.Next()
	}

	return vs
}

// Seq yields n generated values.
func (g *Generator[T]) Seq(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Fill calls insert with n generated values, like filling a container
// through an inserter.
func (g *Generator[T]) Fill(insert func(T), n int) {
	for range n {
		insert(g.Next())
	}
}
