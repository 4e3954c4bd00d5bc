package gen

import (
	"math/rand/v2"

	"github.com/katalvlaran/qcheck/tuple"
)

// PtrOf produces nil or a pointer to a generated element with even
// probability. The nil branch is the non-recursive base, so PtrOf stays
// total even when elem refers back to the enclosing type.
func PtrOf[T any](elem Gen[T]) Gen[*T] {
	return func(size int, rng *rand.Rand) *T {
		if rng.IntN(2) == 0 {
			return nil
		}
		v := elem(size, rng)
		return &v
	}
}

// SliceOf produces a slice whose length is uniform in [0, size], with
// each element generated independently at the same size.
func SliceOf[T any](elem Gen[T]) Gen[[]T] {
	return func(size int, rng *rand.Rand) []T {
		n := 0
		if size > 0 {
			n = rng.IntN(size + 1)
		}
		out := make([]T, n)
		for i := range out {
			out[i] = elem(size, rng)
		}
		return out
	}
}

// PairOf generates both components independently at the same size.
func PairOf[A, B any](ga Gen[A], gb Gen[B]) Gen[tuple.Pair[A, B]] {
	return func(size int, rng *rand.Rand) tuple.Pair[A, B] {
		return tuple.MakePair(ga(size, rng), gb(size, rng))
	}
}

// TripleOf generates all three components independently at the same size.
func TripleOf[A, B, C any](ga Gen[A], gb Gen[B], gc Gen[C]) Gen[tuple.Triple[A, B, C]] {
	return func(size int, rng *rand.Rand) tuple.Triple[A, B, C] {
		return tuple.MakeTriple(ga(size, rng), gb(size, rng), gc(size, rng))
	}
}
