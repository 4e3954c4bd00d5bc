package gen

import "math/rand/v2"

// Gen produces a random value of type T. size bounds the magnitude,
// length or depth of the result where the generator is size-sensitive;
// rng is the randomness source, consumed sequentially.
//
// A Gen must return a value for every size >= 0.
type Gen[T any] func(size int, rng *rand.Rand) T

// Const always produces v.
func Const[T any](v T) Gen[T] {
	return func(int, *rand.Rand) T { return v }
}

// Map transforms the output of g with fn.
func Map[A, T any](g Gen[A], fn func(A) T) Gen[T] {
	return func(size int, rng *rand.Rand) T {
		return fn(g(size, rng))
	}
}

// OneOf picks one of the given generators uniformly and runs it.
// At least one generator must be supplied.
func OneOf[T any](gens ...Gen[T]) Gen[T] {
	if len(gens) == 0 {
		panic("gen: OneOf requires at least one generator")
	}
	return func(size int, rng *rand.Rand) T {
		return gens[rng.IntN(len(gens))](size, rng)
	}
}
