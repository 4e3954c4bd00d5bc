package shrink

import "github.com/katalvlaran/qcheck/lazy"

// Shrinker produces candidate reductions of v, most aggressive first.
// The sequence is finite, never contains v, and descent through repeated
// shrinking is well-founded.
type Shrinker[T any] func(v T) *lazy.Lazy[T]

// None is the shrinker for types with no smaller form: it always
// produces the empty sequence.
func None[T any]() Shrinker[T] {
	return func(T) *lazy.Lazy[T] {
		return lazy.New[T]()
	}
}

// Bool shrinks true to false; false has no candidates.
func Bool() Shrinker[bool] {
	return func(v bool) *lazy.Lazy[bool] {
		if v {
			return lazy.NewFrom(false)
		}
		return lazy.New[bool]()
	}
}

// Map adapts a Shrinker over A into one over T given conversions both
// ways. Useful for newtypes wrapping an already-shrinkable representation.
func Map[A, T any](s Shrinker[A], from func(T) A, to func(A) T) Shrinker[T] {
	return func(v T) *lazy.Lazy[T] {
		return lazy.Create(func(l *lazy.Lazy[T]) {
			lazy.PushMap(l, s(from(v)), to)
		})
	}
}
