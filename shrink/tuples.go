package shrink

import (
	"github.com/katalvlaran/qcheck/lazy"
	"github.com/katalvlaran/qcheck/tuple"
)

// PairOf shrinks a pair component-wise, leftmost first: every candidate
// for the first component with the second held fixed, then every
// candidate for the second with the first held fixed.
func PairOf[A, B any](sa Shrinker[A], sb Shrinker[B]) Shrinker[tuple.Pair[A, B]] {
	return func(v tuple.Pair[A, B]) *lazy.Lazy[tuple.Pair[A, B]] {
		return lazy.Create(func(l *lazy.Lazy[tuple.Pair[A, B]]) {
			lazy.PushMap(l, sa(v.First), func(a A) tuple.Pair[A, B] {
				return tuple.MakePair(a, v.Second)
			})
			lazy.PushMap(l, sb(v.Second), func(b B) tuple.Pair[A, B] {
				return tuple.MakePair(v.First, b)
			})
		})
	}
}

// TripleOf shrinks a triple component-wise, leftmost first.
func TripleOf[A, B, C any](sa Shrinker[A], sb Shrinker[B], sc Shrinker[C]) Shrinker[tuple.Triple[A, B, C]] {
	return func(v tuple.Triple[A, B, C]) *lazy.Lazy[tuple.Triple[A, B, C]] {
		return lazy.Create(func(l *lazy.Lazy[tuple.Triple[A, B, C]]) {
			lazy.PushMap(l, sa(v.First), func(a A) tuple.Triple[A, B, C] {
				return tuple.MakeTriple(a, v.Second, v.Third)
			})
			lazy.PushMap(l, sb(v.Second), func(b B) tuple.Triple[A, B, C] {
				return tuple.MakeTriple(v.First, b, v.Third)
			})
			lazy.PushMap(l, sc(v.Third), func(c C) tuple.Triple[A, B, C] {
				return tuple.MakeTriple(v.First, v.Second, c)
			})
		})
	}
}
