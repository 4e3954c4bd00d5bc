package shrink

import "github.com/katalvlaran/qcheck/lazy"

// removeAt returns a copy of v without the element at index i.
func removeAt[T any](v []T, i int) []T {
	out := make([]T, 0, len(v)-1)
	out = append(out, v[:i]...)
	out = append(out, v[i+1:]...)
	return out
}

// replaceAt returns a copy of v with the element at index i replaced by x.
func replaceAt[T any](v []T, i int, x T) []T {
	out := make([]T, len(v))
	copy(out, v)
	out[i] = x
	return out
}

// PtrOf shrinks a nullable value: nil has no candidates; a non-nil
// pointer shrinks first to nil, then to pointers at recursively shrunk
// inner values.
func PtrOf[T any](elem Shrinker[T]) Shrinker[*T] {
	return func(v *T) *lazy.Lazy[*T] {
		return lazy.Create(func(l *lazy.Lazy[*T]) {
			if v == nil {
				return
			}
			l.Push(nil)
			lazy.PushMap(l, elem(*v), func(x T) *T { return &x })
		})
	}
}

// SliceOf shrinks a slice in three phases, each realized lazily:
//
//  1. the empty slice (the most aggressive reduction);
//  2. the slice with one element dropped, front to back (only when there
//     are at least two elements — dropping the sole element would repeat
//     the empty candidate);
//  3. the slice with a single element recursively shrunk, holding length
//     and all other elements fixed, earlier indices first.
//
// Candidates never alias v's backing array.
func SliceOf[T any](elem Shrinker[T]) Shrinker[[]T] {
	return func(v []T) *lazy.Lazy[[]T] {
		return lazy.Create(func(l *lazy.Lazy[[]T]) {
			if len(v) == 0 {
				return
			}
			l.Push([]T{})

			if len(v) > 1 {
				var drop func(i int) func(*lazy.Lazy[[]T])
				drop = func(i int) func(*lazy.Lazy[[]T]) {
					return func(l *lazy.Lazy[[]T]) {
						if i >= len(v) {
							return
						}
						l.Push(removeAt(v, i))
						l.PushThunk(drop(i + 1))
					}
				}
				l.PushThunk(drop(0))
			}

			for i := range v {
				l.PushThunk(func(l *lazy.Lazy[[]T]) {
					lazy.PushMap(l, elem(v[i]), func(x T) []T {
						return replaceAt(v, i, x)
					})
				})
			}
		})
	}
}
