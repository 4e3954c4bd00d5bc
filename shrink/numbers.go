package shrink

import "github.com/katalvlaran/qcheck/lazy"

// unsigned covers the integer kinds shrunk by plain halving toward zero.
type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// halving enumerates 0, v-v/2, v-v/4, ..., v-1 for v > 0, each candidate
// strictly smaller than the last gap. The chain is realized lazily, one
// halving step per pull.
func halving[T unsigned](v T) *lazy.Lazy[T] {
	return lazy.Create(func(l *lazy.Lazy[T]) {
		if v == 0 {
			return
		}
		l.Push(0)
		var step func(half T) func(*lazy.Lazy[T])
		step = func(half T) func(*lazy.Lazy[T]) {
			return func(l *lazy.Lazy[T]) {
				if half == 0 {
					return
				}
				l.Push(v - half)
				l.PushThunk(step(half / 2))
			}
		}
		l.PushThunk(step(v / 2))
	})
}

// Uint shrinks toward zero by halving: shrink(10) = 0, 5, 8, 9.
func Uint() Shrinker[uint] {
	return halving[uint]
}

// Byte shrinks toward zero by halving.
func Byte() Shrinker[byte] {
	return halving[byte]
}

// Int shrinks toward zero by halving, emitting each magnitude with both
// signs: shrink(10) = 0, 5, -5, 8, -8, 9, -9.
func Int() Shrinker[int] {
	return func(v int) *lazy.Lazy[int] {
		return lazy.Create(func(l *lazy.Lazy[int]) {
			if v == 0 {
				return
			}
			l.Push(0)
			var step func(half int) func(*lazy.Lazy[int])
			step = func(half int) func(*lazy.Lazy[int]) {
				return func(l *lazy.Lazy[int]) {
					if half == 0 {
						return
					}
					c := v - half
					l.Push(c)
					l.Push(-c)
					l.PushThunk(step(half / 2))
				}
			}
			l.PushThunk(step(v / 2))
		})
	}
}

// Rune shrinks a code point toward zero by halving its numeric value.
// Non-positive runes have no candidates.
func Rune() Shrinker[rune] {
	return func(v rune) *lazy.Lazy[rune] {
		return lazy.Create(func(l *lazy.Lazy[rune]) {
			if v <= 0 {
				return
			}
			lazy.PushMap(l, halving(uint32(v)), func(x uint32) rune { return rune(x) })
		})
	}
}
