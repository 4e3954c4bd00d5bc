package gen

import (
	"math/rand/v2"
	"unicode/utf8"
)

const (
	printableLo = 0x20 // space
	printableHi = 0x7e // tilde
)

// Rune produces a random rune: usually printable ASCII, occasionally a
// code point from the wider Unicode range. Surrogates are never produced,
// so the result is always valid in a Go string.
func Rune() Gen[rune] {
	return func(_ int, rng *rand.Rand) rune {
		if rng.IntN(8) != 0 {
			return rune(printableLo + rng.IntN(printableHi-printableLo+1))
		}
		for {
			r := rune(rng.IntN(utf8.MaxRune + 1))
			if utf8.ValidRune(r) {
				return r
			}
		}
	}
}

// String produces a string of up to size runes drawn from Rune.
func String() Gen[string] {
	runeGen := Rune()
	return func(size int, rng *rand.Rand) string {
		n := 0
		if size > 0 {
			n = rng.IntN(size + 1)
		}
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = runeGen(size, rng)
		}
		return string(rs)
	}
}
