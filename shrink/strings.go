package shrink

import "github.com/katalvlaran/qcheck/lazy"

// String shrinks a string as its rune sequence: empty string first, then
// strings with runes dropped, then strings with a single rune shrunk.
func String() Shrinker[string] {
	runes := SliceOf(Rune())
	return func(v string) *lazy.Lazy[string] {
		return lazy.Create(func(l *lazy.Lazy[string]) {
			lazy.PushMap(l, runes([]rune(v)), func(rs []rune) string {
				return string(rs)
			})
		})
	}
}
