package quick

import (
	"github.com/katalvlaran/qcheck/gen"
	"github.com/katalvlaran/qcheck/shrink"
	"github.com/katalvlaran/qcheck/tuple"
)

// Value bundles the three capabilities the driver needs for a type:
// random generation, shrink enumeration, and duplication. Duplication is
// a hard requirement — the property consumes one copy while the driver
// retains another for shrinking and reporting, so Clone must produce a
// value the property cannot mutate through.
//
// Composite bundles (PtrOf, SliceOf, PairOf, TripleOf, TreeOf) delegate
// to their components' bundles; defining a bundle for your own type means
// supplying the three functions, usually by composing the gen and shrink
// packages the same way.
type Value[T any] struct {
	Gen    gen.Gen[T]
	Shrink shrink.Shrinker[T]
	Clone  func(T) T
}

// ident is the clone for immutable-by-value types.
func ident[T any](v T) T { return v }

// Bool generates and shrinks booleans.
func Bool() Value[bool] {
	return Value[bool]{Gen: gen.Bool(), Shrink: shrink.Bool(), Clone: ident[bool]}
}

// Int generates full-range ints and shrinks them toward zero.
func Int() Value[int] {
	return Value[int]{Gen: gen.Int(), Shrink: shrink.Int(), Clone: ident[int]}
}

// Uint generates full-range uints and shrinks them toward zero.
func Uint() Value[uint] {
	return Value[uint]{Gen: gen.Uint(), Shrink: shrink.Uint(), Clone: ident[uint]}
}

// Byte generates full-range bytes and shrinks them toward zero.
func Byte() Value[byte] {
	return Value[byte]{Gen: gen.Byte(), Shrink: shrink.Byte(), Clone: ident[byte]}
}

// Rune generates valid runes and shrinks them toward zero.
func Rune() Value[rune] {
	return Value[rune]{Gen: gen.Rune(), Shrink: shrink.Rune(), Clone: ident[rune]}
}

// SmallN generates a natural number bounded by the size factor and
// shrinks it toward zero by halving.
func SmallN() Value[uint] {
	return Value[uint]{Gen: gen.SmallN(), Shrink: shrink.Uint(), Clone: ident[uint]}
}

// String generates strings of up to size runes and shrinks them as rune
// sequences.
func String() Value[string] {
	return Value[string]{Gen: gen.String(), Shrink: shrink.String(), Clone: ident[string]}
}

// PtrOf lifts a bundle to its nullable pointer form: absent or present
// with even probability, shrinking to nil first.
func PtrOf[T any](elem Value[T]) Value[*T] {
	return Value[*T]{
		Gen:    gen.PtrOf(elem.Gen),
		Shrink: shrink.PtrOf(elem.Shrink),
		Clone: func(v *T) *T {
			if v == nil {
				return nil
			}
			c := elem.Clone(*v)
			return &c
		},
	}
}

// SliceOf lifts a bundle to slices: length bounded by size, shrinking to
// the empty slice first. Clone is deep — elements are cloned too.
func SliceOf[T any](elem Value[T]) Value[[]T] {
	return Value[[]T]{
		Gen:    gen.SliceOf(elem.Gen),
		Shrink: shrink.SliceOf(elem.Shrink),
		Clone: func(v []T) []T {
			if v == nil {
				return nil
			}
			out := make([]T, len(v))
			for i := range v {
				out[i] = elem.Clone(v[i])
			}
			return out
		},
	}
}

// PairOf bundles a two-component product, shrinking leftmost-first.
func PairOf[A, B any](a Value[A], b Value[B]) Value[tuple.Pair[A, B]] {
	return Value[tuple.Pair[A, B]]{
		Gen:    gen.PairOf(a.Gen, b.Gen),
		Shrink: shrink.PairOf(a.Shrink, b.Shrink),
		Clone: func(v tuple.Pair[A, B]) tuple.Pair[A, B] {
			return tuple.MakePair(a.Clone(v.First), b.Clone(v.Second))
		},
	}
}

// TripleOf bundles a three-component product, shrinking leftmost-first.
func TripleOf[A, B, C any](a Value[A], b Value[B], c Value[C]) Value[tuple.Triple[A, B, C]] {
	return Value[tuple.Triple[A, B, C]]{
		Gen:    gen.TripleOf(a.Gen, b.Gen, c.Gen),
		Shrink: shrink.TripleOf(a.Shrink, b.Shrink, c.Shrink),
		Clone: func(v tuple.Triple[A, B, C]) tuple.Triple[A, B, C] {
			return tuple.MakeTriple(a.Clone(v.First), b.Clone(v.Second), c.Clone(v.Third))
		},
	}
}
